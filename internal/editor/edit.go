package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"canvasedit/internal/command"
	"canvasedit/pkg/richdoc"
)

// InsertText replaces the selection with text as a single undo unit and
// leaves a collapsed caret after the inserted text.
func (e *Editor) InsertText(text string) error {
	text = strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")
	if text == "" {
		return nil
	}
	begin, end := e.orderedRange()
	style := e.engine.Fallback()
	if s, ok := e.runs.StyleAt(begin); ok {
		style = s
	}

	runs := e.runs
	var cmds []command.Command
	if end > begin {
		removed, err := removalCommands(runs, begin, end)
		if err != nil {
			return err
		}
		if runs, err = command.NewChange(removed...).Execute(runs); err != nil {
			return fmt.Errorf("%w: %w", ErrAddressing, err)
		}
		cmds = removed
	}
	run, at := insertionPoint(runs, begin)
	cmds = append(cmds, command.NewInsert(runs, run, at, text, style))

	caret := begin + utf8.RuneCountInString(text)
	return e.commit(command.NewChange(cmds...), caret, caret)
}

// Enter inserts a paragraph break.
func (e *Editor) Enter() error {
	return e.InsertText("\n")
}

// Backspace deletes the selection, or the character before the caret.
func (e *Editor) Backspace() error {
	if e.sel.IsExtended() {
		return e.deleteSelection()
	}
	p := e.flatOf(e.sel.Focus())
	if p == 0 {
		return nil
	}
	return e.removeRange(p-1, p)
}

// ForwardDelete deletes the selection, or the character after the caret.
func (e *Editor) ForwardDelete() error {
	if e.sel.IsExtended() {
		return e.deleteSelection()
	}
	p := e.flatOf(e.sel.Focus())
	if p >= e.runs.Len() {
		return nil
	}
	return e.removeRange(p, p+1)
}

func (e *Editor) deleteSelection() error {
	if e.sel.IsCollapsed() {
		return ErrSelectionCollapsed
	}
	begin, end := e.orderedRange()
	return e.removeRange(begin, end)
}

func (e *Editor) removeRange(begin, end int) error {
	cmds, err := removalCommands(e.runs, begin, end)
	if err != nil {
		return err
	}
	return e.commit(command.NewChange(cmds...), begin, begin)
}

// Copy returns the selected text.
func (e *Editor) Copy() (string, error) {
	if e.sel.IsCollapsed() {
		return "", ErrSelectionCollapsed
	}
	begin, end := e.orderedRange()
	return e.runs.Slice(begin, end-begin), nil
}

// Cut returns the selected text and deletes it.
func (e *Editor) Cut() (string, error) {
	text, err := e.Copy()
	if err != nil {
		return "", err
	}
	if err := e.deleteSelection(); err != nil {
		return "", err
	}
	return text, nil
}

// SetFormat applies the named preset to the selection. A collapsed
// selection is left alone.
func (e *Editor) SetFormat(name string) error {
	style, ok := e.presets.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q (known: %s)", ErrUnknownStyle, name, strings.Join(e.presets.Names(), ", "))
	}
	if e.sel.IsCollapsed() {
		return nil
	}
	begin, end := e.orderedRange()
	cmds, err := formatCommands(e.runs, begin, end, style)
	if err != nil {
		return err
	}
	return e.commit(command.NewChange(cmds...), e.flatOf(e.sel.Anchor()), e.flatOf(e.sel.Focus()))
}

// removalCommands removes flat [begin, end), last run first so earlier
// run indices stay valid while the batch executes.
func removalCommands(runs richdoc.Runs, begin, end int) ([]command.Command, error) {
	starts := runStarts(runs)
	var cmds []command.Command
	for i := len(runs) - 1; i >= 0; i-- {
		from := max(begin, starts[i]) - starts[i]
		to := min(end, starts[i]+runs[i].Len()) - starts[i]
		if from >= to {
			continue
		}
		c, err := command.NewRemove(runs, i, from, to)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrAddressing, err)
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}

// formatCommands restyles flat [begin, end), last run first. Runs that
// already carry the style are skipped.
func formatCommands(runs richdoc.Runs, begin, end int, style richdoc.Style) ([]command.Command, error) {
	starts := runStarts(runs)
	var cmds []command.Command
	for i := len(runs) - 1; i >= 0; i-- {
		if runs[i].Style == style {
			continue
		}
		from := max(begin, starts[i]) - starts[i]
		to := min(end, starts[i]+runs[i].Len()) - starts[i]
		if from >= to {
			continue
		}
		c, err := command.NewSetFormat(runs, i, from, to, style)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrAddressing, err)
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}
