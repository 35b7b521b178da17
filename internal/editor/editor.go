package editor

import (
	"errors"
	"fmt"

	"canvasedit/internal/command"
	"canvasedit/internal/history"
	"canvasedit/internal/layout"
	"canvasedit/internal/logger"
	"canvasedit/internal/selection"
	"canvasedit/pkg/richdoc"
)

const DefaultWidth = 500

var (
	ErrSelectionCollapsed = errors.New("editor: selection is collapsed")
	ErrAddressing         = errors.New("editor: position cannot be addressed")
	ErrUnknownStyle       = errors.New("editor: unknown style")
)

type Options struct {
	// Presets is the named style table. Nil means richdoc.DefaultPresets.
	Presets richdoc.Presets
	// Width is the initial wrap width in pixels.
	Width float64
	// HistoryLimit caps undo depth; zero or less is unbounded.
	HistoryLimit int
}

// Editor owns a document, its layout, the selection and the undo history.
// It is not safe for concurrent use.
type Editor struct {
	runs    richdoc.Runs
	lines   []layout.Line
	sel     selection.Selection
	history *history.History
	engine  *layout.Engine
	presets richdoc.Presets
	width   float64
}

func New(runs richdoc.Runs, m layout.Measurer, opts Options) *Editor {
	presets := opts.Presets
	if presets == nil {
		presets = richdoc.DefaultPresets()
	}
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	e := &Editor{
		runs:    runs.Compact(),
		history: history.New(opts.HistoryLimit),
		engine:  layout.NewEngine(m, presets.Plain()),
		presets: presets,
		width:   width,
	}
	e.relayout()
	return e
}

// Load parses a document in the load shape and opens an editor on it.
func Load(data []byte, m layout.Measurer, opts Options) (*Editor, error) {
	runs, err := richdoc.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	return New(runs, m, opts), nil
}

// Runs returns a copy of the document.
func (e *Editor) Runs() richdoc.Runs { return e.runs.Clone() }

func (e *Editor) Text() string { return e.runs.Text() }

func (e *Editor) Lines() []layout.Line { return e.lines }

func (e *Editor) Width() float64 { return e.width }

func (e *Editor) Selection() selection.Selection { return e.sel }

// SetSelection replaces the selection, clamped to the current layout.
func (e *Editor) SetSelection(s selection.Selection) {
	e.sel = e.clampSelection(s)
}

// GenerateLines rewraps the document at maxWidth and returns the lines.
func (e *Editor) GenerateLines(maxWidth float64) []layout.Line {
	if maxWidth > 0 {
		e.width = maxWidth
	}
	e.relayout()
	e.sel = e.clampSelection(e.sel)
	return e.lines
}

func (e *Editor) relayout() {
	e.lines = e.engine.Generate(e.runs, e.width)
}

func (e *Editor) CanUndo() bool { return !e.history.IsAtStart() }
func (e *Editor) CanRedo() bool { return !e.history.IsAtEnd() }

// Undo reverts the last change. It reports false when there is nothing
// to undo.
func (e *Editor) Undo() (bool, error) {
	if e.history.IsAtStart() {
		return false, nil
	}
	runs, sel, err := e.history.Undo(e.runs, 1)
	if err != nil {
		logger.Errorf("editor: undo failed: %v", err)
		return false, err
	}
	e.runs = runs
	e.relayout()
	e.sel = e.clampSelection(sel)
	logger.Debugf("editor: undo, selection %s", e.sel)
	return true, nil
}

// Redo reapplies the last undone change. It reports false when there is
// nothing to redo.
func (e *Editor) Redo() (bool, error) {
	if e.history.IsAtEnd() {
		return false, nil
	}
	runs, sel, err := e.history.Redo(e.runs, 1)
	if err != nil {
		logger.Errorf("editor: redo failed: %v", err)
		return false, err
	}
	e.runs = runs
	e.relayout()
	e.sel = e.clampSelection(sel)
	logger.Debugf("editor: redo, selection %s", e.sel)
	return true, nil
}

// commit applies ch as one undo unit and places the selection at the flat
// indices anchor and focus of the edited document.
func (e *Editor) commit(ch command.Change, anchor, focus int) error {
	if ch.Empty() {
		return nil
	}
	before := e.sel
	runs, err := ch.Execute(e.runs)
	if err != nil {
		logger.Errorf("editor: change rejected: %v", err)
		return fmt.Errorf("%w: %w", ErrAddressing, err)
	}
	e.runs = runs
	e.relayout()
	after := selection.Between(e.positionOf(anchor), e.positionOf(focus))
	e.history.Push(history.Snapshot{Before: before, Change: ch, After: after})
	e.sel = after
	logger.Debugf("editor: committed %d commands, selection %s", len(ch.Commands), after)
	return nil
}
