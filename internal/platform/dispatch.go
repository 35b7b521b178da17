package platform

import (
	"errors"
	"fmt"
	"strings"

	"canvasedit/internal/editor"
	"canvasedit/internal/logger"
	"canvasedit/internal/selection"
	"canvasedit/pkg/richdoc"
)

var arrows = map[string]selection.Direction{
	KeyLeft:  selection.Left,
	KeyRight: selection.Right,
	KeyUp:    selection.Up,
	KeyDown:  selection.Down,
}

// formatKeys maps ctrl shortcuts to style presets.
var formatKeys = map[string]string{
	"b": richdoc.PresetBold,
	"i": richdoc.PresetItalic,
	"1": richdoc.PresetTitle,
	"2": richdoc.PresetSubtitle,
	"0": richdoc.PresetPlain,
}

// Dispatch applies one input event to the editor. It reports whether the
// event was consumed.
func Dispatch(ed *editor.Editor, ev Event, clip Clipboard) (bool, error) {
	switch ev.Type {
	case EventKeyDown:
		return dispatchKey(ed, ev, clip)
	case EventTextInput:
		text := strings.Map(func(r rune) rune {
			if r < 0x20 && r != '\n' {
				return -1
			}
			return r
		}, ev.Text)
		if text == "" {
			return false, nil
		}
		return true, ed.InsertText(text)
	case EventMouseDown:
		switch {
		case ev.Clicks >= 3:
			ed.SelectLineAtPoint(ev.X, ev.Y)
		case ev.Clicks == 2:
			ed.SelectWordAtPoint(ev.X, ev.Y)
		case ev.Mods.Shift():
			ed.ExtendSelectionToPoint(ev.X, ev.Y)
		default:
			ed.MoveSelectionToPoint(ev.X, ev.Y)
		}
		return true, nil
	case EventMouseDrag:
		ed.ExtendSelectionToPoint(ev.X, ev.Y)
		return true, nil
	case EventResize:
		if ev.Width > 0 {
			ed.GenerateLines(float64(ev.Width))
		}
		return true, nil
	}
	return false, nil
}

func dispatchKey(ed *editor.Editor, ev Event, clip Clipboard) (bool, error) {
	if dir, ok := arrows[ev.Key]; ok {
		switch {
		case ev.Mods.Ctrl() && ev.Mods.Shift():
			ed.ExtendWord(dir)
		case ev.Mods.Ctrl():
			ed.MoveWord(dir)
		case ev.Mods.Shift():
			ed.ExtendSelection(dir)
		default:
			ed.MoveSelection(dir, 1)
		}
		return true, nil
	}

	switch ev.Key {
	case KeyHome, KeyEnd:
		moveToLineEdge(ed, ev.Key == KeyEnd, ev.Mods.Shift())
		return true, nil
	case KeyBackspace:
		return true, ed.Backspace()
	case KeyDelete:
		return true, ed.ForwardDelete()
	case KeyEnter:
		return true, ed.Enter()
	case KeyTab:
		return true, ed.InsertText("    ")
	}

	if !ev.Mods.Ctrl() {
		return false, nil
	}
	if name, ok := formatKeys[ev.Key]; ok {
		return true, ed.SetFormat(name)
	}
	switch ev.Key {
	case "z":
		if ev.Mods.Shift() {
			_, err := ed.Redo()
			return true, err
		}
		_, err := ed.Undo()
		return true, err
	case "y":
		_, err := ed.Redo()
		return true, err
	case "a":
		ed.SelectAll()
		return true, nil
	case "c", "x":
		var text string
		var err error
		if ev.Key == "x" {
			text, err = ed.Cut()
		} else {
			text, err = ed.Copy()
		}
		if errors.Is(err, editor.ErrSelectionCollapsed) {
			return true, nil
		}
		if err != nil {
			return true, err
		}
		if err := clip.WriteAll(text); err != nil {
			return true, fmt.Errorf("clipboard write: %w", err)
		}
		return true, nil
	case "v":
		text, err := clip.ReadAll()
		if err != nil {
			return true, fmt.Errorf("clipboard read: %w", err)
		}
		if text == "" {
			return true, nil
		}
		logger.Debugf("platform: paste %d bytes", len(text))
		return true, ed.InsertText(text)
	}
	return false, nil
}

func moveToLineEdge(ed *editor.Editor, end, extend bool) {
	sel := ed.Selection()
	focus := sel.Focus()
	offset := 0
	if end {
		offset = ed.Lines()[focus.Line].MaxOffset()
	}
	if extend {
		sel.ExtendTo(focus.Line, offset)
	} else {
		sel.MoveTo(focus.Line, offset)
	}
	ed.SetSelection(sel)
}
