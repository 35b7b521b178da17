package editor

import (
	"unicode"

	"canvasedit/internal/logger"
	"canvasedit/internal/selection"
)

// step moves p one caret position in dir. Document ends clamp.
func (e *Editor) step(p selection.Position, dir selection.Direction) selection.Position {
	p = e.clampPosition(p)
	last := len(e.lines) - 1
	line := e.lines[p.Line]
	switch dir {
	case selection.Left:
		if p.Offset > 0 {
			p.Offset = min(p.Offset-1, line.MaxOffset())
		} else if p.Line > 0 {
			p.Line--
			p.Offset = e.lines[p.Line].MaxOffset()
		}
	case selection.Right:
		if p.Offset < line.MaxOffset() {
			p.Offset++
		} else if p.Line < last {
			p.Line++
			p.Offset = 0
		}
	case selection.Up:
		if p.Line == 0 {
			return selection.Position{}
		}
		x := e.caretX(p)
		p.Line--
		p.Offset = e.lines[p.Line].OffsetAt(x)
	case selection.Down:
		if p.Line == last {
			return selection.Position{Line: last, Offset: line.MaxOffset()}
		}
		x := e.caretX(p)
		p.Line++
		p.Offset = e.lines[p.Line].OffsetAt(x)
	}
	return p
}

func (e *Editor) caretX(p selection.Position) float64 {
	x, err := e.lines[p.Line].CursorX(p.Offset)
	if err != nil {
		logger.Errorf("editor: caret %d:%d: %v", p.Line, p.Offset, err)
		return e.lines[p.Line].X()
	}
	return x
}

// MoveSelection moves a collapsed caret steps positions in dir. An
// extended selection first collapses to the end facing dir; for Left and
// Right the collapse uses up one step.
func (e *Editor) MoveSelection(dir selection.Direction, steps int) {
	if e.sel.IsExtended() {
		e.sel.CollapseToward(dir)
		if dir == selection.Left || dir == selection.Right {
			steps--
		}
	}
	p := e.sel.Focus()
	for i := 0; i < steps; i++ {
		p = e.step(p, dir)
	}
	e.sel.MoveTo(p.Line, p.Offset)
}

// ExtendSelection moves the focus one position in dir.
func (e *Editor) ExtendSelection(dir selection.Direction) {
	p := e.step(e.sel.Focus(), dir)
	e.sel.ExtendTo(p.Line, p.Offset)
}

// MoveWord collapses the caret onto the previous or next word boundary.
// Up and Down behave like MoveSelection.
func (e *Editor) MoveWord(dir selection.Direction) {
	if dir == selection.Up || dir == selection.Down {
		e.MoveSelection(dir, 1)
		return
	}
	p := e.wordStep(e.sel.Focus(), dir)
	e.sel.MoveTo(p.Line, p.Offset)
}

// ExtendWord moves the focus onto the previous or next word boundary.
func (e *Editor) ExtendWord(dir selection.Direction) {
	if dir == selection.Up || dir == selection.Down {
		e.ExtendSelection(dir)
		return
	}
	p := e.wordStep(e.sel.Focus(), dir)
	e.sel.ExtendTo(p.Line, p.Offset)
}

func (e *Editor) wordStep(p selection.Position, dir selection.Direction) selection.Position {
	text := []rune(e.runs.Text())
	flat := e.flatOf(p)
	if dir.Backward() {
		flat = previousWordBoundary(text, flat)
	} else {
		flat = nextWordBoundary(text, flat)
	}
	return e.positionOf(flat)
}

func previousWordBoundary(text []rune, pos int) int {
	pos = clamp(pos, 0, len(text))
	for pos > 0 && unicode.IsSpace(text[pos-1]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(text[pos-1]) {
		pos--
	}
	return pos
}

func nextWordBoundary(text []rune, pos int) int {
	pos = clamp(pos, 0, len(text))
	for pos < len(text) && unicode.IsSpace(text[pos]) {
		pos++
	}
	for pos < len(text) && !unicode.IsSpace(text[pos]) {
		pos++
	}
	return pos
}

// LineUnderPoint returns the line whose row contains y. Points above the
// first row map to line 0, points below the last row to the last line.
func (e *Editor) LineUnderPoint(x, y float64) int {
	for i, l := range e.lines {
		if y <= l.Y() {
			return i
		}
	}
	return len(e.lines) - 1
}

// PositionAtPoint hit-tests a pixel against the layout.
func (e *Editor) PositionAtPoint(x, y float64) selection.Position {
	li := e.LineUnderPoint(x, y)
	return selection.Position{Line: li, Offset: e.lines[li].OffsetAt(x)}
}

func (e *Editor) MoveSelectionToPoint(x, y float64) {
	p := e.PositionAtPoint(x, y)
	e.sel.MoveTo(p.Line, p.Offset)
}

// ExtendSelectionToPoint keeps the anchor and moves the focus under the
// point, as a drag does.
func (e *Editor) ExtendSelectionToPoint(x, y float64) {
	p := e.PositionAtPoint(x, y)
	e.sel.ExtendTo(p.Line, p.Offset)
}

// SelectWordAtPoint selects the word under the point. Spaces, newlines
// and the line edges bound a word.
func (e *Editor) SelectWordAtPoint(x, y float64) {
	p := e.PositionAtPoint(x, y)
	text := []rune(e.lines[p.Line].Text())
	isBreak := func(r rune) bool { return r == ' ' || r == '\n' }

	begin := min(p.Offset, len(text))
	for begin > 0 && !isBreak(text[begin-1]) {
		begin--
	}
	end := min(p.Offset, len(text))
	for end < len(text) && !isBreak(text[end]) {
		end++
	}
	e.sel = selection.Between(
		selection.Position{Line: p.Line, Offset: begin},
		selection.Position{Line: p.Line, Offset: end},
	)
}

// SelectLineAtPoint selects the whole visual line under the point.
func (e *Editor) SelectLineAtPoint(x, y float64) {
	li := e.LineUnderPoint(x, y)
	e.sel = selection.Between(
		selection.Position{Line: li},
		selection.Position{Line: li, Offset: e.lines[li].Len()},
	)
}

// SelectAll selects from the document start to the last caret position.
func (e *Editor) SelectAll() {
	last := len(e.lines) - 1
	e.sel = selection.Between(
		selection.Position{},
		selection.Position{Line: last, Offset: e.lines[last].MaxOffset()},
	)
}
