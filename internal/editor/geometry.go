package editor

import (
	"fmt"

	"canvasedit/internal/layout"
)

// Caret is a vertical bar; Y is its top edge.
type Caret struct {
	X, Y, Height float64
}

// Geometry is what the host paints for the selection: a caret when
// Collapsed, otherwise one rectangle per covered line.
type Geometry struct {
	Collapsed bool
	Caret     Caret
	Rects     []layout.Rect
}

func (e *Editor) SelectionGeometry() (Geometry, error) {
	if e.sel.IsCollapsed() {
		p := e.clampPosition(e.sel.Focus())
		line := e.lines[p.Line]
		x, err := line.CursorX(p.Offset)
		if err != nil {
			return Geometry{}, fmt.Errorf("%w: %w", ErrAddressing, err)
		}
		h := line.LineHeight()
		return Geometry{Collapsed: true, Caret: Caret{X: x, Y: line.Y() - h, Height: h}}, nil
	}

	o := e.sel.Ordered()
	begin, finish := e.clampPosition(o.Begin()), e.clampPosition(o.Finish())
	var rects []layout.Rect
	add := func(r layout.Rect, err error) error {
		if err != nil {
			return fmt.Errorf("%w: %w", ErrAddressing, err)
		}
		if !r.Empty() {
			rects = append(rects, r)
		}
		return nil
	}

	if begin.Line == finish.Line {
		if err := add(e.lines[begin.Line].SpanRect(begin.Offset, finish.Offset)); err != nil {
			return Geometry{}, err
		}
		return Geometry{Rects: rects}, nil
	}
	if err := add(e.lines[begin.Line].RectToEnd(begin.Offset)); err != nil {
		return Geometry{}, err
	}
	for li := begin.Line + 1; li < finish.Line; li++ {
		if err := add(e.lines[li].FullRect(), nil); err != nil {
			return Geometry{}, err
		}
	}
	if err := add(e.lines[finish.Line].RectFromStart(finish.Offset)); err != nil {
		return Geometry{}, err
	}
	return Geometry{Rects: rects}, nil
}
