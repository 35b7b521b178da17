package selection

import "fmt"

type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Backward reports whether moving in d heads toward the document start.
func (d Direction) Backward() bool {
	return d == Left || d == Up
}

// Position is a caret location in visual line space.
type Position struct {
	Line   int
	Offset int
}

// Compare orders positions in text order.
func (p Position) Compare(o Position) int {
	switch {
	case p.Line < o.Line:
		return -1
	case p.Line > o.Line:
		return 1
	case p.Offset < o.Offset:
		return -1
	case p.Offset > o.Offset:
		return 1
	}
	return 0
}

// Selection is an anchor (Start) and focus (End) in (line, offset) space.
// The focus may come before the anchor.
type Selection struct {
	StartLine   int
	StartOffset int
	EndLine     int
	EndOffset   int
}

// Ordered is a selection with Begin at or before Finish in text order.
type Ordered struct {
	BeginLine    int
	BeginOffset  int
	FinishLine   int
	FinishOffset int
}

func (o Ordered) Begin() Position  { return Position{Line: o.BeginLine, Offset: o.BeginOffset} }
func (o Ordered) Finish() Position { return Position{Line: o.FinishLine, Offset: o.FinishOffset} }

func Collapsed(line, offset int) Selection {
	return Selection{StartLine: line, StartOffset: offset, EndLine: line, EndOffset: offset}
}

func Between(anchor, focus Position) Selection {
	return Selection{StartLine: anchor.Line, StartOffset: anchor.Offset, EndLine: focus.Line, EndOffset: focus.Offset}
}

func (s Selection) Anchor() Position { return Position{Line: s.StartLine, Offset: s.StartOffset} }
func (s Selection) Focus() Position  { return Position{Line: s.EndLine, Offset: s.EndOffset} }

func (s Selection) IsCollapsed() bool {
	return s.StartLine == s.EndLine && s.StartOffset == s.EndOffset
}

func (s Selection) IsExtended() bool {
	return !s.IsCollapsed()
}

func (s Selection) Ordered() Ordered {
	begin, finish := s.Anchor(), s.Focus()
	if begin.Compare(finish) > 0 {
		begin, finish = finish, begin
	}
	return Ordered{
		BeginLine:    begin.Line,
		BeginOffset:  begin.Offset,
		FinishLine:   finish.Line,
		FinishOffset: finish.Offset,
	}
}

// CollapseToStart collapses onto the earlier end in text order.
func (s *Selection) CollapseToStart() *Selection {
	o := s.Ordered()
	return s.MoveTo(o.BeginLine, o.BeginOffset)
}

// CollapseToEnd collapses onto the later end in text order.
func (s *Selection) CollapseToEnd() *Selection {
	o := s.Ordered()
	return s.MoveTo(o.FinishLine, o.FinishOffset)
}

// CollapseToward collapses onto the end a move in d would leave from.
func (s *Selection) CollapseToward(d Direction) *Selection {
	if d.Backward() {
		return s.CollapseToStart()
	}
	return s.CollapseToEnd()
}

func (s *Selection) MoveTo(line, offset int) *Selection {
	*s = Collapsed(line, offset)
	return s
}

// ExtendTo moves the focus and keeps the anchor.
func (s *Selection) ExtendTo(line, offset int) *Selection {
	s.EndLine = line
	s.EndOffset = offset
	return s
}

func (s Selection) String() string {
	return fmt.Sprintf("(%d:%d)-(%d:%d)", s.StartLine, s.StartOffset, s.EndLine, s.EndOffset)
}
