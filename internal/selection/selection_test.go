package selection

import "testing"

func TestOrderedNormalizesBackwardSelection(t *testing.T) {
	s := Selection{StartLine: 2, StartOffset: 1, EndLine: 0, EndOffset: 7}
	o := s.Ordered()
	if o.BeginLine != 0 || o.BeginOffset != 7 || o.FinishLine != 2 || o.FinishOffset != 1 {
		t.Fatalf("unexpected ordered selection: %#v", o)
	}

	same := Selection{StartLine: 1, StartOffset: 9, EndLine: 1, EndOffset: 3}
	if o := same.Ordered(); o.BeginOffset != 3 || o.FinishOffset != 9 {
		t.Fatalf("unexpected same-line ordering: %#v", o)
	}
}

func TestCollapseUsesTextOrder(t *testing.T) {
	// Offsets must travel with their line; a backward selection whose
	// earlier line has the larger offset is the interesting case.
	s := Selection{StartLine: 1, StartOffset: 2, EndLine: 0, EndOffset: 8}
	s.CollapseToStart()
	if s != Collapsed(0, 8) {
		t.Fatalf("collapse to start: got %v", s)
	}

	s = Selection{StartLine: 1, StartOffset: 2, EndLine: 0, EndOffset: 8}
	s.CollapseToEnd()
	if s != Collapsed(1, 2) {
		t.Fatalf("collapse to end: got %v", s)
	}
}

func TestCollapseToward(t *testing.T) {
	s := Selection{StartLine: 0, StartOffset: 1, EndLine: 0, EndOffset: 4}
	if got := *s.CollapseToward(Up); got != Collapsed(0, 1) {
		t.Fatalf("up should collapse to start, got %v", got)
	}
	s = Selection{StartLine: 0, StartOffset: 1, EndLine: 0, EndOffset: 4}
	if got := *s.CollapseToward(Right); got != Collapsed(0, 4) {
		t.Fatalf("right should collapse to end, got %v", got)
	}
}

func TestExtendKeepsAnchor(t *testing.T) {
	s := Collapsed(3, 2)
	s.ExtendTo(1, 0)
	if s.IsCollapsed() {
		t.Fatal("expected extended selection")
	}
	if s.Anchor() != (Position{Line: 3, Offset: 2}) || s.Focus() != (Position{Line: 1, Offset: 0}) {
		t.Fatalf("unexpected anchor/focus: %v", s)
	}
	clone := s
	clone.MoveTo(0, 0)
	if s.IsCollapsed() {
		t.Fatal("copies must not alias")
	}
}
