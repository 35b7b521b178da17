package measure

import (
	"testing"

	"canvasedit/pkg/richdoc"
)

var plainFont = richdoc.Font{Size: 16}

func TestGridWidths(t *testing.T) {
	g := NewGrid()
	if got := g.MeasureWidth("abc", plainFont); got != 24 {
		t.Fatalf("expected 24, got %v", got)
	}
	// East Asian wide runes take two cells.
	if got := g.MeasureWidth("日本", plainFont); got != 32 {
		t.Fatalf("expected 32 for wide runes, got %v", got)
	}
	if got := g.MeasureHeight(richdoc.Font{Size: 10}); got < 5.99 || got > 6.01 {
		t.Fatalf("expected 6, got %v", got)
	}
}

func TestFaceMeasurer(t *testing.T) {
	m, err := NewFaceMeasurer()
	if err != nil {
		t.Fatalf("load fonts: %v", err)
	}
	short := m.MeasureWidth("ab", plainFont)
	long := m.MeasureWidth("abcd", plainFont)
	if short <= 0 || long <= short {
		t.Fatalf("widths not increasing: %v %v", short, long)
	}
	if again := m.MeasureWidth("abcd", plainFont); again != long {
		t.Fatalf("measurement not stable: %v then %v", long, again)
	}
	big := m.MeasureWidth("abcd", richdoc.Font{Size: 32})
	if big <= long {
		t.Fatalf("larger font should be wider: %v vs %v", big, long)
	}
	if m.MeasureHeight(plainFont) <= 0 {
		t.Fatal("expected positive glyph height")
	}
	if m.Face(plainFont) != m.Face(plainFont) {
		t.Fatal("faces should be cached")
	}
}
