package layout

import (
	"errors"
	"fmt"
	"strings"

	"canvasedit/pkg/richdoc"
)

var ErrOffset = errors.New("layout: offset outside line")

// Fragment is a positioned piece of a single run.
type Fragment struct {
	Text  string
	Style richdoc.Style
	X     float64
	// Y is the bottom edge of the fragment's row.
	Y float64
	// Width excludes a trailing newline.
	Width       float64
	LineHeight  float64
	GlyphHeight float64
	// Run is the index of the source run, -1 for an empty document. Start
	// is the rune offset of Text within that run.
	Run   int
	Start int
}

func (f Fragment) Len() int { return runeLen(f.Text) }

// Bounds is the fragment's box on its row.
func (f Fragment) Bounds() Rect {
	return Rect{X: f.X, Y: f.Y - f.LineHeight, W: f.Width, H: f.LineHeight}
}

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return r.X <= x && x < r.X+r.W && r.Y <= y && y < r.Y+r.H
}

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Line is one visual row.
type Line struct {
	Fragments []Fragment

	start int
	width func(string, richdoc.Font) float64
}

// Start is the flat document index of the line's first character.
func (l Line) Start() int { return l.start }

func (l Line) X() float64 {
	if len(l.Fragments) == 0 {
		return 0
	}
	return l.Fragments[0].X
}

func (l Line) Y() float64 {
	y := 0.0
	for _, f := range l.Fragments {
		y = max(y, f.Y)
	}
	return y
}

func (l Line) LineHeight() float64 {
	h := 0.0
	for _, f := range l.Fragments {
		h = max(h, f.LineHeight)
	}
	return h
}

func (l Line) GlyphHeight() float64 {
	h := 0.0
	for _, f := range l.Fragments {
		h = max(h, f.GlyphHeight)
	}
	return h
}

func (l Line) Text() string {
	var b strings.Builder
	for _, f := range l.Fragments {
		b.WriteString(f.Text)
	}
	return b.String()
}

// Len counts runes, including a trailing newline.
func (l Line) Len() int {
	n := 0
	for _, f := range l.Fragments {
		n += f.Len()
	}
	return n
}

func (l Line) EndsInNewline() bool {
	n := len(l.Fragments)
	return n > 0 && strings.HasSuffix(l.Fragments[n-1].Text, "\n")
}

// MaxOffset is the last caret offset on the line; the caret never sits
// after a newline.
func (l Line) MaxOffset() int {
	if l.EndsInNewline() {
		return l.Len() - 1
	}
	return l.Len()
}

func (l Line) Width() float64 {
	w := 0.0
	for _, f := range l.Fragments {
		w += f.Width
	}
	return w
}

func (l Line) measure(text string, f richdoc.Font) float64 {
	text = strings.TrimSuffix(text, "\n")
	if text == "" || l.width == nil {
		return 0
	}
	return l.width(text, f)
}

// CursorX returns the x coordinate of the caret before the character at
// offset.
func (l Line) CursorX(offset int) (float64, error) {
	if offset < 0 || offset > l.Len() {
		return 0, fmt.Errorf("%w: %d not in 0..%d", ErrOffset, offset, l.Len())
	}
	counter := 0
	for _, f := range l.Fragments {
		n := f.Len()
		if counter <= offset && offset <= counter+n {
			prefix := string([]rune(f.Text)[:offset-counter])
			return f.X + l.measure(prefix, f.Style.Font()), nil
		}
		counter += n
	}
	return l.X(), nil
}

// OffsetAt returns the caret offset nearest to x.
func (l Line) OffsetAt(x float64) int {
	if x <= l.X() {
		return 0
	}
	if x >= l.X()+l.Width() {
		return l.MaxOffset()
	}
	counter := 0
	for _, f := range l.Fragments {
		if f.X <= x && x <= f.X+f.Width {
			return min(counter+l.offsetInFragment(f, x-f.X), l.MaxOffset())
		}
		counter += f.Len()
	}
	return l.MaxOffset()
}

func (l Line) offsetInFragment(f Fragment, x float64) int {
	runes := []rune(strings.TrimSuffix(f.Text, "\n"))
	font := f.Style.Font()
	before := 0.0
	for i := 1; i <= len(runes); i++ {
		after := l.measure(string(runes[:i]), font)
		if before <= x && x <= after {
			if x-before > (after-before)/2 {
				return i
			}
			return i - 1
		}
		before = after
	}
	return len(runes)
}

// SpanRect boxes the text between two offsets.
func (l Line) SpanRect(begin, end int) (Rect, error) {
	x0, err := l.CursorX(begin)
	if err != nil {
		return Rect{}, err
	}
	x1, err := l.CursorX(end)
	if err != nil {
		return Rect{}, err
	}
	h := l.LineHeight()
	return Rect{X: x0, Y: l.Y() - h, W: x1 - x0, H: h}, nil
}

// RectFromStart boxes the line from its start to offset.
func (l Line) RectFromStart(offset int) (Rect, error) {
	return l.SpanRect(0, offset)
}

// RectToEnd boxes the line from offset to its end.
func (l Line) RectToEnd(offset int) (Rect, error) {
	x0, err := l.CursorX(offset)
	if err != nil {
		return Rect{}, err
	}
	h := l.LineHeight()
	return Rect{X: x0, Y: l.Y() - h, W: l.X() + l.Width() - x0, H: h}, nil
}

func (l Line) FullRect() Rect {
	h := l.LineHeight()
	return Rect{X: l.X(), Y: l.Y() - h, W: l.Width(), H: h}
}

// FragmentAt returns the fragment under the point, if any.
func (l Line) FragmentAt(x, y float64) (Fragment, bool) {
	for _, f := range l.Fragments {
		if f.Bounds().Contains(x, y) {
			return f, true
		}
	}
	return Fragment{}, false
}
