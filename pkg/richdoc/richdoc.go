package richdoc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	DefaultFontSize   = 16
	DefaultLineHeight = 28
	DefaultTextColor  = uint32(0x000000FF)
)

var (
	ErrInvalidDocument = errors.New("richdoc: invalid document")
	ErrInvalidStyle    = errors.New("richdoc: invalid style")
)

// Style is the formatting shared by every character of a run. Colors are
// packed 0xRRGGBBAA; a zero Highlight or Underline means none.
type Style struct {
	Italic     bool
	Bold       bool
	FontSize   float64
	LineHeight float64
	TextColor  uint32
	Highlight  uint32
	Underline  uint32
}

// Font is the subset of a style that affects measurement.
type Font struct {
	Italic bool
	Bold   bool
	Size   float64
}

func (f Font) String() string {
	fontStyle := "normal"
	if f.Italic {
		fontStyle = "italic"
	}
	weight := "normal"
	if f.Bold {
		weight = "bold"
	}
	return fontStyle + " " + weight + " " + strconv.FormatFloat(f.Size, 'f', -1, 64) + "px serif"
}

func (s Style) Font() Font {
	return Font{Italic: s.Italic, Bold: s.Bold, Size: s.FontSize}
}

func (s Style) HasHighlight() bool { return s.Highlight != 0 }
func (s Style) HasUnderline() bool { return s.Underline != 0 }

func (s Style) Validate() error {
	if s.FontSize <= 0 {
		return fmt.Errorf("%w: font size must be positive, got %v", ErrInvalidStyle, s.FontSize)
	}
	if s.LineHeight <= 0 {
		return fmt.Errorf("%w: line height must be positive, got %v", ErrInvalidStyle, s.LineHeight)
	}
	return nil
}

// Normalize fills in the defaults a loaded or configured style may omit.
func (s Style) Normalize() Style {
	if s.FontSize <= 0 {
		s.FontSize = DefaultFontSize
	}
	if s.LineHeight <= 0 {
		s.LineHeight = DefaultLineHeight
	}
	if s.TextColor == 0 {
		s.TextColor = DefaultTextColor
	}
	return s
}

type Run struct {
	Style Style
	Text  string
}

// Len is the run length in runes.
func (r Run) Len() int {
	return utf8.RuneCountInString(r.Text)
}

// Runs is the document: the concatenation of every run's text is the full
// document text. Edits never modify a Runs value in place.
type Runs []Run

func (rs Runs) Text() string {
	var b strings.Builder
	for _, r := range rs {
		b.WriteString(r.Text)
	}
	return b.String()
}

func (rs Runs) Len() int {
	n := 0
	for _, r := range rs {
		n += r.Len()
	}
	return n
}

func (rs Runs) Clone() Runs {
	if rs == nil {
		return nil
	}
	out := make(Runs, len(rs))
	copy(out, rs)
	return out
}

// Compact drops runs with no text.
func (rs Runs) Compact() Runs {
	out := make(Runs, 0, len(rs))
	for _, r := range rs {
		if r.Text != "" {
			out = append(out, r)
		}
	}
	return out
}

// Slice returns up to length runes of document text starting at the flat
// rune index start.
func (rs Runs) Slice(start, length int) string {
	if length <= 0 || start < 0 {
		return ""
	}
	var b strings.Builder
	counter := 0
	for _, r := range rs {
		text := []rune(r.Text)
		end := counter + len(text)
		if end <= start {
			counter = end
			continue
		}
		from := max(start-counter, 0)
		for i := from; i < len(text) && length > 0; i++ {
			b.WriteRune(text[i])
			length--
		}
		if length == 0 {
			break
		}
		counter = end
	}
	return b.String()
}

// StyleAt returns the style of the character at the flat rune index.
func (rs Runs) StyleAt(index int) (Style, bool) {
	counter := 0
	for _, r := range rs {
		n := r.Len()
		if counter <= index && index < counter+n {
			return r.Style, true
		}
		counter += n
	}
	return Style{}, false
}

func Validate(runs Runs) error {
	for i, r := range runs {
		if !utf8.ValidString(r.Text) {
			return fmt.Errorf("%w: run %d is not valid UTF-8", ErrInvalidDocument, i)
		}
		if err := r.Style.Validate(); err != nil {
			return fmt.Errorf("%w: run %d: %w", ErrInvalidDocument, i, err)
		}
	}
	return nil
}
