package measure

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"canvasedit/internal/logger"
	"canvasedit/pkg/richdoc"
)

type faceKey struct {
	size   int // font size in 1/1000 px
	bold   bool
	italic bool
}

// FaceMeasurer measures with the Go font family at 72 DPI, so one point is
// one pixel. Faces are created lazily and shared with the renderer.
type FaceMeasurer struct {
	mu         sync.Mutex
	regular    *opentype.Font
	bold       *opentype.Font
	italic     *opentype.Font
	boldItalic *opentype.Font
	cache      map[faceKey]font.Face
}

func NewFaceMeasurer() (*FaceMeasurer, error) {
	m := &FaceMeasurer{cache: map[faceKey]font.Face{}}
	for _, src := range []struct {
		dst  **opentype.Font
		ttf  []byte
		name string
	}{
		{&m.regular, goregular.TTF, "regular"},
		{&m.bold, gobold.TTF, "bold"},
		{&m.italic, goitalic.TTF, "italic"},
		{&m.boldItalic, gobolditalic.TTF, "bold italic"},
	} {
		f, err := opentype.Parse(src.ttf)
		if err != nil {
			return nil, fmt.Errorf("parse %s font: %w", src.name, err)
		}
		*src.dst = f
	}
	return m, nil
}

// Face returns the face for f, falling back to basicfont when a face cannot
// be built.
func (m *FaceMeasurer) Face(f richdoc.Font) font.Face {
	key := faceKey{size: int(math.Round(f.Size * 1000)), bold: f.Bold, italic: f.Italic}
	m.mu.Lock()
	defer m.mu.Unlock()
	if face, ok := m.cache[key]; ok {
		return face
	}
	var base *opentype.Font
	switch {
	case f.Bold && f.Italic:
		base = m.boldItalic
	case f.Bold:
		base = m.bold
	case f.Italic:
		base = m.italic
	default:
		base = m.regular
	}
	if base == nil || f.Size <= 0 {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(base, &opentype.FaceOptions{Size: f.Size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		logger.Warnf("measure: face %s unavailable: %v", f, err)
		return basicfont.Face7x13
	}
	m.cache[key] = face
	return face
}

func (m *FaceMeasurer) MeasureWidth(text string, f richdoc.Font) float64 {
	if text == "" {
		return 0
	}
	return fixedToFloat(font.MeasureString(m.Face(f), text))
}

// MeasureHeight approximates glyph height as 1.2 times the width of "W".
func (m *FaceMeasurer) MeasureHeight(f richdoc.Font) float64 {
	return m.MeasureWidth("W", f) * 1.2
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
