package render

import (
	"image"
	"image/color"
	"testing"

	"canvasedit/internal/editor"
	"canvasedit/internal/layout"
	"canvasedit/internal/measure"
	"canvasedit/pkg/richdoc"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

func TestFillRectClips(t *testing.T) {
	fb := NewFrameBuffer(10, 10)
	fb.Clear(white)
	fb.FillRect(-5, -5, 8, 8, blue)
	if fb.At(0, 0) != blue || fb.At(2, 2) != blue || fb.At(3, 3) != white {
		t.Fatalf("unexpected fill result")
	}
	fb.FillRectWithin(image.Rect(5, 5, 7, 7), 0, 0, 10, 10, red)
	if fb.At(4, 4) != white || fb.At(5, 5) != red || fb.At(7, 7) != white {
		t.Fatalf("clip not honored")
	}
	fb.StrokeRect(0, 0, 10, 10, 1, red)
	if fb.At(9, 0) != red || fb.At(0, 9) != red {
		t.Fatalf("stroke missing corners")
	}
}

func TestPaintGeometry(t *testing.T) {
	fb := NewFrameBuffer(100, 60)
	fb.Clear(white)
	v := Viewport{Origin: image.Pt(10, 0), Clip: fb.Bounds()}

	PaintGeometry(fb, v, editor.Geometry{Collapsed: true, Caret: editor.Caret{X: 8, Height: 28}}, true, blue, red)
	if fb.At(18, 10) != red || fb.At(19, 10) != white {
		t.Fatalf("caret not painted at x=18")
	}

	fb.Clear(white)
	PaintGeometry(fb, v, editor.Geometry{Collapsed: true, Caret: editor.Caret{X: 8, Height: 28}}, false, blue, red)
	if fb.At(18, 10) != white {
		t.Fatalf("hidden caret painted")
	}

	g := editor.Geometry{Rects: []layout.Rect{{X: 0, Y: 0, W: 16, H: 28}, {X: 0, Y: 28, W: 8, H: 28}}}
	PaintGeometry(fb, v, g, true, blue, red)
	if fb.At(10, 5) != blue || fb.At(25, 5) != blue || fb.At(26, 5) != white || fb.At(12, 40) != blue {
		t.Fatalf("selection rects not painted")
	}
}

func TestPaintHighlights(t *testing.T) {
	hl := richdoc.DefaultPresets().Plain()
	hl.Highlight = 0xFFFF00FF
	ul := richdoc.DefaultPresets().Plain()
	ul.Underline = 0xFF0000FF

	engine := layout.NewEngine(measure.NewGrid(), richdoc.DefaultPresets().Plain())
	lines := engine.Generate(richdoc.Runs{{Style: hl, Text: "ab"}, {Style: ul, Text: "cd"}}, 500)

	fb := NewFrameBuffer(64, 40)
	fb.Clear(white)
	PaintHighlights(fb, Viewport{Clip: fb.Bounds()}, lines)

	yellow := color.RGBA{R: 255, G: 255, A: 255}
	if fb.At(4, 10) != yellow || fb.At(20, 10) == yellow {
		t.Fatalf("highlight not confined to the first fragment")
	}
	base := Baseline(lines[0].Fragments[1]) + 1
	if fb.At(20, base) != red || fb.At(40, base) != white {
		t.Fatalf("underline missing at y=%d", base)
	}
}
