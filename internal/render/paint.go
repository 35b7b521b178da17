package render

import (
	"image"
	"image/color"
	"math"

	"canvasedit/internal/editor"
	"canvasedit/internal/layout"
)

// RGBA unpacks a 0xRRGGBBAA document color.
func RGBA(u uint32) color.RGBA {
	return color.RGBA{R: uint8((u >> 24) & 0xFF), G: uint8((u >> 16) & 0xFF), B: uint8((u >> 8) & 0xFF), A: uint8(u & 0xFF)}
}

// Viewport places document coordinates on the framebuffer. Origin is the
// framebuffer point of document (0, 0); Clip bounds all painting.
type Viewport struct {
	Origin image.Point
	Clip   image.Rectangle
}

func (v Viewport) rect(r layout.Rect) (x, y, w, h int) {
	x0 := int(math.Floor(r.X)) + v.Origin.X
	y0 := int(math.Floor(r.Y)) + v.Origin.Y
	x1 := int(math.Ceil(r.X+r.W)) + v.Origin.X
	y1 := int(math.Ceil(r.Y+r.H)) + v.Origin.Y
	return x0, y0, x1 - x0, y1 - y0
}

// PaintGeometry fills selection rectangles, or draws the caret when the
// selection is collapsed and showCaret is set.
func PaintGeometry(fb *FrameBuffer, v Viewport, g editor.Geometry, showCaret bool, selection, caret color.RGBA) {
	if g.Collapsed {
		if !showCaret {
			return
		}
		x, y, _, h := v.rect(layout.Rect{X: g.Caret.X, Y: g.Caret.Y, H: g.Caret.Height})
		fb.FillRectWithin(v.Clip, x, y+2, 1, max(2, h-4), caret)
		return
	}
	for _, r := range g.Rects {
		x, y, w, h := v.rect(r)
		fb.FillRectWithin(v.Clip, x, y+1, w, h-2, selection)
	}
}

// PaintHighlights paints fragment backgrounds for highlighted runs and a
// one pixel rule under underlined runs.
func PaintHighlights(fb *FrameBuffer, v Viewport, lines []layout.Line) {
	for _, line := range lines {
		for _, f := range line.Fragments {
			if f.Width <= 0 {
				continue
			}
			if f.Style.HasHighlight() {
				x, y, w, h := v.rect(f.Bounds())
				fb.FillRectWithin(v.Clip, x, y, w, h, RGBA(f.Style.Highlight))
			}
			if f.Style.HasUnderline() {
				x, _, w, _ := v.rect(f.Bounds())
				fb.FillRectWithin(v.Clip, x, Baseline(f)+v.Origin.Y+1, w, 1, RGBA(f.Style.Underline))
			}
		}
	}
}

// Baseline is the text baseline of a fragment in document pixels; glyphs
// sit vertically centered in the line box.
func Baseline(f layout.Fragment) int {
	top := f.Y - f.LineHeight
	return int(math.Round(top + (f.LineHeight+f.GlyphHeight)/2))
}
