package ui

import (
	"fmt"
	"image"
	"path/filepath"

	"canvasedit/internal/editor"
	"canvasedit/internal/render"
)

// Layout is the window split into chrome and the text content box.
type Layout struct {
	TopBarH   int
	StatusH   int
	CanvasY   int
	CanvasH   int
	Page      image.Rectangle
	Content   image.Rectangle
	StatusBar int
	// Origin is where document (0, 0) lands once scrolled; DrawEditor sets it.
	Origin image.Point
}

// ComputeLayout centers a page in the canvas. pageWidth is the wanted
// content width in pixels before scaling; the page shrinks to fit.
func ComputeLayout(w, h int, theme Theme, scale float32, pageWidth float64) Layout {
	if scale <= 0 {
		scale = 1
	}
	dp := func(v int) int { return int(float32(v) * scale) }

	topH := dp(theme.TopBarHeightDp)
	statusH := dp(theme.StatusHeightDp)
	margin := dp(theme.PageMarginDp)
	pad := dp(theme.PagePaddingDp)

	canvasY := topH
	canvasH := max(h-canvasY-statusH, 0)

	pageW := int(pageWidth) + pad*2
	pageW = min(pageW, w-margin*2)
	pageW = max(pageW, dp(200))
	pageH := max(canvasH-margin*2, dp(120))
	pageX := (w - pageW) / 2
	pageY := canvasY + margin

	page := image.Rect(pageX, pageY, pageX+pageW, pageY+pageH)
	return Layout{
		TopBarH:   topH,
		StatusH:   statusH,
		CanvasY:   canvasY,
		CanvasH:   canvasH,
		Page:      page,
		Content:   page.Inset(pad),
		StatusBar: h - statusH,
		Origin:    page.Inset(pad).Min,
	}
}

// DrawShell paints the window chrome and returns where the document goes.
func DrawShell(fb *render.FrameBuffer, theme Theme, scale float32, pageWidth float64) Layout {
	layout := ComputeLayout(fb.W, fb.H, theme, scale, pageWidth)

	fb.Clear(theme.AppBackground)
	fb.FillRect(0, 0, fb.W, layout.TopBarH, theme.TopBar)
	fb.FillRect(0, layout.CanvasY, fb.W, layout.CanvasH, theme.Canvas)

	p := layout.Page
	fb.FillRect(p.Min.X+2, p.Min.Y+2, p.Dx(), p.Dy(), theme.Shadow)
	fb.FillRect(p.Min.X, p.Min.Y, p.Dx(), p.Dy(), theme.Page)
	fb.StrokeRect(p.Min.X, p.Min.Y, p.Dx(), p.Dy(), 1, theme.Border)
	fb.FillRect(p.Min.X, p.Min.Y, p.Dx(), max(int(3*scale), 1), theme.Accent)

	fb.FillRect(0, layout.StatusBar, fb.W, layout.StatusH, theme.StatusBar)
	fb.StrokeRect(0, layout.StatusBar, fb.W, layout.StatusH, 1, theme.Border)
	return layout
}

// DrawEditor paints the chrome plus the editor's highlights and selection,
// scrolled up by scrollY pixels. Glyphs are left to the host, which draws
// them over the buffer at Origin.
func DrawEditor(fb *render.FrameBuffer, ed *editor.Editor, theme Theme, scale float32, scrollY int, showCaret bool) (Layout, error) {
	layout := DrawShell(fb, theme, scale, ed.Width())
	layout.Origin = layout.Content.Min.Sub(image.Pt(0, scrollY))
	v := render.Viewport{Origin: layout.Origin, Clip: layout.Content}
	render.PaintHighlights(fb, v, ed.Lines())
	g, err := ed.SelectionGeometry()
	if err != nil {
		return layout, err
	}
	render.PaintGeometry(fb, v, g, showCaret, theme.Selection, theme.Caret)
	return layout, nil
}

// StatusLine summarizes the editor for the status bar.
func StatusLine(ed *editor.Editor, path, status string) string {
	name := "Untitled"
	if path != "" {
		name = filepath.Base(path)
	}
	sel := ed.Selection()
	return fmt.Sprintf("[ %s ] [ Line %d:%d ] [ %d lines ] [ %s ]",
		name, sel.EndLine+1, sel.EndOffset, len(ed.Lines()), status)
}
