package headless

import (
	"testing"

	"canvasedit/internal/editor"
	"canvasedit/internal/measure"
	"canvasedit/internal/platform"
	"canvasedit/internal/render"
	"canvasedit/internal/ui"
)

func TestScriptedSession(t *testing.T) {
	win, err := New().CreateWindow(platform.WindowConfig{Title: "test", WidthPx: 400, HeightPx: 300})
	if err != nil {
		t.Fatal(err)
	}
	w := win.(*Window)
	ed := editor.New(nil, measure.NewGrid(), editor.Options{Width: 200})
	clip := &platform.MemoryClipboard{}

	w.Push(
		platform.Event{Type: platform.EventTextInput, Text: "hello"},
		platform.Event{Type: platform.EventKeyDown, Key: platform.KeyLeft, Mods: platform.ModShift},
		platform.Event{Type: platform.EventKeyDown, Key: platform.KeyLeft, Mods: platform.ModShift},
	)
	closed, err := platform.Pump(w, ed, clip)
	if closed || err != nil {
		t.Fatalf("pump: closed=%t err=%v", closed, err)
	}
	if ed.Text() != "hello" {
		t.Fatalf("unexpected text %q", ed.Text())
	}

	theme := ui.DefaultTheme()
	fb := render.NewFrameBuffer(w.SizePx())
	layout, err := ui.DrawEditor(fb, ed, theme, 1, 0, true)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Present(fb); err != nil {
		t.Fatal(err)
	}
	frame, n := w.Frame()
	if n != 1 {
		t.Fatalf("expected one frame, got %d", n)
	}
	// "hel|lo": the selection covers x 24..40 of the first line.
	c := layout.Content.Min
	if frame.At(c.X+30, c.Y+10) != theme.Selection {
		t.Fatalf("selection not painted")
	}
	if frame.At(c.X+10, c.Y+10) != theme.Page {
		t.Fatalf("unselected text area should be page colored")
	}

	fb.Clear(theme.Canvas)
	if got, _ := w.Frame(); got.At(c.X+30, c.Y+10) != theme.Selection {
		t.Fatal("presented frame should be a copy")
	}

	w.Close()
	if closed, _ := platform.Pump(w, ed, clip); !closed {
		t.Fatal("expected close after Close")
	}
}

func TestPushResizeUpdatesSize(t *testing.T) {
	win, _ := New().CreateWindow(platform.WindowConfig{WidthPx: 10, HeightPx: 10, MinWidthPx: 50, MinHeightPx: 40})
	w := win.(*Window)
	if x, y := w.SizePx(); x != 50 || y != 40 {
		t.Fatalf("min size not applied: %dx%d", x, y)
	}
	w.Push(platform.Event{Type: platform.EventResize, Width: 640, Height: 480})
	if x, y := w.SizePx(); x != 640 || y != 480 {
		t.Fatalf("unexpected size %dx%d", x, y)
	}
	w.SetTitle("renamed")
	if w.Title() != "renamed" {
		t.Fatalf("title not set")
	}
}
