// Package headless is a window backend with scripted input and captured
// frames, for driving the editor without a display.
package headless

import (
	"canvasedit/internal/platform"
	"canvasedit/internal/render"
)

type Backend struct{}

func New() *Backend { return &Backend{} }

func (b *Backend) Name() string { return "headless" }

func (b *Backend) CreateWindow(cfg platform.WindowConfig) (platform.Window, error) {
	return &Window{
		title: cfg.Title,
		w:     max(cfg.WidthPx, cfg.MinWidthPx),
		h:     max(cfg.HeightPx, cfg.MinHeightPx),
	}, nil
}

// Window queues events pushed by a test or script and keeps the last
// presented frame.
type Window struct {
	title   string
	w       int
	h       int
	pending []platform.Event
	frame   *render.FrameBuffer
	frames  int
	closed  bool
}

// Push queues events for the next PollEvents. Resize events also resize
// the window.
func (w *Window) Push(events ...platform.Event) {
	for _, ev := range events {
		if ev.Type == platform.EventResize {
			w.w, w.h = ev.Width, ev.Height
		}
	}
	w.pending = append(w.pending, events...)
}

func (w *Window) PollEvents() []platform.Event {
	if w.closed {
		return []platform.Event{{Type: platform.EventClose}}
	}
	events := w.pending
	w.pending = nil
	return events
}

func (w *Window) SizePx() (int, int) { return w.w, w.h }

func (w *Window) Title() string { return w.title }

func (w *Window) SetTitle(title string) {
	w.title = title
}

// Present copies fb so later drawing into it does not alter the capture.
func (w *Window) Present(fb *render.FrameBuffer) error {
	cp := render.NewFrameBuffer(fb.W, fb.H)
	copy(cp.Pixels, fb.Pixels)
	w.frame = cp
	w.frames++
	return nil
}

// Frame returns the last presented frame and how many were presented.
func (w *Window) Frame() (*render.FrameBuffer, int) { return w.frame, w.frames }

func (w *Window) Close() { w.closed = true }
