package platform

import "canvasedit/internal/render"

type WindowConfig struct {
	Title       string
	WidthPx     int
	HeightPx    int
	MinWidthPx  int
	MinHeightPx int
}

type EventType int

const (
	EventUnknown EventType = iota
	EventClose
	EventResize
	EventKeyDown
	EventTextInput
	EventMouseDown
	EventMouseDrag
	EventMouseUp
)

type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

func (m Modifiers) Shift() bool { return m&ModShift != 0 }
func (m Modifiers) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Modifiers) Alt() bool   { return m&ModAlt != 0 }

// Key names for EventKeyDown. Letter and digit keys use their lowercase
// character, e.g. "z" or "1".
const (
	KeyLeft      = "ArrowLeft"
	KeyRight     = "ArrowRight"
	KeyUp        = "ArrowUp"
	KeyDown      = "ArrowDown"
	KeyHome      = "Home"
	KeyEnd       = "End"
	KeyBackspace = "Backspace"
	KeyDelete    = "Delete"
	KeyEnter     = "Enter"
	KeyTab       = "Tab"
)

// Event is host input in document coordinates. Clicks counts consecutive
// presses for EventMouseDown.
type Event struct {
	Type   EventType
	Key    string
	Mods   Modifiers
	Text   string
	X      float64
	Y      float64
	Clicks int
	Width  int
	Height int
}

type Platform interface {
	Name() string
	CreateWindow(cfg WindowConfig) (Window, error)
}

type Window interface {
	PollEvents() []Event
	SizePx() (int, int)
	Present(fb *render.FrameBuffer) error
	SetTitle(title string)
	Close()
}

// Clipboard is the text clipboard the dispatcher copies to and pastes from.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// MemoryClipboard keeps clipboard text inside the process.
type MemoryClipboard struct {
	text string
}

func (c *MemoryClipboard) ReadAll() (string, error) { return c.text, nil }

func (c *MemoryClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}
