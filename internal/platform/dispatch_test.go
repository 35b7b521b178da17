package platform

import (
	"testing"

	"canvasedit/internal/editor"
	"canvasedit/internal/measure"
	"canvasedit/internal/selection"
	"canvasedit/pkg/richdoc"
)

func newEditor(text string) *editor.Editor {
	runs := richdoc.Runs{{Style: richdoc.DefaultPresets().Plain(), Text: text}}
	return editor.New(runs, measure.NewGrid(), editor.Options{})
}

func key(name string, mods Modifiers) Event {
	return Event{Type: EventKeyDown, Key: name, Mods: mods}
}

func mustDispatch(t *testing.T, ed *editor.Editor, clip Clipboard, events ...Event) {
	t.Helper()
	for _, ev := range events {
		if _, err := Dispatch(ed, ev, clip); err != nil {
			t.Fatalf("dispatch %#v: %v", ev, err)
		}
	}
}

func TestTypingAndEditingKeys(t *testing.T) {
	ed := newEditor("")
	clip := &MemoryClipboard{}
	mustDispatch(t, ed, clip,
		Event{Type: EventTextInput, Text: "helo\x07"},
		key(KeyLeft, 0),
		Event{Type: EventTextInput, Text: "l"},
		key(KeyEnd, 0),
		key(KeyEnter, 0),
		Event{Type: EventTextInput, Text: "x"},
		key(KeyBackspace, 0),
	)
	if got := ed.Text(); got != "hello\n" {
		t.Fatalf("unexpected text %q", got)
	}
	mustDispatch(t, ed, clip, key("z", ModCtrl))
	if got := ed.Text(); got != "hello\nx" {
		t.Fatalf("undo via ctrl+z: %q", got)
	}
	mustDispatch(t, ed, clip, key("z", ModCtrl|ModShift))
	if got := ed.Text(); got != "hello\n" {
		t.Fatalf("redo via ctrl+shift+z: %q", got)
	}
}

func TestClipboardShortcuts(t *testing.T) {
	ed := newEditor("copy me")
	clip := &MemoryClipboard{}

	mustDispatch(t, ed, clip, key("c", ModCtrl))
	if text, _ := clip.ReadAll(); text != "" {
		t.Fatalf("collapsed copy should not touch the clipboard, got %q", text)
	}

	mustDispatch(t, ed, clip, key("a", ModCtrl), key("x", ModCtrl))
	if text, _ := clip.ReadAll(); text != "copy me" || ed.Text() != "" {
		t.Fatalf("cut: clipboard %q, text %q", text, ed.Text())
	}
	mustDispatch(t, ed, clip, key("v", ModCtrl), key("v", ModCtrl))
	if got := ed.Text(); got != "copy mecopy me" {
		t.Fatalf("paste: %q", got)
	}
}

func TestShiftArrowsAndFormatting(t *testing.T) {
	ed := newEditor("abc def")
	clip := &MemoryClipboard{}
	mustDispatch(t, ed, clip,
		key(KeyRight, ModShift),
		key(KeyRight, ModShift),
		key("b", ModCtrl),
	)
	want := selection.Between(selection.Position{}, selection.Position{Offset: 2})
	if got := ed.Selection(); got != want {
		t.Fatalf("selection %s, want %s", got, want)
	}
	runs := ed.Runs()
	if len(runs) != 2 || !runs[0].Style.Bold || runs[0].Text != "ab" {
		t.Fatalf("unexpected runs: %#v", runs)
	}

	mustDispatch(t, ed, clip, key(KeyRight, ModCtrl|ModShift))
	if got := ed.Selection(); got.EndOffset != 3 {
		t.Fatalf("word extend: %s", got)
	}
	if handled, _ := Dispatch(ed, key("q", 0), clip); handled {
		t.Fatal("plain letter keys arrive as text input, not key downs")
	}
}

func TestMouseClicks(t *testing.T) {
	ed := newEditor("hello world")
	clip := &MemoryClipboard{}

	mustDispatch(t, ed, clip, Event{Type: EventMouseDown, X: 50, Y: 10, Clicks: 2})
	if text, _ := ed.Copy(); text != "world" {
		t.Fatalf("double click: %q", text)
	}
	mustDispatch(t, ed, clip, Event{Type: EventMouseDown, X: 50, Y: 10, Clicks: 3})
	if text, _ := ed.Copy(); text != "hello world" {
		t.Fatalf("triple click: %q", text)
	}
	mustDispatch(t, ed, clip,
		Event{Type: EventMouseDown, X: 0, Y: 10, Clicks: 1},
		Event{Type: EventMouseDrag, X: 40, Y: 10},
	)
	if text, _ := ed.Copy(); text != "hello" {
		t.Fatalf("drag: %q", text)
	}
	mustDispatch(t, ed, clip, Event{Type: EventMouseDown, X: 88, Y: 10, Clicks: 1, Mods: ModShift})
	if text, _ := ed.Copy(); text != "hello world" {
		t.Fatalf("shift click: %q", text)
	}
}

func TestResizeRewraps(t *testing.T) {
	ed := newEditor("hello world foo")
	mustDispatch(t, ed, &MemoryClipboard{}, Event{Type: EventResize, Width: 100})
	if n := len(ed.Lines()); n != 2 {
		t.Fatalf("expected 2 lines after resize, got %d", n)
	}
}
