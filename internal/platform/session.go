package platform

import (
	"canvasedit/internal/editor"
	"canvasedit/internal/logger"
)

// Pump drains the window's pending events into the editor. It reports
// closed once the window asks to close. Dispatch errors are logged and do
// not stop the pump; the last one is returned.
func Pump(win Window, ed *editor.Editor, clip Clipboard) (closed bool, err error) {
	for _, ev := range win.PollEvents() {
		if ev.Type == EventClose {
			return true, err
		}
		if _, derr := Dispatch(ed, ev, clip); derr != nil {
			logger.Warnf("platform: event %d key %q: %v", ev.Type, ev.Key, derr)
			err = derr
		}
	}
	return false, err
}
