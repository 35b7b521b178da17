package history

import (
	"errors"
	"fmt"

	"canvasedit/internal/command"
	"canvasedit/internal/logger"
	"canvasedit/internal/selection"
	"canvasedit/pkg/richdoc"
)

var ErrOutOfRange = errors.New("history: no snapshot in that direction")

// Snapshot records one undo unit with the selections on either side of it.
type Snapshot struct {
	Before selection.Selection
	Change command.Change
	After  selection.Selection
}

// History is a linear undo stack. The pointer indexes the most recently
// applied snapshot; -1 means nothing has been applied.
type History struct {
	snapshots []Snapshot
	pointer   int
	limit     int
}

// New returns an empty history keeping at most limit snapshots. A limit of
// zero or less keeps everything.
func New(limit int) *History {
	return &History{pointer: -1, limit: limit}
}

func (h *History) IsAtStart() bool { return h.pointer == -1 }
func (h *History) IsAtEnd() bool   { return h.pointer == len(h.snapshots)-1 }
func (h *History) Len() int        { return len(h.snapshots) }
func (h *History) Pointer() int    { return h.pointer }

// Push discards any redo entries and appends s.
func (h *History) Push(s Snapshot) {
	h.snapshots = append(h.snapshots[:h.pointer+1], s)
	if h.limit > 0 && len(h.snapshots) > h.limit {
		drop := len(h.snapshots) - h.limit
		h.snapshots = append([]Snapshot(nil), h.snapshots[drop:]...)
	}
	h.pointer = len(h.snapshots) - 1
	logger.Debugf("history: push %d commands, pointer=%d size=%d", len(s.Change.Commands), h.pointer, len(h.snapshots))
}

// Undo reverses up to steps snapshots. Either every step applies or
// nothing changes.
func (h *History) Undo(runs richdoc.Runs, steps int) (richdoc.Runs, selection.Selection, error) {
	if h.IsAtStart() {
		return runs, selection.Selection{}, ErrOutOfRange
	}
	out := runs
	ptr := h.pointer
	var sel selection.Selection
	for ; steps > 0 && ptr > -1; steps-- {
		snap := h.snapshots[ptr]
		next, err := snap.Change.Reverse().Execute(out)
		if err != nil {
			return runs, selection.Selection{}, fmt.Errorf("history: undo snapshot %d: %w", ptr, err)
		}
		out = next
		sel = snap.Before
		ptr--
	}
	h.pointer = ptr
	logger.Debugf("history: undo to pointer=%d", h.pointer)
	return out, sel, nil
}

// Redo reapplies up to steps snapshots after the pointer.
func (h *History) Redo(runs richdoc.Runs, steps int) (richdoc.Runs, selection.Selection, error) {
	if h.IsAtEnd() {
		return runs, selection.Selection{}, ErrOutOfRange
	}
	out := runs
	ptr := h.pointer
	var sel selection.Selection
	for ; steps > 0 && ptr < len(h.snapshots)-1; steps-- {
		snap := h.snapshots[ptr+1]
		next, err := snap.Change.Execute(out)
		if err != nil {
			return runs, selection.Selection{}, fmt.Errorf("history: redo snapshot %d: %w", ptr+1, err)
		}
		out = next
		sel = snap.After
		ptr++
	}
	h.pointer = ptr
	logger.Debugf("history: redo to pointer=%d", h.pointer)
	return out, sel, nil
}
