package editor

import (
	"sort"
	"strings"

	"canvasedit/internal/selection"
	"canvasedit/pkg/richdoc"
)

// flatOf converts a (line, offset) position into a flat rune index.
func (e *Editor) flatOf(p selection.Position) int {
	p = e.clampPosition(p)
	return e.lines[p.Line].Start() + p.Offset
}

// positionOf maps a flat index to the line that starts at or before it.
// An index on a soft wrap lands at the start of the following line.
func (e *Editor) positionOf(flat int) selection.Position {
	flat = clamp(flat, 0, e.runs.Len())
	li := sort.Search(len(e.lines), func(i int) bool { return e.lines[i].Start() > flat }) - 1
	li = clamp(li, 0, len(e.lines)-1)
	return selection.Position{Line: li, Offset: flat - e.lines[li].Start()}
}

func (e *Editor) clampPosition(p selection.Position) selection.Position {
	p.Line = clamp(p.Line, 0, len(e.lines)-1)
	p.Offset = clamp(p.Offset, 0, e.lines[p.Line].Len())
	return p
}

func (e *Editor) clampSelection(s selection.Selection) selection.Selection {
	return selection.Between(e.clampPosition(s.Anchor()), e.clampPosition(s.Focus()))
}

// orderedRange returns the selection as flat [begin, end).
func (e *Editor) orderedRange() (int, int) {
	o := e.sel.Ordered()
	return e.flatOf(o.Begin()), e.flatOf(o.Finish())
}

func runStarts(runs richdoc.Runs) []int {
	starts := make([]int, len(runs))
	counter := 0
	for i, r := range runs {
		starts[i] = counter
		counter += r.Len()
	}
	return starts
}

// insertionPoint finds the run and offset that text typed at flat joins.
// At a run boundary the left run wins, unless it ends a paragraph.
func insertionPoint(runs richdoc.Runs, flat int) (int, int) {
	counter := 0
	for i, r := range runs {
		n := r.Len()
		if counter <= flat && flat <= counter+n {
			if flat == counter+n && i+1 < len(runs) && strings.HasSuffix(r.Text, "\n") {
				return i + 1, 0
			}
			return i, flat - counter
		}
		counter += n
	}
	if len(runs) == 0 {
		return 0, 0
	}
	return len(runs) - 1, runs[len(runs)-1].Len()
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
