package measure

import (
	"github.com/rivo/uniseg"

	"canvasedit/pkg/richdoc"
)

// DefaultCellRatio makes a 16px font eight pixels per cell.
const DefaultCellRatio = 0.5

// Grid measures text on a monospace grid: each terminal cell is
// CellRatio times the font size wide. Wide runes take two cells.
type Grid struct {
	CellRatio float64
}

func NewGrid() Grid {
	return Grid{CellRatio: DefaultCellRatio}
}

func (g Grid) cell(f richdoc.Font) float64 {
	ratio := g.CellRatio
	if ratio <= 0 {
		ratio = DefaultCellRatio
	}
	return ratio * f.Size
}

func (g Grid) MeasureWidth(text string, f richdoc.Font) float64 {
	return float64(uniseg.StringWidth(text)) * g.cell(f)
}

// MeasureHeight approximates glyph height as 1.2 times the width of "W".
func (g Grid) MeasureHeight(f richdoc.Font) float64 {
	return g.MeasureWidth("W", f) * 1.2
}
