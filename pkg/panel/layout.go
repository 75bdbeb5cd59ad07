package panel

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTracePanel/pkg/kicad/geom"
)

// BoardCell is the tiling unit of the panel: the source board's outline
// bounding box grown by the inter-board padding. Computed once per run.
type BoardCell struct {
	Width  geom.Length
	Height geom.Length
}

// NewBoardCell derives the cell from the board outline bounds and the
// requested padding.
func NewBoardCell(outline geom.Rect, padding geom.Length) BoardCell {
	return BoardCell{
		Width:  outline.Width() + padding,
		Height: outline.Height() + padding,
	}
}

// GridSpec is the number of board copies in each axis. Both counts are
// at least 1 for any grid produced by Solve.
type GridSpec struct {
	NumX int
	NumY int
}

// Count returns the total number of boards on the panel.
func (g GridSpec) Count() int {
	return g.NumX * g.NumY
}

// Offsets returns the translation for every grid position except the
// origin, which holds the source board itself.
func (g GridSpec) Offsets(cell BoardCell) []geom.Vec {
	offsets := make([]geom.Vec, 0, g.Count()-1)
	for x := 0; x < g.NumX; x++ {
		for y := 0; y < g.NumY; y++ {
			if x == 0 && y == 0 {
				continue
			}
			offsets = append(offsets, geom.Vec{
				X: geom.Length(x) * cell.Width,
				Y: geom.Length(y) * cell.Height,
			})
		}
	}
	return offsets
}

// RailSpec is the pair of edge rail widths. HWidth is the rail along the
// left and right panel edges, VWidth along the top and bottom.
type RailSpec struct {
	HWidth geom.Length
	VWidth geom.Length
}

// Solve determines the copy grid. In explicit-count mode the counts are
// taken from the config; in envelope mode each axis gets as many whole
// cells as fit in the target size after subtracting both rails. A zero
// count in either axis is fatal.
func Solve(cell BoardCell, rails RailSpec, cfg *Config) (GridSpec, error) {
	grid := GridSpec{NumX: cfg.NumX, NumY: cfg.NumY}

	if cfg.EnvelopeMode() {
		grid.NumX = fitCount(cfg.PanelWidth, rails.HWidth, cell.Width)
		grid.NumY = fitCount(cfg.PanelHeight, rails.VWidth, cell.Height)
	}

	if grid.NumX < 1 || grid.NumY < 1 {
		return GridSpec{}, fmt.Errorf("%w: %s x %s mm board", ErrPanelTooSmall,
			cell.Width.FormatMM(), cell.Height.FormatMM())
	}
	return grid, nil
}

// fitCount is the number of whole cells that fit in the envelope once
// both rails are subtracted.
func fitCount(envelope, rail, cell geom.Length) int {
	usable := envelope - 2*rail
	if usable <= 0 || cell <= 0 {
		return 0
	}
	return int(usable / cell)
}
