package panel

import (
	"github.com/OpenTraceLab/OpenTracePanel/pkg/kicad/geom"
)

// Score label lettering.
const (
	ScoreTextSize      = 2 * geom.Scale
	ScoreTextThickness = geom.Scale / 10
)

// ScoreLine is one separation line with its label.
type ScoreLine struct {
	Vertical bool
	Line     Line
	Label    Label
}

// PlanScores computes the interior separation lines of the panel.
//
// Vertical lines sit at panel.left + hRail + cell.width*i. When a
// horizontal rail exists the range includes both panel edges (the outer
// lines mark the rail-to-board separation); without a rail the panel
// edge is already a cut line, so only interior positions are scored.
// Horizontal lines follow the same rule with the vertical rail. Each
// line overshoots the panel bound by extend on both ends; a negative
// extend pulls the ends inward instead.
func PlanScores(panel PanelGeometry, cell BoardCell, grid GridSpec, rails RailSpec,
	extend geom.Length, text, lineLayer, textLayer string) []ScoreLine {

	top := panel.Top() - extend
	bottom := panel.Bottom() + extend
	left := panel.Left() - extend
	right := panel.Right() + extend

	var scores []ScoreLine

	first, last := interiorRange(rails.HWidth, grid.NumX)
	for i := first; i <= last; i++ {
		x := panel.Left() + rails.HWidth + cell.Width*geom.Length(i)
		scores = append(scores, ScoreLine{
			Vertical: true,
			Line: Line{
				Start: geom.Vec{X: x, Y: top},
				End:   geom.Vec{X: x, Y: bottom},
				Layer: lineLayer,
			},
			Label: Label{
				Text:      text,
				At:        geom.Vec{X: x, Y: top - ScoreTextSize},
				AngleDeg:  90,
				Layer:     textLayer,
				Size:      ScoreTextSize,
				Thickness: ScoreTextThickness,
				Justify:   JustifyLeft,
			},
		})
	}

	first, last = interiorRange(rails.VWidth, grid.NumY)
	for i := first; i <= last; i++ {
		y := panel.Top() + rails.VWidth + cell.Height*geom.Length(i)
		scores = append(scores, ScoreLine{
			Line: Line{
				Start: geom.Vec{X: left, Y: y},
				End:   geom.Vec{X: right, Y: y},
				Layer: lineLayer,
			},
			Label: Label{
				Text:      text,
				At:        geom.Vec{X: left - ScoreTextSize, Y: y},
				Layer:     textLayer,
				Size:      ScoreTextSize,
				Thickness: ScoreTextThickness,
				Justify:   JustifyRight,
			},
		})
	}

	return scores
}

// interiorRange returns the inclusive range of grid line indices to
// score along one axis, gated by the presence of a rail on that axis.
func interiorRange(rail geom.Length, num int) (first, last int) {
	if rail > 0 {
		return 0, num
	}
	return 1, num - 1
}
