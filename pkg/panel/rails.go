package panel

import (
	"github.com/OpenTraceLab/OpenTracePanel/pkg/kicad/geom"
)

// Rail lettering.
const (
	RailTextSize  = geom.Scale // 1 mm
	RailTextLayer = "F.SilkS"
)

// SynthesizeTitle builds the rail title string from the board's title
// block: the title, then " Rev. <rev>", ", <date>", and " (c) <company>"
// for each non-empty field.
func SynthesizeTitle(tb TitleBlock) string {
	s := tb.Title
	if tb.Revision != "" {
		s += " Rev. " + tb.Revision
	}
	if tb.Date != "" {
		s += ", " + tb.Date
	}
	if tb.Company != "" {
		s += " (c) " + tb.Company
	}
	return s
}

// PlanRailLabels computes up to four rail annotations: custom text and
// the board title, on the horizontal and vertical rails. Labels on the
// horizontal rail run vertically (rotated 90 degrees); labels on the
// vertical rail run horizontally. The caller guarantees that any rail
// carrying text is at least MinTextRail wide. Title labels are skipped
// when the title block is entirely empty.
func PlanRailLabels(panel PanelGeometry, rails RailSpec, cfg *Config, tb TitleBlock) []Label {
	var labels []Label

	if cfg.HRailText != "" {
		labels = append(labels, Label{
			Text:     cfg.HRailText,
			At:       geom.Vec{X: panel.Left() + rails.HWidth/2, Y: panel.Bottom() - RailTextSize},
			AngleDeg: 90,
			Layer:    RailTextLayer,
			Size:     RailTextSize,
			Justify:  JustifyLeft,
		})
	}

	if cfg.VRailText != "" {
		labels = append(labels, Label{
			Text:    cfg.VRailText,
			At:      geom.Vec{X: panel.Left() + RailTextSize, Y: panel.Top() + rails.VWidth/2},
			Layer:   RailTextLayer,
			Size:    RailTextSize,
			Justify: JustifyLeft,
		})
	}

	title := SynthesizeTitle(tb)
	if title != "" {
		if cfg.HTitle {
			labels = append(labels, Label{
				Text:     title,
				At:       geom.Vec{X: panel.Right() - rails.HWidth/2, Y: panel.Bottom() - RailTextSize},
				AngleDeg: 90,
				Layer:    RailTextLayer,
				Size:     RailTextSize,
				Justify:  JustifyLeft,
			})
		}
		if cfg.VTitle {
			labels = append(labels, Label{
				Text:    title,
				At:      geom.Vec{X: panel.Left() + RailTextSize, Y: panel.Bottom() - rails.VWidth/2},
				Layer:   RailTextLayer,
				Size:    RailTextSize,
				Justify: JustifyLeft,
			})
		}
	}

	return labels
}
