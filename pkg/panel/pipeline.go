package panel

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTracePanel/pkg/kicad/geom"
)

// MinPanelSide is the smallest panel dimension most fabs handle without
// special tooling; smaller panels get an advisory warning.
const MinPanelSide = 70 * geom.Scale

// Result summarizes a completed panelization run.
type Result struct {
	Grid     GridSpec
	Cell     BoardCell
	Panel    PanelGeometry
	Stats    DuplicateStats
	Warnings []string
}

// Run executes the panelization pipeline against a loaded document:
// solve the grid, duplicate every item kind, rebuild the outline, plan
// and place score lines and rail labels, and stamp the report text. The
// config must already have passed Validate. On error the document may
// have been partially mutated; the caller must not persist it.
func Run(doc Document, cfg *Config) (*Result, error) {
	var warnings []string
	for _, layer := range []string{cfg.ScoreLayer, cfg.ScoreTextLayer} {
		if !doc.HasLayer(layer) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLayer, layer)
		}
	}

	outline := doc.OutlineBounds()
	if outline.IsEmpty() {
		return nil, ErrNoOutline
	}

	cell := NewBoardCell(outline, cfg.Padding)
	rails := RailSpec{HWidth: cfg.HRail, VWidth: cfg.VRail}

	grid, err := Solve(cell, rails, cfg)
	if err != nil {
		return nil, err
	}

	stats := Duplicate(doc, cell, grid)

	// The realized array bounds come from the duplicated outline
	// drawings; with non-rectangular outlines they cannot be predicted
	// analytically, so they are measured only after duplication.
	array := doc.OutlineBounds()

	doc.RemoveOutline()
	panel, border := BuildOutline(array, rails, cfg.Padding, cfg.ScoreLayer)
	for _, edge := range border {
		doc.AddLine(edge)
	}

	scores := PlanScores(panel, cell, grid, rails, cfg.ScoreExtend,
		cfg.ScoreText, cfg.ScoreLayer, cfg.ScoreTextLayer)
	for _, s := range scores {
		doc.AddLine(s.Line)
		doc.AddText(s.Label)
	}

	for _, label := range PlanRailLabels(panel, rails, cfg, doc.TitleBlock()) {
		doc.AddText(label)
	}

	if cfg.Stamp {
		doc.AddText(stampLabel(panel, grid, cfg))
	}

	if panel.Width < MinPanelSide || panel.Height < MinPanelSide {
		warnings = append(warnings, "panel is under 70x70mm")
	}

	return &Result{
		Grid:     grid,
		Cell:     cell,
		Panel:    panel,
		Stats:    stats,
		Warnings: warnings,
	}, nil
}

// stampLabel is the provenance note written onto the panel itself, just
// below the score-line overshoot.
func stampLabel(panel PanelGeometry, grid GridSpec, cfg *Config) Label {
	text := fmt.Sprintf("%s (%dx%d panel)", cfg.OutputPath(), grid.NumX, grid.NumY)
	if cfg.StampArgs != "" {
		text += "\ngenerated with: " + cfg.StampArgs
	}
	return Label{
		Text:    text,
		At:      geom.Vec{X: panel.Center.X, Y: panel.Bottom() + cfg.ScoreExtend + 10*geom.Scale},
		Layer:   cfg.ScoreTextLayer,
		Size:    RailTextSize,
		Justify: JustifyCenter,
	}
}
