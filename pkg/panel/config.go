package panel

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTracePanel/pkg/kicad/geom"
)

// BoardFileExt is the file extension of KiCad board files.
const BoardFileExt = ".kicad_pcb"

// OutputSuffix is inserted before the extension of the output file.
const OutputSuffix = "_panelized"

// MinTextRail is the narrowest rail that can carry text or a title.
const MinTextRail = 2 * geom.Scale

// Config holds one panelization request. Either NumX/NumY or
// PanelWidth/PanelHeight must be set, never both.
type Config struct {
	SourcePath string

	// Explicit copy counts.
	NumX int
	NumY int

	// Target panel envelope; zero means unset.
	PanelWidth  geom.Length
	PanelHeight geom.Length

	// Extra space between boards.
	Padding geom.Length

	// Edge rail widths.
	HRail geom.Length
	VRail geom.Length

	// Rail annotations.
	HRailText string
	VRailText string
	HTitle    bool
	VTitle    bool

	// Score line placement.
	ScoreLayer     string
	ScoreTextLayer string
	ScoreText      string
	ScoreExtend    geom.Length // signed; negative pulls the line ends inward

	// Report stamp placed on the panel itself.
	Stamp     bool
	StampArgs string
}

// DefaultConfig returns a Config with the stock score-line settings.
func DefaultConfig() Config {
	return Config{
		ScoreLayer:     "Edge.Cuts",
		ScoreTextLayer: "Cmts.User",
		ScoreText:      "V-SCORE",
		ScoreExtend:    geom.FromMM(-0.05),
		Stamp:          true,
	}
}

// EnvelopeMode reports whether the grid is derived from a target panel
// size rather than explicit counts.
func (c *Config) EnvelopeMode() bool {
	return c.PanelWidth > 0 || c.PanelHeight > 0
}

// OutputPath derives the destination file from the source path.
func (c *Config) OutputPath() string {
	base := strings.TrimSuffix(c.SourcePath, BoardFileExt)
	return base + OutputSuffix + BoardFileExt
}

// Validate checks everything that can be checked before the board is
// loaded. All failures are fatal configuration errors.
func (c *Config) Validate() error {
	if !strings.HasSuffix(c.SourcePath, BoardFileExt) {
		return fmt.Errorf("%w: %s", ErrNotBoardFile, c.SourcePath)
	}

	counts := c.NumX > 0 || c.NumY > 0
	envelope := c.PanelWidth > 0 || c.PanelHeight > 0
	switch {
	case counts && envelope:
		return ErrBothModes
	case (c.PanelWidth <= 0 || c.PanelHeight <= 0) && (c.NumX <= 0 || c.NumY <= 0):
		return ErrNoMode
	}

	if (c.HRailText != "" || c.HTitle) && c.HRail < MinTextRail {
		return fmt.Errorf("%w: horizontal rail is %s mm", ErrRailTooNarrow, c.HRail.FormatMM())
	}
	if (c.VRailText != "" || c.VTitle) && c.VRail < MinTextRail {
		return fmt.Errorf("%w: vertical rail is %s mm", ErrRailTooNarrow, c.VRail.FormatMM())
	}

	return nil
}

// Advisories returns non-fatal configuration warnings. They are
// surfaced before the board is processed; the run continues.
func (c *Config) Advisories() []string {
	var warnings []string
	if c.HRail > 0 && c.VRail > 0 {
		warnings = append(warnings, "do you really want both edge rails?")
	}
	return warnings
}
