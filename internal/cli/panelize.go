package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTracePanel/pkg/kicad/geom"
	"github.com/OpenTraceLab/OpenTracePanel/pkg/kicad/pcb"
	"github.com/OpenTraceLab/OpenTracePanel/pkg/panel"
)

func newPanelizeCmd() *cobra.Command {
	var (
		numX, numY     int
		panelX, panelY float64
		padding        float64
		hRail, vRail   float64
		hRailText      string
		vRailText      string
		hTitle, vTitle bool
		scoreLayer     string
		scoreTextLayer string
		scoreText      string
		scoreExtends   float64
		presetPath     string
		noStamp        bool
	)

	defaults := panel.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "panelize <board.kicad_pcb>",
		Short: "Tile a board into an N x M manufacturing panel",
		Long: `Panelize duplicates the board into a grid, replaces the board outline
with a panel border (plus optional edge rails), and draws labeled
V-score lines between the copies.

The grid is given either explicitly (--numx/--numy) or as a target
panel envelope (--panelx/--panely), never both.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg := panel.DefaultConfig()
			cfg.SourcePath = args[0]
			cfg.NumX, cfg.NumY = numX, numY
			cfg.PanelWidth = geom.FromMM(panelX)
			cfg.PanelHeight = geom.FromMM(panelY)
			cfg.Padding = geom.FromMM(padding)
			cfg.HRail = geom.FromMM(hRail)
			cfg.VRail = geom.FromMM(vRail)
			cfg.HRailText = hRailText
			cfg.VRailText = vRailText
			cfg.HTitle = hTitle
			cfg.VTitle = vTitle
			cfg.ScoreLayer = scoreLayer
			cfg.ScoreTextLayer = scoreTextLayer
			cfg.ScoreText = scoreText
			cfg.ScoreExtend = geom.FromMM(scoreExtends)
			cfg.Stamp = !noStamp
			cfg.StampArgs = strings.Join(os.Args, " ")

			if presetPath != "" {
				p, err := loadPreset(presetPath)
				if err != nil {
					return err
				}
				p.apply(cmd.Flags().Changed, &cfg)
				logger.Debug("applied preset", "path", presetPath)
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			for _, w := range cfg.Advisories() {
				logger.Warn(w)
			}

			prog := newProgress(logger)
			doc, err := pcb.Load(cfg.SourcePath)
			if err != nil {
				return err
			}
			logger.Debug("board loaded", "version", doc.Version(), "generator", doc.Generator())

			res, err := panel.Run(doc, &cfg)
			if err != nil {
				return err
			}
			for _, w := range res.Warnings {
				logger.Warn(w)
			}

			out := cfg.OutputPath()
			if err := doc.Save(out); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("panelized %s", cfg.SourcePath))

			if cfg.EnvelopeMode() {
				printInfo("you can fit %d x %d boards", res.Grid.NumX, res.Grid.NumY)
			}
			printSuccess("%d x %d panel, %d items added", res.Grid.NumX, res.Grid.NumY, res.Stats.Total())
			printKeyValue("cell", fmt.Sprintf("%s x %s mm",
				res.Cell.Width.FormatMM(), res.Cell.Height.FormatMM()))
			printKeyValue("panel", fmt.Sprintf("%s x %s mm",
				res.Panel.Width.FormatMM(), res.Panel.Height.FormatMM()))
			printFile(out)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&numX, "numx", "x", 0, "board copies in X")
	flags.IntVarP(&numY, "numy", "y", 0, "board copies in Y")
	flags.Float64Var(&panelX, "panelx", 0, "target panel width in mm (derive the grid)")
	flags.Float64Var(&panelY, "panely", 0, "target panel height in mm (derive the grid)")
	flags.Float64Var(&padding, "padding", 0, "extra space between boards in mm")
	flags.Float64Var(&hRail, "hrail", 0, "left/right edge rail width in mm")
	flags.Float64Var(&vRail, "vrail", 0, "top/bottom edge rail width in mm")
	flags.StringVar(&hRailText, "hrailtext", "", "text on the horizontal rail")
	flags.StringVar(&vRailText, "vrailtext", "", "text on the vertical rail")
	flags.BoolVar(&hTitle, "htitle", false, "put the board title on the horizontal rail")
	flags.BoolVar(&vTitle, "vtitle", false, "put the board title on the vertical rail")
	flags.StringVar(&scoreLayer, "scorelayer", defaults.ScoreLayer, "layer for score lines")
	flags.StringVar(&scoreTextLayer, "scoretextlayer", defaults.ScoreTextLayer, "layer for score labels")
	flags.StringVar(&scoreText, "scoretext", defaults.ScoreText, "score line label text")
	flags.Float64Var(&scoreExtends, "scoreextends", defaults.ScoreExtend.MM(),
		"score line overshoot past the panel edge in mm (negative pulls inward)")
	flags.StringVar(&presetPath, "preset", "", "TOML file with default flag values")
	flags.BoolVar(&noStamp, "no-stamp", false, "omit the report stamp under the panel")

	return cmd
}
