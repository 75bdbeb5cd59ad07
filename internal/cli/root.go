package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the otpanel CLI and returns an error if any command
// fails. Logging defaults to info level; --verbose raises it to debug.
// The logger is attached to the context and reachable from every
// command via loggerFromContext.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:   "otpanel",
		Short: "otpanel tiles KiCad boards into manufacturing panels",
		Long: `otpanel duplicates a single KiCad PCB into an N x M grid, draws the
panel outline with optional edge rails, and adds V-score separation
lines with labels.

Examples:
  otpanel panelize -x 2 -y 3 board.kicad_pcb       # explicit grid
  otpanel panelize --panelx 200 --panely 150 board.kicad_pcb
  otpanel info board.kicad_pcb                     # board summary`,
		Version:       "0.9.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newPanelizeCmd())
	root.AddCommand(newInfoCmd())

	return root.ExecuteContext(context.Background())
}
