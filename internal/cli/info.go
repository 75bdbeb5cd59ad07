package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTracePanel/pkg/kicad/pcb"
	"github.com/OpenTraceLab/OpenTracePanel/pkg/panel"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <board.kicad_pcb>",
		Short: "Show a summary of a board file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := pcb.Load(args[0])
			if err != nil {
				return err
			}

			printKeyValue("file", args[0])
			printKeyValue("version", fmt.Sprintf("%d", doc.Version()))
			printKeyValue("generator", doc.Generator())
			if title := panel.SynthesizeTitle(doc.TitleBlock()); title != "" {
				printKeyValue("title", title)
			}

			outline := doc.OutlineBounds()
			if outline.IsEmpty() {
				printKeyValue("outline", "none")
			} else {
				printKeyValue("outline", fmt.Sprintf("%s x %s mm",
					outline.Width().FormatMM(), outline.Height().FormatMM()))
			}

			printCount("layers", len(doc.Layers()))
			printCount("nets", doc.NetCount())
			printCount("footprints", len(doc.Footprints()))
			printCount("tracks", len(doc.Tracks()))
			printCount("zones", len(doc.Zones()))
			printCount("drawings", len(doc.Drawings()))

			copper := []string{}
			for _, l := range doc.Layers() {
				if l.Type == "signal" {
					copper = append(copper, l.Name)
				}
			}
			if len(copper) > 0 {
				printKeyValue("copper", strings.Join(copper, ", "))
			}
			return nil
		},
	}
}
