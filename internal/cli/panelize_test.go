package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTracePanel/pkg/kicad/pcb"
)

const testBoard = `(kicad_pcb
	(version 20221018)
	(generator pcbnew)
	(title_block (title "Widget") (rev "B"))
	(layers
		(0 "F.Cu" signal)
		(31 "B.Cu" signal)
		(41 "Cmts.User" user "User.Comments")
		(44 "Edge.Cuts" user)
	)
	(net 0 "")
	(gr_line (start 0 0) (end 100 0) (layer "Edge.Cuts") (width 0.1))
	(gr_line (start 100 0) (end 100 50) (layer "Edge.Cuts") (width 0.1))
	(gr_line (start 100 50) (end 0 50) (layer "Edge.Cuts") (width 0.1))
	(gr_line (start 0 50) (end 0 0) (layer "Edge.Cuts") (width 0.1))
	(segment (start 10 10) (end 20 10) (width 0.25) (layer "F.Cu") (net 0))
)`

func writeBoard(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.kicad_pcb")
	if err := os.WriteFile(path, []byte(testBoard), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runPanelize(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newPanelizeCmd()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestPanelizeEndToEnd(t *testing.T) {
	board := writeBoard(t)

	if err := runPanelize(t, board, "--numx", "2", "--numy", "2"); err != nil {
		t.Fatalf("panelize failed: %v", err)
	}

	out := strings.TrimSuffix(board, ".kicad_pcb") + "_panelized.kicad_pcb"
	doc, err := pcb.Load(out)
	if err != nil {
		t.Fatalf("output board unreadable: %v", err)
	}

	// One source segment plus three copies.
	if got := len(doc.Tracks()); got != 4 {
		t.Errorf("output has %d tracks, want 4", got)
	}
	bounds := doc.OutlineBounds()
	if bounds.Width().MM() != 200 || bounds.Height().MM() != 100 {
		t.Errorf("panel outline = %s x %s mm, want 200 x 100",
			bounds.Width().FormatMM(), bounds.Height().FormatMM())
	}
}

func TestPanelizeFatalErrorWritesNothing(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no mode", nil},
		{"both modes", []string{"--numx", "2", "--numy", "2", "--panelx", "200", "--panely", "100"}},
		{"rail text without rail", []string{"--numx", "2", "--numy", "2", "--hrailtext", "LOT"}},
		{"unknown score layer", []string{"--numx", "2", "--numy", "2", "--scorelayer", "User.9"}},
		{"zero fit", []string{"--panelx", "50", "--panely", "50"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := writeBoard(t)
			if err := runPanelize(t, append([]string{board}, tt.args...)...); err == nil {
				t.Fatal("panelize succeeded, want error")
			}
			out := strings.TrimSuffix(board, ".kicad_pcb") + "_panelized.kicad_pcb"
			if _, err := os.Stat(out); !os.IsNotExist(err) {
				t.Errorf("output file exists after fatal error (stat err: %v)", err)
			}
		})
	}
}

func TestPanelizePresetFlag(t *testing.T) {
	board := writeBoard(t)
	presetPath := filepath.Join(t.TempDir(), "panel.toml")
	if err := os.WriteFile(presetPath, []byte("numx = 2\nnumy = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runPanelize(t, board, "--preset", presetPath); err != nil {
		t.Fatalf("panelize with preset failed: %v", err)
	}
	out := strings.TrimSuffix(board, ".kicad_pcb") + "_panelized.kicad_pcb"
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}
