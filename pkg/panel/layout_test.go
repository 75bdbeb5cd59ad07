package panel

import (
	"errors"
	"testing"

	"github.com/OpenTraceLab/OpenTracePanel/pkg/kicad/geom"
)

func TestNewBoardCell(t *testing.T) {
	outline := geom.Rect{
		Min: geom.Vec{X: geom.FromMM(10), Y: geom.FromMM(10)},
		Max: geom.Vec{X: geom.FromMM(110), Y: geom.FromMM(60)},
	}
	cell := NewBoardCell(outline, geom.FromMM(3))

	if cell.Width != geom.FromMM(103) {
		t.Errorf("Width = %s, want 103", cell.Width.FormatMM())
	}
	if cell.Height != geom.FromMM(53) {
		t.Errorf("Height = %s, want 53", cell.Height.FormatMM())
	}
}

func TestSolveExplicitCounts(t *testing.T) {
	cell := BoardCell{Width: geom.FromMM(100), Height: geom.FromMM(50)}
	cfg := &Config{NumX: 3, NumY: 2}

	grid, err := Solve(cell, RailSpec{}, cfg)
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if grid != (GridSpec{NumX: 3, NumY: 2}) {
		t.Errorf("grid = %+v, want 3x2", grid)
	}
	if grid.Count() != 6 {
		t.Errorf("Count() = %d, want 6", grid.Count())
	}
}

func TestSolveEnvelope(t *testing.T) {
	cell := BoardCell{Width: geom.FromMM(100), Height: geom.FromMM(50)}

	tests := []struct {
		name  string
		w, h  float64
		rails RailSpec
		want  GridSpec
	}{
		{"exact fit", 300, 100, RailSpec{}, GridSpec{3, 2}},
		{"leftover space ignored", 399, 149, RailSpec{}, GridSpec{3, 2}},
		{"rails subtract twice", 310, 110, RailSpec{HWidth: geom.FromMM(5), VWidth: geom.FromMM(5)}, GridSpec{3, 2}},
		{"rail steals a column", 305, 100, RailSpec{HWidth: geom.FromMM(5)}, GridSpec{2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{PanelWidth: geom.FromMM(tt.w), PanelHeight: geom.FromMM(tt.h)}
			grid, err := Solve(cell, tt.rails, cfg)
			if err != nil {
				t.Fatalf("Solve() error: %v", err)
			}
			if grid != tt.want {
				t.Errorf("grid = %+v, want %+v", grid, tt.want)
			}
		})
	}
}

func TestSolveEnvelopeMonotonic(t *testing.T) {
	cell := BoardCell{Width: geom.FromMM(100), Height: geom.FromMM(50)}
	rails := RailSpec{HWidth: geom.FromMM(5), VWidth: geom.FromMM(5)}

	prev := GridSpec{}
	for mm := 120.0; mm <= 1000; mm += 7 {
		cfg := &Config{PanelWidth: geom.FromMM(mm), PanelHeight: geom.FromMM(mm)}
		grid, err := Solve(cell, rails, cfg)
		if err != nil {
			t.Fatalf("Solve(%v mm) error: %v", mm, err)
		}
		if grid.NumX < prev.NumX || grid.NumY < prev.NumY {
			t.Fatalf("grid shrank from %+v to %+v at %v mm", prev, grid, mm)
		}
		prev = grid
	}
}

func TestSolvePanelTooSmall(t *testing.T) {
	cell := BoardCell{Width: geom.FromMM(100), Height: geom.FromMM(50)}
	cfg := &Config{PanelWidth: geom.FromMM(90), PanelHeight: geom.FromMM(100)}

	_, err := Solve(cell, RailSpec{}, cfg)
	if !errors.Is(err, ErrPanelTooSmall) {
		t.Errorf("Solve() error = %v, want ErrPanelTooSmall", err)
	}

	// Rails can eat the whole envelope.
	cfg = &Config{PanelWidth: geom.FromMM(300), PanelHeight: geom.FromMM(100)}
	_, err = Solve(cell, RailSpec{HWidth: geom.FromMM(150)}, cfg)
	if !errors.Is(err, ErrPanelTooSmall) {
		t.Errorf("Solve() with oversize rails error = %v, want ErrPanelTooSmall", err)
	}
}

func TestOffsets(t *testing.T) {
	cell := BoardCell{Width: geom.FromMM(100), Height: geom.FromMM(50)}
	grid := GridSpec{NumX: 2, NumY: 3}

	offsets := grid.Offsets(cell)
	if len(offsets) != grid.Count()-1 {
		t.Fatalf("len(Offsets()) = %d, want %d", len(offsets), grid.Count()-1)
	}

	seen := make(map[geom.Vec]bool)
	for _, off := range offsets {
		if off == (geom.Vec{}) {
			t.Error("Offsets() includes the origin")
		}
		if seen[off] {
			t.Errorf("duplicate offset %+v", off)
		}
		seen[off] = true
	}
	if !seen[(geom.Vec{X: geom.FromMM(100), Y: geom.FromMM(100)})] {
		t.Error("missing offset for grid position (1,2)")
	}
}
