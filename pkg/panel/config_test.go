package panel

import (
	"errors"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTracePanel/pkg/kicad/geom"
)

func TestConfigValidate(t *testing.T) {
	base := func() Config {
		cfg := DefaultConfig()
		cfg.SourcePath = "board.kicad_pcb"
		cfg.NumX, cfg.NumY = 2, 2
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid counts", func(c *Config) {}, nil},
		{"valid envelope", func(c *Config) {
			c.NumX, c.NumY = 0, 0
			c.PanelWidth, c.PanelHeight = geom.FromMM(300), geom.FromMM(200)
		}, nil},
		{"wrong extension", func(c *Config) {
			c.SourcePath = "board.kicad_sch"
		}, ErrNotBoardFile},
		{"both modes", func(c *Config) {
			c.PanelWidth, c.PanelHeight = geom.FromMM(300), geom.FromMM(200)
		}, ErrBothModes},
		{"no mode", func(c *Config) {
			c.NumX, c.NumY = 0, 0
		}, ErrNoMode},
		{"partial counts", func(c *Config) {
			c.NumY = 0
		}, ErrNoMode},
		{"rail text without rail", func(c *Config) {
			c.HRailText = "LOT-42"
		}, ErrRailTooNarrow},
		{"rail text on narrow rail", func(c *Config) {
			c.VRailText = "LOT-42"
			c.VRail = geom.FromMM(1.5)
		}, ErrRailTooNarrow},
		{"title needs rail too", func(c *Config) {
			c.HTitle = true
		}, ErrRailTooNarrow},
		{"text on wide rail", func(c *Config) {
			c.HRailText = "LOT-42"
			c.HRail = geom.FromMM(2)
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigAdvisories(t *testing.T) {
	cfg := Config{HRail: geom.FromMM(5), VRail: geom.FromMM(5)}
	warnings := cfg.Advisories()
	if len(warnings) != 1 || !strings.Contains(warnings[0], "both edge rails") {
		t.Errorf("Advisories() = %v, want the double-rail warning", warnings)
	}

	for _, cfg := range []Config{
		{},
		{HRail: geom.FromMM(5)},
		{VRail: geom.FromMM(5)},
	} {
		if got := cfg.Advisories(); len(got) != 0 {
			t.Errorf("Advisories() with rails %v/%v = %v, want none", cfg.HRail, cfg.VRail, got)
		}
	}
}

func TestOutputPath(t *testing.T) {
	cfg := Config{SourcePath: "hw/widget.kicad_pcb"}
	if got, want := cfg.OutputPath(), "hw/widget_panelized.kicad_pcb"; got != want {
		t.Errorf("OutputPath() = %q, want %q", got, want)
	}
}

func TestEnvelopeMode(t *testing.T) {
	cfg := Config{NumX: 2, NumY: 2}
	if cfg.EnvelopeMode() {
		t.Error("count config reports envelope mode")
	}
	cfg = Config{PanelWidth: geom.FromMM(100), PanelHeight: geom.FromMM(100)}
	if !cfg.EnvelopeMode() {
		t.Error("envelope config does not report envelope mode")
	}
}
