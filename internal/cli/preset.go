package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/OpenTraceLab/OpenTracePanel/pkg/kicad/geom"
	"github.com/OpenTraceLab/OpenTracePanel/pkg/panel"
)

// preset holds panelize defaults loaded from a TOML file. Every field
// is optional; a preset value only applies to flags the user did not
// set on the command line.
type preset struct {
	NumX           *int     `toml:"numx"`
	NumY           *int     `toml:"numy"`
	PanelX         *float64 `toml:"panelx"`
	PanelY         *float64 `toml:"panely"`
	Padding        *float64 `toml:"padding"`
	HRail          *float64 `toml:"hrail"`
	VRail          *float64 `toml:"vrail"`
	HRailText      *string  `toml:"hrailtext"`
	VRailText      *string  `toml:"vrailtext"`
	HTitle         *bool    `toml:"htitle"`
	VTitle         *bool    `toml:"vtitle"`
	ScoreLayer     *string  `toml:"scorelayer"`
	ScoreTextLayer *string  `toml:"scoretextlayer"`
	ScoreText      *string  `toml:"scoretext"`
	ScoreExtends   *float64 `toml:"scoreextends"`
}

// loadPreset reads and decodes a preset file.
func loadPreset(path string) (*preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset: %w", err)
	}
	var p preset
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse preset %s: %w", path, err)
	}
	return &p, nil
}

// apply copies preset values into cfg for every flag the user left
// unchanged. Explicit flags always win over the preset.
func (p *preset) apply(changed func(name string) bool, cfg *panel.Config) {
	setInt := func(name string, src *int, dst *int) {
		if src != nil && !changed(name) {
			*dst = *src
		}
	}
	setMM := func(name string, src *float64, dst *geom.Length) {
		if src != nil && !changed(name) {
			*dst = geom.FromMM(*src)
		}
	}
	setString := func(name string, src, dst *string) {
		if src != nil && !changed(name) {
			*dst = *src
		}
	}
	setBool := func(name string, src, dst *bool) {
		if src != nil && !changed(name) {
			*dst = *src
		}
	}

	setInt("numx", p.NumX, &cfg.NumX)
	setInt("numy", p.NumY, &cfg.NumY)
	setMM("panelx", p.PanelX, &cfg.PanelWidth)
	setMM("panely", p.PanelY, &cfg.PanelHeight)
	setMM("padding", p.Padding, &cfg.Padding)
	setMM("hrail", p.HRail, &cfg.HRail)
	setMM("vrail", p.VRail, &cfg.VRail)
	setString("hrailtext", p.HRailText, &cfg.HRailText)
	setString("vrailtext", p.VRailText, &cfg.VRailText)
	setBool("htitle", p.HTitle, &cfg.HTitle)
	setBool("vtitle", p.VTitle, &cfg.VTitle)
	setString("scorelayer", p.ScoreLayer, &cfg.ScoreLayer)
	setString("scoretextlayer", p.ScoreTextLayer, &cfg.ScoreTextLayer)
	setString("scoretext", p.ScoreText, &cfg.ScoreText)
	setMM("scoreextends", p.ScoreExtends, &cfg.ScoreExtend)
}
