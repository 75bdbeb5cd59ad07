package panel

import (
	"github.com/OpenTraceLab/OpenTracePanel/pkg/kicad/geom"
)

// PanelGeometry is the bounding rectangle of the finished panel,
// including rails and the half-padding margin around the board array.
type PanelGeometry struct {
	Center geom.Vec
	Width  geom.Length
	Height geom.Length
}

// Left returns the panel's left edge coordinate.
func (p PanelGeometry) Left() geom.Length { return p.Center.X - p.Width/2 }

// Right returns the panel's right edge coordinate.
func (p PanelGeometry) Right() geom.Length { return p.Center.X + p.Width/2 }

// Top returns the panel's top edge coordinate.
func (p PanelGeometry) Top() geom.Length { return p.Center.Y - p.Height/2 }

// Bottom returns the panel's bottom edge coordinate.
func (p PanelGeometry) Bottom() geom.Length { return p.Center.Y + p.Height/2 }

// BuildOutline computes the panel border from the realized array
// bounding box. The border extends past the array by the rail width on
// each side plus half the inter-board padding, so outermost boards get
// the same clearance to the panel edge that neighbors have to each
// other. The four segments are returned in order top, right, bottom,
// left, tracing the border clockwise.
func BuildOutline(array geom.Rect, rails RailSpec, padding geom.Length, layer string) (PanelGeometry, []Line) {
	center := array.Center()

	left := center.X - array.Width()/2 - rails.HWidth - padding/2
	right := center.X + array.Width()/2 + rails.HWidth + padding/2
	top := center.Y - array.Height()/2 - rails.VWidth - padding/2
	bottom := center.Y + array.Height()/2 + rails.VWidth + padding/2

	panel := PanelGeometry{
		Center: center,
		Width:  right - left,
		Height: bottom - top,
	}

	tl := geom.Vec{X: left, Y: top}
	tr := geom.Vec{X: right, Y: top}
	br := geom.Vec{X: right, Y: bottom}
	bl := geom.Vec{X: left, Y: bottom}

	border := []Line{
		{Start: tl, End: tr, Layer: layer},
		{Start: tr, End: br, Layer: layer},
		{Start: br, End: bl, Layer: layer},
		{Start: bl, End: tl, Layer: layer},
	}
	return panel, border
}
