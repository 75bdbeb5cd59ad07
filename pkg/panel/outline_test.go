package panel

import (
	"testing"

	"github.com/OpenTraceLab/OpenTracePanel/pkg/kicad/geom"
)

func TestBuildOutlineTight(t *testing.T) {
	array := geom.Rect{
		Min: geom.Vec{X: geom.FromMM(10), Y: geom.FromMM(20)},
		Max: geom.Vec{X: geom.FromMM(110), Y: geom.FromMM(70)},
	}

	panel, border := BuildOutline(array, RailSpec{}, 0, "Edge.Cuts")

	if panel.Width != geom.FromMM(100) || panel.Height != geom.FromMM(50) {
		t.Errorf("panel = %s x %s mm, want 100 x 50",
			panel.Width.FormatMM(), panel.Height.FormatMM())
	}
	if panel.Left() != geom.FromMM(10) || panel.Right() != geom.FromMM(110) {
		t.Errorf("panel x span = [%s, %s], want [10, 110]",
			panel.Left().FormatMM(), panel.Right().FormatMM())
	}
	if panel.Top() != geom.FromMM(20) || panel.Bottom() != geom.FromMM(70) {
		t.Errorf("panel y span = [%s, %s], want [20, 70]",
			panel.Top().FormatMM(), panel.Bottom().FormatMM())
	}
	if len(border) != 4 {
		t.Fatalf("border has %d segments, want 4", len(border))
	}
}

func TestBuildOutlineRailsAndPadding(t *testing.T) {
	array := geom.Rect{Max: geom.Vec{X: geom.FromMM(100), Y: geom.FromMM(50)}}
	rails := RailSpec{HWidth: geom.FromMM(5), VWidth: geom.FromMM(8)}
	padding := geom.FromMM(2)

	panel, border := BuildOutline(array, rails, padding, "Edge.Cuts")

	// Width grows by a rail per side plus half the padding per side.
	if want := geom.FromMM(112); panel.Width != want {
		t.Errorf("Width = %s, want %s", panel.Width.FormatMM(), want.FormatMM())
	}
	if want := geom.FromMM(68); panel.Height != want {
		t.Errorf("Height = %s, want %s", panel.Height.FormatMM(), want.FormatMM())
	}
	if panel.Center != array.Center() {
		t.Errorf("Center = %+v, want %+v", panel.Center, array.Center())
	}

	// Border traces the panel clockwise from the top-left corner.
	tl := geom.Vec{X: panel.Left(), Y: panel.Top()}
	if border[0].Start != tl {
		t.Errorf("border starts at %+v, want %+v", border[0].Start, tl)
	}
	for i, edge := range border {
		next := border[(i+1)%len(border)]
		if edge.End != next.Start {
			t.Errorf("border segment %d ends at %+v but %d starts at %+v",
				i, edge.End, i+1, next.Start)
		}
		if edge.Layer != "Edge.Cuts" {
			t.Errorf("border segment %d layer = %q", i, edge.Layer)
		}
	}
}
