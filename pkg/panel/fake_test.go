package panel

import (
	"github.com/OpenTraceLab/OpenTracePanel/pkg/kicad/geom"
)

// fakeItem is a positioned item for exercising the duplicator.
type fakeItem struct {
	pos geom.Vec
}

func (f *fakeItem) Clone() Item {
	cp := *f
	return &cp
}

func (f *fakeItem) Translate(delta geom.Vec) {
	f.pos = f.pos.Add(delta)
}

// fakeOutline is a drawing on the outline layer, modeled as a rectangle
// so the fake document can measure realized array bounds.
type fakeOutline struct {
	rect geom.Rect
}

func (f *fakeOutline) Clone() Item {
	cp := *f
	return &cp
}

func (f *fakeOutline) Translate(delta geom.Vec) {
	f.rect.Min = f.rect.Min.Add(delta)
	f.rect.Max = f.rect.Max.Add(delta)
}

type fakeFootprint struct {
	pos geom.Vec
}

func (f *fakeFootprint) Clone() Item {
	cp := *f
	return &cp
}

func (f *fakeFootprint) Translate(delta geom.Vec) {
	f.pos = f.pos.Add(delta)
}

func (f *fakeFootprint) Position() geom.Vec       { return f.pos }
func (f *fakeFootprint) SetPosition(pos geom.Vec) { f.pos = pos }

type fakeZone struct {
	fakeItem
	net int
}

func (f *fakeZone) Clone() Item {
	cp := *f
	return &cp
}

func (f *fakeZone) NetNumber() int       { return f.net }
func (f *fakeZone) SetNetNumber(net int) { f.net = net }

// fakeDoc implements Document in memory.
type fakeDoc struct {
	tracks     []Item
	drawings   []Item
	footprints []Footprint
	zones      []Zone

	layers map[string]bool // nil means every layer exists

	lines []Line
	texts []Label
	tb    TitleBlock
}

// newFakeDoc builds a document whose outline is the given rectangle.
func newFakeDoc(outline geom.Rect) *fakeDoc {
	return &fakeDoc{
		drawings: []Item{&fakeOutline{rect: outline}},
	}
}

func (d *fakeDoc) OutlineBounds() geom.Rect {
	bounds := geom.NewRect()
	for _, it := range d.drawings {
		if o, ok := it.(*fakeOutline); ok {
			bounds.ExpandRect(o.rect)
		}
	}
	return bounds
}

func (d *fakeDoc) Tracks() []Item          { return d.tracks }
func (d *fakeDoc) Drawings() []Item        { return d.drawings }
func (d *fakeDoc) Footprints() []Footprint { return d.footprints }
func (d *fakeDoc) Zones() []Zone           { return d.zones }

func (d *fakeDoc) Append(items []Item) {
	for _, it := range items {
		switch v := it.(type) {
		case Footprint:
			d.footprints = append(d.footprints, v)
		case Zone:
			d.zones = append(d.zones, v)
		case *fakeOutline:
			d.drawings = append(d.drawings, v)
		default:
			d.tracks = append(d.tracks, v)
		}
	}
}

func (d *fakeDoc) RemoveOutline() {
	kept := d.drawings[:0]
	for _, it := range d.drawings {
		if _, ok := it.(*fakeOutline); !ok {
			kept = append(kept, it)
		}
	}
	d.drawings = kept
}

func (d *fakeDoc) HasLayer(name string) bool {
	if d.layers == nil {
		return true
	}
	return d.layers[name]
}

func (d *fakeDoc) AddLine(l Line)         { d.lines = append(d.lines, l) }
func (d *fakeDoc) AddText(t Label)        { d.texts = append(d.texts, t) }
func (d *fakeDoc) TitleBlock() TitleBlock { return d.tb }
