package pcb

import (
	"strconv"

	"github.com/OpenTraceLab/OpenTracePanel/pkg/kicad/geom"
	"github.com/OpenTraceLab/OpenTracePanel/pkg/kicad/sexp"
	"github.com/OpenTraceLab/OpenTracePanel/pkg/panel"
)

// Node keywords per duplicable item kind.
var (
	trackKeys   = []string{"segment", "arc", "via"}
	drawingKeys = []string{
		"gr_line", "gr_arc", "gr_circle", "gr_rect", "gr_poly",
		"gr_curve", "gr_text", "gr_text_box", "dimension",
	}
	fpGraphicKeys = []string{
		"fp_line", "fp_arc", "fp_circle", "fp_rect", "fp_poly", "fp_curve",
	}
)

// item is a handle to one duplicable node of the board tree.
type item struct {
	node *sexp.Node
}

func (it *item) sexpNode() *sexp.Node { return it.node }

func (it *item) Clone() panel.Item {
	cp := it.node.Clone()
	refreshIDs(cp)
	return &item{node: cp}
}

func (it *item) Translate(delta geom.Vec) {
	translateNode(it.node, delta)
}

// footprintItem positions by absolute coordinates: the footprint's "at"
// node is authoritative and its children are footprint-relative.
type footprintItem struct {
	node *sexp.Node
}

func (fp *footprintItem) sexpNode() *sexp.Node { return fp.node }

func (fp *footprintItem) Clone() panel.Item {
	cp := fp.node.Clone()
	refreshIDs(cp)
	return &footprintItem{node: cp}
}

func (fp *footprintItem) Translate(delta geom.Vec) {
	if at := fp.node.Find("at"); at != nil {
		shiftCoord(at, delta)
	}
}

func (fp *footprintItem) Position() geom.Vec {
	if at := fp.node.Find("at"); at != nil {
		if v, ok := readCoord(at); ok {
			return v
		}
	}
	return geom.Vec{}
}

func (fp *footprintItem) SetPosition(pos geom.Vec) {
	at := fp.node.Find("at")
	if at == nil {
		at = sexp.NewList("at", numAtom(pos.X), numAtom(pos.Y))
		fp.node.Append(at)
		return
	}
	writeCoord(at, pos)
}

// zoneItem adds net accessors so pours keep their connectivity when
// duplicated.
type zoneItem struct {
	item
}

func (z *zoneItem) Clone() panel.Item {
	cp := z.node.Clone()
	refreshIDs(cp)
	return &zoneItem{item: item{node: cp}}
}

func (z *zoneItem) NetNumber() int {
	if net := z.node.Find("net"); net != nil {
		if n, err := net.Int(1); err == nil {
			return n
		}
	}
	return 0
}

func (z *zoneItem) SetNetNumber(net int) {
	if n := z.node.Find("net"); n != nil {
		n.SetArg(1, strconv.Itoa(net))
		return
	}
	z.node.Append(sexp.NewList("net", intAtom(net)))
}

// Tracks returns handles to every track-like item (segments, track
// arcs, and vias).
func (d *Document) Tracks() []panel.Item {
	var items []panel.Item
	for _, key := range trackKeys {
		for _, n := range d.root.FindAll(key) {
			items = append(items, &item{node: n})
		}
	}
	return items
}

// Drawings returns handles to every board-level graphic item.
func (d *Document) Drawings() []panel.Item {
	var items []panel.Item
	for _, key := range drawingKeys {
		for _, n := range d.root.FindAll(key) {
			items = append(items, &item{node: n})
		}
	}
	return items
}

// Footprints returns handles to every footprint.
func (d *Document) Footprints() []panel.Footprint {
	var items []panel.Footprint
	for _, n := range d.root.FindAll("footprint") {
		items = append(items, &footprintItem{node: n})
	}
	return items
}

// Zones returns handles to every filled zone.
func (d *Document) Zones() []panel.Zone {
	var items []panel.Zone
	for _, n := range d.root.FindAll("zone") {
		items = append(items, &zoneItem{item: item{node: n}})
	}
	return items
}

// Append inserts duplicated items into the board tree.
func (d *Document) Append(items []panel.Item) {
	type nodeCarrier interface {
		sexpNode() *sexp.Node
	}
	for _, it := range items {
		if carrier, ok := it.(nodeCarrier); ok {
			d.root.Append(carrier.sexpNode())
		}
	}
}

// layerOf returns the layer name of a board-level node, or "".
func layerOf(n *sexp.Node) string {
	layer := n.Find("layer")
	if layer == nil {
		return ""
	}
	name, err := layer.Arg(1)
	if err != nil {
		return ""
	}
	return name
}

// OutlineBounds returns the bounding box of the board-outline geometry:
// board-level drawings on the outline layer plus footprint graphics on
// that layer, the latter mapped through the footprint's position and
// rotation.
func (d *Document) OutlineBounds() geom.Rect {
	bounds := geom.NewRect()
	for _, key := range drawingKeys {
		for _, n := range d.root.FindAll(key) {
			if layerOf(n) == EdgeCutsLayer {
				expandByCoords(n, &bounds)
			}
		}
	}
	for _, fp := range d.root.FindAll("footprint") {
		expandByFootprintEdges(fp, &bounds)
	}
	return bounds
}

// expandByFootprintEdges grows the rect by a footprint's outline-layer
// graphics. Child coordinates are footprint-local.
func expandByFootprintEdges(fp *sexp.Node, r *geom.Rect) {
	at := fp.Find("at")
	if at == nil {
		return
	}
	pos, ok := readCoord(at)
	if !ok {
		return
	}
	angle, err := at.Float(3)
	if err != nil {
		angle = 0
	}

	for _, key := range fpGraphicKeys {
		for _, g := range fp.FindAll(key) {
			if layerOf(g) != EdgeCutsLayer {
				continue
			}
			g.Walk(func(c *sexp.Node) {
				if c.IsList() && coordKeys[c.Name()] {
					if v, ok := readCoord(c); ok {
						r.Expand(rotateVec(v, angle).Add(pos))
					}
				}
			})
		}
	}
}

// RemoveOutline deletes every board-level drawing on the outline layer.
func (d *Document) RemoveOutline() {
	drawing := make(map[string]bool, len(drawingKeys))
	for _, key := range drawingKeys {
		drawing[key] = true
	}
	d.root.Filter(func(n *sexp.Node) bool {
		return !(n.IsList() && drawing[n.Name()] && layerOf(n) == EdgeCutsLayer)
	})
}

// AddLine appends a straight edge to the board.
func (d *Document) AddLine(l panel.Line) {
	d.root.Append(sexp.NewList("gr_line",
		sexp.NewList("start", numAtom(l.Start.X), numAtom(l.Start.Y)),
		sexp.NewList("end", numAtom(l.End.X), numAtom(l.End.Y)),
		sexp.NewList("stroke",
			sexp.NewList("width", sexp.NewAtom("0.1")),
			sexp.NewList("type", sexp.NewAtom("solid")),
		),
		sexp.NewList("layer", sexp.NewString(l.Layer)),
		newUUIDNode(),
	))
}

// AddText appends a text annotation to the board.
func (d *Document) AddText(t panel.Label) {
	at := sexp.NewList("at", numAtom(t.At.X), numAtom(t.At.Y))
	if t.AngleDeg != 0 {
		at.Append(sexp.NewAtom(strconv.FormatFloat(t.AngleDeg, 'f', -1, 64)))
	}

	font := sexp.NewList("font",
		sexp.NewList("size", numAtom(t.Size), numAtom(t.Size)),
	)
	if t.Thickness > 0 {
		font.Append(sexp.NewList("thickness", numAtom(t.Thickness)))
	}

	effects := sexp.NewList("effects", font)
	switch t.Justify {
	case panel.JustifyLeft:
		effects.Append(sexp.NewList("justify", sexp.NewAtom("left")))
	case panel.JustifyRight:
		effects.Append(sexp.NewList("justify", sexp.NewAtom("right")))
	}

	d.root.Append(sexp.NewList("gr_text",
		sexp.NewString(t.Text),
		at,
		sexp.NewList("layer", sexp.NewString(t.Layer)),
		effects,
		newUUIDNode(),
	))
}

// TitleBlock returns the board's title metadata.
func (d *Document) TitleBlock() panel.TitleBlock {
	var tb panel.TitleBlock
	block := d.root.Find("title_block")
	if block == nil {
		return tb
	}

	read := func(key string) string {
		if n := block.Find(key); n != nil {
			if v, err := n.Arg(1); err == nil {
				return v
			}
		}
		return ""
	}
	tb.Title = read("title")
	tb.Date = read("date")
	tb.Revision = read("rev")
	tb.Company = read("company")
	return tb
}
