package panel

import "github.com/OpenTraceLab/OpenTracePanel/pkg/kicad/geom"

// DuplicateStats counts the copies created per item kind.
type DuplicateStats struct {
	Tracks     int
	Drawings   int
	Footprints int
	Zones      int
}

// Total returns the number of items added to the document.
func (s DuplicateStats) Total() int {
	return s.Tracks + s.Drawings + s.Footprints + s.Zones
}

// Duplicate creates one copy of every board item at every grid position
// except the origin. Copies of a kind are generated in full before being
// appended, and source items are never mutated.
func Duplicate(doc Document, cell BoardCell, grid GridSpec) DuplicateStats {
	offsets := grid.Offsets(cell)
	var stats DuplicateStats

	stats.Tracks = duplicateTranslated(doc, doc.Tracks(), offsets)
	stats.Drawings = duplicateTranslated(doc, doc.Drawings(), offsets)

	// Footprints are placed by absolute position: the source position
	// plus the grid offset. A relative move would misplace rotated
	// footprints in document models where copy semantics reset the
	// origin.
	var footprints []Item
	for _, src := range doc.Footprints() {
		base := src.Position()
		for _, off := range offsets {
			cp := src.Clone().(Footprint)
			cp.SetPosition(base.Add(off))
			footprints = append(footprints, cp)
		}
	}
	doc.Append(footprints)
	stats.Footprints = len(footprints)

	// Zones carry their net across so copper pours stay connected.
	var zones []Item
	for _, src := range doc.Zones() {
		net := src.NetNumber()
		for _, off := range offsets {
			cp := src.Clone().(Zone)
			cp.SetNetNumber(net)
			cp.Translate(off)
			zones = append(zones, cp)
		}
	}
	doc.Append(zones)
	stats.Zones = len(zones)

	return stats
}

func duplicateTranslated(doc Document, items []Item, offsets []geom.Vec) int {
	var copies []Item
	for _, src := range items {
		for _, off := range offsets {
			cp := src.Clone()
			cp.Translate(off)
			copies = append(copies, cp)
		}
	}
	doc.Append(copies)
	return len(copies)
}
