// Package panel computes rectangular panel layouts for a single PCB
// design: the copy grid, the per-copy translation offsets, the panel
// border with optional edge rails, separation score lines with labels,
// and rail text. The geometry work is pure; the board itself is reached
// through the Document interface so the engine never depends on a
// particular file format.
package panel

import (
	"github.com/OpenTraceLab/OpenTracePanel/pkg/kicad/geom"
)

// Item is one duplicable board object (a track, drawing, footprint, or
// zone handle supplied by the document).
type Item interface {
	// Clone returns a deep, independent copy of the item. The copy is
	// not part of the document until appended.
	Clone() Item

	// Translate moves the item by the given displacement.
	Translate(delta geom.Vec)
}

// Footprint is an item placed by absolute position. Footprint copies are
// positioned with SetPosition rather than Translate because footprint
// duplication semantics differ from plain geometric translation in the
// underlying document models.
type Footprint interface {
	Item
	Position() geom.Vec
	SetPosition(pos geom.Vec)
}

// Zone is a copper region carrying a net assignment that must survive
// duplication so pour connectivity is preserved across copies.
type Zone interface {
	Item
	NetNumber() int
	SetNetNumber(net int)
}

// Line is a straight edge to be added to the document.
type Line struct {
	Start geom.Vec
	End   geom.Vec
	Layer string
}

// Justify is the horizontal justification of a text label.
type Justify int

const (
	JustifyCenter Justify = iota
	JustifyLeft
	JustifyRight
)

// Label is a text annotation to be added to the document.
type Label struct {
	Text      string
	At        geom.Vec
	AngleDeg  float64
	Layer     string
	Size      geom.Length // square character size
	Thickness geom.Length // stroke thickness, 0 for the document default
	Justify   Justify
}

// TitleBlock is the document's title metadata.
type TitleBlock struct {
	Title    string
	Revision string
	Date     string
	Company  string
}

// Document is the board the engine reads from and writes into. Every
// mutation goes through this interface; the engine never removes or
// alters source items other than via RemoveOutline.
type Document interface {
	// OutlineBounds returns the bounding box of the board-outline
	// geometry, empty if the board has no outline.
	OutlineBounds() geom.Rect

	Tracks() []Item
	Drawings() []Item
	Footprints() []Footprint
	Zones() []Zone

	// Append inserts new items produced by duplication.
	Append(items []Item)

	// RemoveOutline deletes all existing board-outline drawings.
	RemoveOutline()

	// HasLayer reports whether a layer with the given name exists.
	HasLayer(name string) bool

	AddLine(l Line)
	AddText(t Label)

	TitleBlock() TitleBlock
}
