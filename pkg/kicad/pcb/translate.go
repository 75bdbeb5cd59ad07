package pcb

import (
	"math"
	"strconv"

	"github.com/google/uuid"

	"github.com/OpenTraceLab/OpenTracePanel/pkg/kicad/geom"
	"github.com/OpenTraceLab/OpenTracePanel/pkg/kicad/sexp"
)

// coordKeys are the list keywords whose first two arguments are X/Y
// coordinates in millimeters. "at" may carry a third rotation argument,
// which is left alone.
var coordKeys = map[string]bool{
	"at":     true,
	"start":  true,
	"end":    true,
	"mid":    true,
	"center": true,
	"xy":     true,
}

// translateNode shifts every coordinate in the subtree by delta. Used
// for items whose coordinates are all absolute (tracks, drawings,
// zones); footprints are repositioned via their "at" node instead
// because their children hold footprint-relative coordinates.
func translateNode(n *sexp.Node, delta geom.Vec) {
	n.Walk(func(c *sexp.Node) {
		if c.IsList() && coordKeys[c.Name()] {
			shiftCoord(c, delta)
		}
	})
}

// shiftCoord adds delta to the X/Y arguments of a coordinate list.
func shiftCoord(n *sexp.Node, delta geom.Vec) {
	if x, err := n.Float(1); err == nil {
		n.SetArg(1, (geom.FromMM(x) + delta.X).FormatMM())
	}
	if y, err := n.Float(2); err == nil {
		n.SetArg(2, (geom.FromMM(y) + delta.Y).FormatMM())
	}
}

// readCoord returns the X/Y arguments of a coordinate list.
func readCoord(n *sexp.Node) (geom.Vec, bool) {
	x, errX := n.Float(1)
	y, errY := n.Float(2)
	if errX != nil || errY != nil {
		return geom.Vec{}, false
	}
	return geom.Vec{X: geom.FromMM(x), Y: geom.FromMM(y)}, true
}

// writeCoord replaces the X/Y arguments of a coordinate list.
func writeCoord(n *sexp.Node, v geom.Vec) {
	n.SetArg(1, v.X.FormatMM())
	n.SetArg(2, v.Y.FormatMM())
}

// expandByCoords grows the rect by every coordinate in the subtree.
func expandByCoords(n *sexp.Node, r *geom.Rect) {
	n.Walk(func(c *sexp.Node) {
		if c.IsList() && coordKeys[c.Name()] {
			if v, ok := readCoord(c); ok {
				r.Expand(v)
			}
		}
	})
}

// rotateVec rotates v by angleDeg in the board frame: Y axis points
// down, positive angles turn counterclockwise, matching footprint
// rotation. Used only for bounds measurement, never for serialization.
func rotateVec(v geom.Vec, angleDeg float64) geom.Vec {
	if angleDeg == 0 {
		return v
	}
	rad := angleDeg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	x, y := v.X.MM(), v.Y.MM()
	return geom.Vec{
		X: geom.FromMM(x*cos + y*sin),
		Y: geom.FromMM(-x*sin + y*cos),
	}
}

// refreshIDs assigns fresh identifiers to every uuid/tstamp node in the
// subtree so a cloned item never collides with its source.
func refreshIDs(n *sexp.Node) {
	n.Walk(func(c *sexp.Node) {
		if c.IsList() && (c.Name() == "uuid" || c.Name() == "tstamp") && len(c.List) > 1 {
			c.SetArg(1, uuid.NewString())
		}
	})
}

// newUUIDNode builds a (uuid "...") child for newly created items.
func newUUIDNode() *sexp.Node {
	return sexp.NewList("uuid", sexp.NewString(uuid.NewString()))
}

// numAtom renders a length as a bare numeric atom.
func numAtom(l geom.Length) *sexp.Node {
	return sexp.NewAtom(l.FormatMM())
}

// intAtom renders an int as a bare numeric atom.
func intAtom(i int) *sexp.Node {
	return sexp.NewAtom(strconv.Itoa(i))
}
