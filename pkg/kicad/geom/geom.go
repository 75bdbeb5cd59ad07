// Package geom provides fixed-point plane geometry for KiCad board files.
// All lengths are stored as int64 nanometers (1 mm = Scale units), so
// repeated translation of board items never accumulates floating-point
// drift. Conversion to and from the millimeter values used in the file
// format happens only at the parse/serialize boundary.
package geom

import (
	"fmt"
	"math"
	"strings"
)

// Scale is the number of internal units per millimeter.
const Scale Length = 1_000_000

// Length is a distance in internal units (nanometers).
type Length int64

// FromMM converts a millimeter value to internal units, rounding to the
// nearest nanometer.
func FromMM(mm float64) Length {
	return Length(math.Round(mm * float64(Scale)))
}

// MM returns the length in millimeters.
func (l Length) MM() float64 {
	return float64(l) / float64(Scale)
}

// FormatMM renders the length as the exact decimal millimeter string used
// in board files, with trailing zeros trimmed (e.g. 1500000 -> "1.5").
func (l Length) FormatMM() string {
	neg := l < 0
	if neg {
		l = -l
	}
	whole := int64(l) / int64(Scale)
	frac := int64(l) % int64(Scale)

	s := fmt.Sprintf("%d", whole)
	if frac != 0 {
		f := strings.TrimRight(fmt.Sprintf("%06d", frac), "0")
		s += "." + f
	}
	if neg {
		s = "-" + s
	}
	return s
}

// Vec is a 2D point or displacement.
type Vec struct {
	X Length
	Y Length
}

// Add returns the vector sum of v and o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min Vec // top-left corner
	Max Vec // bottom-right corner
}

// NewRect creates an empty rectangle that expands to fit the first point
// added to it.
func NewRect() Rect {
	const big = Length(math.MaxInt64)
	return Rect{
		Min: Vec{X: big, Y: big},
		Max: Vec{X: -big, Y: -big},
	}
}

// IsEmpty reports whether the rectangle contains no points.
func (r Rect) IsEmpty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// Expand grows the rectangle to include the given point.
func (r *Rect) Expand(p Vec) {
	if p.X < r.Min.X {
		r.Min.X = p.X
	}
	if p.Y < r.Min.Y {
		r.Min.Y = p.Y
	}
	if p.X > r.Max.X {
		r.Max.X = p.X
	}
	if p.Y > r.Max.Y {
		r.Max.Y = p.Y
	}
}

// ExpandRect grows the rectangle to include another rectangle.
func (r *Rect) ExpandRect(other Rect) {
	if !other.IsEmpty() {
		r.Expand(other.Min)
		r.Expand(other.Max)
	}
}

// Width returns the horizontal extent.
func (r Rect) Width() Length {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent.
func (r Rect) Height() Length {
	return r.Max.Y - r.Min.Y
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec {
	return Vec{
		X: (r.Min.X + r.Max.X) / 2,
		Y: (r.Min.Y + r.Max.Y) / 2,
	}
}
