// Package predicate provides the geometric predicate capability that the
// rest of geogen is built on: orientation of three points, the Delaunay
// in-circle test, and the relation between two segments.
//
// These are injected rather than hard-coded (see geogen's design notes) so
// that a caller needing exact/robust arithmetic for degenerate inputs can
// swap in their own Context. Context{} is the float32, straightforward-arithmetic
// default used throughout the rest of this module.
package predicate

import "github.com/arl/math32"

// Orientation is the sign of the signed area of a triangle a, b, c.
type Orientation int8

const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	CounterClockwise Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	default:
		return "collinear"
	}
}

// Relation classifies how two segments relate to each other.
type Relation int8

const (
	Disjoint Relation = iota
	Touch
	Cross
	Overlap
)

// Point is the minimal 2-D point shape the predicates operate on.
type Point struct {
	X, Y float32
}

// Segment is an ordered pair of endpoints.
type Segment struct {
	Start, End Point
}

// Orienteer computes the orientation of the turn a->b->c.
type Orienteer func(a, b, c Point) Orientation

// Context bundles the three predicate capabilities required by the core
// (quad-edge mesh, Delaunay builder, chi-algorithm, hole carving).
type Context struct{}

// Orientation returns the sign of the signed area of triangle a, b, c:
// CounterClockwise if c is to the left of the directed line a->b,
// Clockwise if to the right, Collinear if the three points are aligned.
func (Context) Orientation(a, b, c Point) Orientation {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	switch {
	case cross > 0:
		return CounterClockwise
	case cross < 0:
		return Clockwise
	default:
		return Collinear
	}
}

// InCircle reports whether d lies strictly inside the circle through a, b,
// c. The caller guarantees a, b, c are given in counterclockwise order.
func (Context) InCircle(a, b, c, d Point) bool {
	ax, ay := float64(a.X-d.X), float64(a.Y-d.Y)
	bx, by := float64(b.X-d.X), float64(b.Y-d.Y)
	cx, cy := float64(c.X-d.X), float64(c.Y-d.Y)

	aSq := ax*ax + ay*ay
	bSq := bx*bx + by*by
	cSq := cx*cx + cy*cy

	det := ax*(by*cSq-bSq*cy) -
		ay*(bx*cSq-bSq*cx) +
		aSq*(bx*cy-by*cx)
	return det > 0
}

// SegmentsRelation classifies how segments s and t relate: sharing no
// point (Disjoint), touching at an endpoint or a T-junction (Touch),
// crossing through their interiors (Cross), or overlapping along a
// collinear interval (Overlap).
func (c Context) SegmentsRelation(s, t Segment) Relation {
	o1 := c.Orientation(s.Start, s.End, t.Start)
	o2 := c.Orientation(s.Start, s.End, t.End)
	o3 := c.Orientation(t.Start, t.End, s.Start)
	o4 := c.Orientation(t.Start, t.End, s.End)

	if o1*o2 < 0 && o3*o4 < 0 {
		return Cross
	}
	if o1 == Collinear && o2 == Collinear && o3 == Collinear && o4 == Collinear {
		return c.collinearRelation(s, t)
	}
	if (o1 == Collinear && onSegment(s.Start, s.End, t.Start)) ||
		(o2 == Collinear && onSegment(s.Start, s.End, t.End)) ||
		(o3 == Collinear && onSegment(t.Start, t.End, s.Start)) ||
		(o4 == Collinear && onSegment(t.Start, t.End, s.End)) {
		return Touch
	}
	return Disjoint
}

func (c Context) collinearRelation(s, t Segment) Relation {
	// All four points lie on one line; project onto whichever axis has
	// more spread to turn the problem into 1-D interval overlap.
	key := func(p Point) float32 { return p.X }
	if math32.Abs(s.End.X-s.Start.X) < math32.Abs(s.End.Y-s.Start.Y) {
		key = func(p Point) float32 { return p.Y }
	}
	sLo, sHi := order(key(s.Start), key(s.End))
	tLo, tHi := order(key(t.Start), key(t.End))
	if sHi < tLo || tHi < sLo {
		return Disjoint
	}
	if sHi == tLo || tHi == sLo {
		return Touch
	}
	return Overlap
}

func order(a, b float32) (lo, hi float32) {
	if a <= b {
		return a, b
	}
	return b, a
}

// onSegment reports whether point q, known collinear with segment p0-p1,
// lies within the closed bounding box of p0-p1 (hence on the segment).
func onSegment(p0, p1, q Point) bool {
	minX, maxX := order(p0.X, p1.X)
	minY, maxY := order(p0.Y, p1.Y)
	return q.X >= minX && q.X <= maxX && q.Y >= minY && q.Y <= maxY
}
