package geogen

import "github.com/arl/geogen/predicate"

// Point, Segment and Orienteer are re-exported from predicate so callers
// that only need the public API never import the lower-level packages
// directly, the way detour re-exports recast's vector math at its surface.
type (
	Point     = predicate.Point
	Segment   = predicate.Segment
	Orienteer = predicate.Orienteer
)

// Contour is a cyclic vertex sequence, CCW for an outer border, CW for a
// hole, with no three consecutive vertices collinear.
type Contour []Point

// Polygon is a CCW border with zero or more pairwise-disjoint CW holes
// strictly inside it.
type Polygon struct {
	Border Contour
	Holes  []Contour
}

// Multipoint is a set of pairwise-distinct points.
type Multipoint []Point

// Multisegment is a set of pairwise non-crossing, non-overlapping segments.
type Multisegment []Segment

// Multicontour is a set of pairwise-disjoint contours.
type Multicontour []Contour

// Multipolygon is a set of pairwise non-crossing-non-overlapping polygons.
type Multipolygon []Polygon

// Empty is the zero-sized Shape variant.
type Empty struct{}

// Mix is a disjoint (multipoint, multisegment, multipolygon) triple, any
// component of which may be empty.
type Mix struct {
	Points   Multipoint
	Segments Multisegment
	Polygons Multipolygon
}

// Shape is the sum type a Mix unpacks into one component at a time. Its
// dynamic type is always one of Empty, Point, Segment, Multisegment,
// Polygon or Multipolygon; callers discriminate with a type switch.
type Shape interface{}
