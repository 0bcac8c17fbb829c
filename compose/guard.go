// Package compose implements the composite generators — multicontour,
// multisegment, multipolygon and mix — that partition a shared,
// sorted coordinate pool into disjoint slices and dispatch each slice to a
// builder (chi, valtr, star), guaranteeing the resulting geometries never
// cross by construction rather than by a post-hoc sweep.
package compose

import "github.com/arl/geogen/predicate"

// Point is a generator vertex.
type Point = predicate.Point

func segMaxX(s predicate.Segment) float32 {
	if s.Start.X > s.End.X {
		return s.Start.X
	}
	return s.End.X
}

func segMaxY(s predicate.Segment) float32 {
	if s.Start.Y > s.End.Y {
		return s.Start.Y
	}
	return s.End.Y
}

// VerticalLeftmostSegment reports whether segs has a vertical segment at
// its leftmost extremum: letting xStar = min over s of max(s.Start.X,
// s.End.X), some segment achieving xStar is vertical.
func VerticalLeftmostSegment(segs []predicate.Segment) bool {
	if len(segs) == 0 {
		return false
	}
	xStar := segMaxX(segs[0])
	for _, s := range segs[1:] {
		if m := segMaxX(s); m < xStar {
			xStar = m
		}
	}
	for _, s := range segs {
		if segMaxX(s) == xStar && s.Start.X == s.End.X {
			return true
		}
	}
	return false
}

// HorizontalLowermostSegment is VerticalLeftmostSegment's y-axis mirror.
func HorizontalLowermostSegment(segs []predicate.Segment) bool {
	if len(segs) == 0 {
		return false
	}
	yStar := segMaxY(segs[0])
	for _, s := range segs[1:] {
		if m := segMaxY(s); m < yStar {
			yStar = m
		}
	}
	for _, s := range segs {
		if segMaxY(s) == yStar && s.Start.Y == s.End.Y {
			return true
		}
	}
	return false
}

// ringSegments returns the cyclic edges of ring.
func ringSegments(ring []Point) []predicate.Segment {
	n := len(ring)
	segs := make([]predicate.Segment, n)
	for i := range ring {
		segs[i] = predicate.Segment{Start: ring[i], End: ring[(i+1)%n]}
	}
	return segs
}

// blocksSharedBoundary reports whether ring, just placed on the left of a
// slice boundary along the given axis, forbids the next slice from
// starting at the same coordinate value (see §4.7 of the design notes).
func blocksSharedBoundary(ring []Point, byY bool) bool {
	segs := ringSegments(ring)
	if byY {
		return HorizontalLowermostSegment(segs)
	}
	return VerticalLeftmostSegment(segs)
}

func coordOf(p Point, byY bool) float32 {
	if byY {
		return p.Y
	}
	return p.X
}
