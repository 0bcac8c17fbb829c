package contour

import (
	"sort"

	"github.com/arl/geogen/predicate"
)

// Hull computes the convex hull of pts by Andrew's monotone chain: sort
// lexicographically, build the lower chain keeping only non-clockwise
// turns, mirror for the upper chain, then concatenate dropping the
// duplicated endpoints. The result is CCW.
//
// When strict is true, collinear points along a hull edge are dropped too
// (only strictly CCW turns survive); otherwise they are kept.
func Hull(pts []Point, orient predicate.Orienteer, strict bool) []Point {
	if len(pts) < 3 {
		out := make([]Point, len(pts))
		copy(out, pts)
		return out
	}

	sorted := make([]Point, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	keep := func(o predicate.Orientation) bool {
		if strict {
			return o == predicate.CounterClockwise
		}
		return o != predicate.Clockwise
	}

	build := func(seq []Point) []Point {
		var chain []Point
		for _, p := range seq {
			for len(chain) >= 2 && !keep(orient(chain[len(chain)-2], chain[len(chain)-1], p)) {
				chain = chain[:len(chain)-1]
			}
			chain = append(chain, p)
		}
		return chain
	}

	lower := build(sorted)

	rev := make([]Point, len(sorted))
	for i, p := range sorted {
		rev[len(sorted)-1-i] = p
	}
	upper := build(rev)

	hull := make([]Point, 0, len(lower)+len(upper)-2)
	hull = append(hull, lower[:len(lower)-1]...)
	hull = append(hull, upper[:len(upper)-1]...)
	return hull
}
