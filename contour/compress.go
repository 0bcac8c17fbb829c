// Package contour provides small shape-agnostic helpers shared by the
// builders: compressing redundant collinear vertices out of a cyclic vertex
// sequence, and computing a convex hull.
package contour

import "github.com/arl/geogen/predicate"

// Point is a contour vertex.
type Point = predicate.Point

// CompressCollinear removes v[i] from the cyclic sequence v whenever
// orient(v[i-1], v[i], v[i+1]) is Collinear, scanning forward then backward
// until a full pass removes nothing. The result has length >= 3 unless the
// input was entirely collinear.
func CompressCollinear(v []Point, orient predicate.Orienteer) []Point {
	for {
		n := len(v)
		if n <= 3 {
			return v
		}
		changed := false

		out := make([]Point, 0, n)
		for i := 0; i < n; i++ {
			prev := v[(i-1+n)%n]
			cur := v[i]
			next := v[(i+1)%n]
			if orient(prev, cur, next) == predicate.Collinear {
				changed = true
				continue
			}
			out = append(out, cur)
		}
		v = out
		if !changed || len(v) <= 3 {
			return backwardPass(v, orient)
		}
	}
}

// backwardPass re-scans from the end, catching collinear vertices exposed
// only after their forward-adjacent neighbour was itself removed.
func backwardPass(v []Point, orient predicate.Orienteer) []Point {
	for {
		n := len(v)
		if n <= 3 {
			return v
		}
		changed := false
		out := make([]Point, 0, n)
		for i := n - 1; i >= 0; i-- {
			prev := v[(i-1+n)%n]
			cur := v[i]
			next := v[(i+1)%n]
			if orient(prev, cur, next) == predicate.Collinear {
				changed = true
				continue
			}
			out = append([]Point{cur}, out...)
		}
		v = out
		if !changed {
			return v
		}
	}
}
