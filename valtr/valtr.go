// Package valtr builds a convex polygon from a set of input points using
// Valtr's vector-decomposition method: split each axis's sorted coordinates
// into two random sub-chains, emit the deltas between consecutive chain
// members as edge vectors, sort the combined vectors by angle, and walk
// them as a closed polygon.
package valtr

import (
	"sort"

	"github.com/arl/geogen/contour"
	"github.com/arl/geogen/oracle"
	"github.com/arl/geogen/predicate"
	"github.com/arl/math32"
)

// Point is a contour vertex.
type Point = predicate.Point

type vec struct{ dx, dy float32 }

// decompose splits a sorted axis sequence into two randomly chosen
// monotone sub-chains (an "up" chain and a "down" chain) and returns the
// deltas between consecutive members of each, closed by the two chains'
// span back to the starting value.
func decompose(o oracle.Oracle, sorted []float32) []float32 {
	n := len(sorted)
	if n == 0 {
		return nil
	}
	lastMin, lastMax := sorted[0], sorted[0]
	var deltas []float32
	for i := 1; i < n-1; i++ {
		c := sorted[i]
		if o.Bool() {
			deltas = append(deltas, c-lastMin)
			lastMin = c
		} else {
			deltas = append(deltas, lastMax-c)
			lastMax = c
		}
	}
	deltas = append(deltas, sorted[n-1]-lastMin)
	deltas = append(deltas, lastMax-sorted[n-1])
	return deltas
}

// Contour builds a convex polygon from the x- and y-coordinate multisets of
// pts (pts' original pairing is not used). Its vertices are prefix sums of
// the decomposed edge vectors, shifted so that their minimum x and y equal
// those of pts; they are generally not points of pts. Collinear vertices
// are dropped by a strict hull, so the result can have fewer than len(pts)
// vertices.
func Contour(o oracle.Oracle, pts []Point, orient predicate.Orienteer) []Point {
	n := len(pts)
	if n < 3 {
		out := make([]Point, n)
		copy(out, pts)
		return out
	}

	xs := make([]float32, n)
	ys := make([]float32, n)
	for i, p := range pts {
		xs[i] = p.X
		ys[i] = p.Y
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	sort.Slice(ys, func(i, j int) bool { return ys[i] < ys[j] })

	dx := decompose(o, xs)
	dy := decompose(o, ys)

	// Shuffle one axis's vectors relative to the other so pairing isn't
	// perfectly sorted-to-sorted.
	dy = oracle.Permutation(o, dy)

	vecs := make([]vec, n)
	for i := range vecs {
		vecs[i] = vec{dx: dx[i], dy: dy[i]}
	}
	sort.Slice(vecs, func(i, j int) bool {
		return math32.Atan2(vecs[i].dy, vecs[i].dx) < math32.Atan2(vecs[j].dy, vecs[j].dx)
	})

	poly := make([]Point, n)
	var x, y float32
	minX, minY := float32(0), float32(0)
	for i, v := range vecs {
		poly[i] = Point{X: x, Y: y}
		x += v.dx
		y += v.dy
		if x < minX {
			minX = x
		}
		if y < minY {
			minY = y
		}
	}

	wantMinX, wantMinY := xs[0], ys[0]
	for i := range poly {
		poly[i].X += wantMinX - minX
		poly[i].Y += wantMinY - minY
	}

	return contour.Hull(poly, orient, true)
}
