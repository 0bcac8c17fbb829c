// Package star builds a star-shaped simple polygon from a point set: sort
// around a centroid by angle, collapse angle ties, and repeatedly evict
// vertices whose internal angle does not contain the current centroid
// until the shape stabilizes.
package star

import (
	"sort"

	"github.com/arl/geogen/contour"
	"github.com/arl/geogen/predicate"
	"github.com/arl/math32"
)

// Point is a contour vertex.
type Point = predicate.Point

func centroidOf(pts []Point) Point {
	var sx, sy float32
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float32(len(pts))
	return Point{X: sx / n, Y: sy / n}
}

// regionCentroid computes the centroid of the polygon's area (the shoelace
// formula: each edge's endpoint sum weighted by that edge's cross product),
// used once the shape has more than two vertices so
// recentring reflects the current boundary rather than the raw point set.
func regionCentroid(poly []Point) Point {
	n := len(poly)
	if n < 3 {
		return centroidOf(poly)
	}
	var areaSum, cx, cy float32
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		cross := a.X*b.Y - b.X*a.Y
		areaSum += cross
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
	}
	if areaSum == 0 {
		return centroidOf(poly)
	}
	return Point{X: cx / (3 * areaSum), Y: cy / (3 * areaSum)}
}

func angleAround(c, p Point) float32 {
	return math32.Atan2(p.Y-c.Y, p.X-c.X)
}

// sortAroundDedup orders pts by angle around center and, among points
// sharing an angle, keeps only the farthest one.
func sortAroundDedup(pts []Point, center Point) []Point {
	type entry struct {
		p     Point
		angle float32
		dist  float32
	}
	entries := make([]entry, len(pts))
	for i, p := range pts {
		dx, dy := p.X-center.X, p.Y-center.Y
		entries[i] = entry{p: p, angle: angleAround(center, p), dist: dx*dx + dy*dy}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].angle != entries[j].angle {
			return entries[i].angle < entries[j].angle
		}
		return entries[i].dist > entries[j].dist
	})

	out := make([]Point, 0, len(entries))
	const eps = 1e-6
	for i, e := range entries {
		if i > 0 && math32.Abs(e.angle-entries[i-1].angle) < eps {
			continue
		}
		out = append(out, e.p)
	}
	return out
}

// pointInAngle reports whether center lies within the internal angle at
// vertex v of the CCW polygon poly (between its neighbours prev and next),
// edges included: left of both edges at a convex vertex, left of either
// edge at a reflex one.
func pointInAngle(prev, v, next, center Point, orient predicate.Orienteer) bool {
	turn := orient(prev, v, next)
	left := orient(prev, v, center)
	right := orient(v, next, center)
	if turn == predicate.CounterClockwise {
		return left != predicate.Clockwise && right != predicate.Clockwise
	}
	return left != predicate.Clockwise || right != predicate.Clockwise
}

// Contour builds a star-shaped polygon over pts, guaranteed simple if a
// star-shaped ordering exists for the input.
func Contour(pts []Point, orient predicate.Orienteer) []Point {
	if len(pts) < 3 {
		out := make([]Point, len(pts))
		copy(out, pts)
		return out
	}

	poly := sortAroundDedup(pts, centroidOf(pts))

	for {
		if len(poly) < 3 {
			return poly
		}
		center := centroidOf(poly)
		if len(poly) > 2 {
			center = regionCentroid(poly)
		}

		n := len(poly)
		var kept []Point
		for i, v := range poly {
			prev := poly[(i-1+n)%n]
			next := poly[(i+1)%n]
			if pointInAngle(prev, v, next, center, orient) {
				kept = append(kept, v)
			}
		}
		kept = contour.CompressCollinear(kept, orient)

		if len(kept) == len(poly) || len(kept) < 3 {
			return kept
		}
		poly = sortAroundDedup(kept, center)
	}
}
