package chi

import (
	"sort"

	"github.com/arl/geogen/contour"
	"github.com/arl/geogen/delaunay"
	"github.com/arl/geogen/oracle"
	"github.com/arl/geogen/predicate"
	"github.com/arl/geogen/quadedge"
)

// PolygonWithHoles carves holeSizes-many holes out of the Delaunay
// triangulation of points and grows a CCW border toward borderSize
// vertices (raised to the convex hull size when smaller, since no border
// can be smaller than that) around them. Growth stops early when no
// admissible mouth remains, so the border can end up below that target.
// Border edges never cross or overlap a hole edge (touching is allowed),
// and a hole that would cross or overlap an accepted hole is dropped.
func PolygonWithHoles(mesh *quadedge.Mesh, orient predicate.Orienteer, inCircle InCircler, o oracle.Oracle, points []Point, borderSize int, holeSizes []int) (border []Point, holes [][]Point) {
	sorted := sortAxis(points, false)
	tri := delaunay.NewBuilder(mesh, orient, inCircle).Triangulate(sorted)
	b := newBuilder(mesh, orient, inCircle, tri)

	onInitialBorder := make(map[Point]bool, len(b.onBoundary))
	for p := range b.onBoundary {
		onInitialBorder[p] = true
	}

	hull := contour.Hull(points, orient, false)
	if borderSize < len(hull) {
		borderSize = len(hull)
	}

	interior := make([]Point, 0, len(points))
	for _, p := range points {
		if !onInitialBorder[p] {
			interior = append(interior, p)
		}
	}

	index := NewSegmentIndex()
	holes = make([][]Point, 0, len(holeSizes))

	for _, h := range holeSizes {
		if len(interior) < 3 {
			break
		}
		// Alternate the sorting axis per hole, as the original generator's
		// sorting_key_chooser does, so successive holes don't all line up
		// on the same coordinate.
		interior = sortAxis(interior, o.Bool())

		n := h
		if n > len(interior) {
			n = len(interior)
		}
		if n < 3 {
			continue
		}
		sub := append([]Point(nil), interior[:n]...)

		holeMesh := &quadedge.Mesh{}
		holeTri := delaunay.NewBuilder(holeMesh, orient, inCircle).Triangulate(sortAxis(sub, false))
		hole := reverse(Polygon(holeMesh, orient, inCircle, holeTri, n))

		if crossesAny(index, hole) {
			continue
		}
		index.InsertRing(hole)
		holes = append(holes, hole)
		for _, p := range hole {
			b.onBoundary[p] = true
		}
		interior = interior[n:]
	}

	b.guard = func(a, m, dest Point) bool {
		return index.DisjointOrTouching(predicate.Segment{Start: a, End: m}) &&
			index.DisjointOrTouching(predicate.Segment{Start: m, End: dest})
	}
	need := borderSize - b.size
	if need > 0 {
		b.mouthPhase(need)
	}
	b.anchor = b.firstLiveEdge()
	border = contour.CompressCollinear(b.currentBoundary(), orient)
	return border, holes
}

func crossesAny(index *SegmentIndex, ring []Point) bool {
	n := len(ring)
	for i := 0; i < n; i++ {
		seg := predicate.Segment{Start: ring[i], End: ring[(i+1)%n]}
		if index.CrossesOrOverlaps(seg) {
			return true
		}
	}
	return false
}

func reverse(ring []Point) []Point {
	out := make([]Point, len(ring))
	for i, p := range ring {
		out[len(ring)-1-i] = p
	}
	return out
}

// sortAxis returns pts sorted lexicographically by (y, x) when byY is true,
// else by (x, y).
func sortAxis(pts []Point, byY bool) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	sort.Slice(out, func(i, j int) bool {
		if byY {
			if out[i].Y != out[j].Y {
				return out[i].Y < out[j].Y
			}
			return out[i].X < out[j].X
		}
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}
