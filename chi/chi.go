// Package chi implements Duckham et al.'s boundary-sculpting algorithm: it
// drives a Delaunay-triangulated quad-edge mesh toward an exact boundary
// vertex count by "mouth removal" (absorbing an adjacent interior triangle
// into the boundary, usually growing it) followed, once no mouth remains,
// by "ear clipping" (flipping an interior diagonal sequence to expose
// previously buried vertices).
//
// The mesh's forward boundary link is Rprev (matching delaunay's
// BoundaryEdges): walking e, Rprev(e), Rprev(Rprev(e)), ... traces the hull
// counterclockwise with the triangulated interior on the left of each edge.
package chi

import (
	"github.com/arl/assertgo"
	"github.com/arl/geogen/contour"
	"github.com/arl/geogen/delaunay"
	"github.com/arl/geogen/predicate"
	"github.com/arl/geogen/quadedge"
)

// Point is a mesh vertex.
type Point = predicate.Point

// InCircler tests whether d lies strictly inside the circle through a, b, c.
type InCircler func(a, b, c, d Point) bool

type builder struct {
	mesh       *quadedge.Mesh
	orient     predicate.Orienteer
	inCircle   InCircler
	anchor     quadedge.EdgeID
	onBoundary map[Point]bool
	size       int

	// guard, when set, additionally gates mouth absorption: the new
	// boundary edges a->m and m->dest must satisfy it. Used by
	// PolygonWithHoles to keep the border from touching a hole.
	guard func(a, m, dest Point) bool
}

func newBuilder(mesh *quadedge.Mesh, orient predicate.Orienteer, inCircle InCircler, tri delaunay.Triangulation) *builder {
	b := &builder{
		mesh:       mesh,
		orient:     orient,
		inCircle:   inCircle,
		anchor:     tri.Left,
		onBoundary: make(map[Point]bool),
	}
	for _, p := range tri.Boundary(mesh) {
		b.onBoundary[p] = true
		b.size++
	}
	return b
}

func (b *builder) next(e quadedge.EdgeID) quadedge.EdgeID { return b.mesh.Rprev(e) }
func (b *builder) prev(e quadedge.EdgeID) quadedge.EdgeID { return b.mesh.Rnext(e) }

func (b *builder) currentBoundaryEdges() []quadedge.EdgeID {
	var edges []quadedge.EdgeID
	e := b.anchor
	for {
		edges = append(edges, e)
		e = b.next(e)
		if e == b.anchor {
			break
		}
	}
	return edges
}

func (b *builder) currentBoundary() []Point {
	edges := b.currentBoundaryEdges()
	pts := make([]Point, len(edges))
	for i, e := range edges {
		pts[i] = b.mesh.Orig(e)
	}
	return pts
}

// Polygon runs the full chi-algorithm against a Delaunay triangulation,
// returning a simple polygon of exactly size vertices when feasible, or the
// closest size reachable given the input's geometry.
func Polygon(mesh *quadedge.Mesh, orient predicate.Orienteer, inCircle InCircler, tri delaunay.Triangulation, size int) []Point {
	assert.True(size >= 3, "chi: target polygon size must be >= 3")

	b := newBuilder(mesh, orient, inCircle, tri)
	if b.size >= size {
		return contour.CompressCollinear(b.currentBoundary(), orient)
	}

	need := size - b.size
	need = b.mouthPhase(need)
	if need > 0 {
		need = b.earPhase(need)
	}
	_ = need

	b.anchor = b.firstLiveEdge()
	return contour.CompressCollinear(b.currentBoundary(), orient)
}

// firstLiveEdge returns the current anchor. It does no walking: mouthPhase
// and earPhase move the anchor off any boundary edge they delete, so the
// anchor is expected to still be attached to the mesh.
func (b *builder) firstLiveEdge() quadedge.EdgeID {
	return b.anchor
}

func (b *builder) isMouth(e quadedge.EdgeID) (Point, bool) {
	m := b.mesh.Dest(b.mesh.Lnext(e))
	if b.onBoundary[m] {
		return m, false
	}
	if b.guard != nil && !b.guard(b.mesh.Orig(e), m, b.mesh.Dest(e)) {
		return m, false
	}
	return m, true
}

func (b *builder) mouthDelta(e quadedge.EdgeID) int {
	a := b.mesh.Orig(e)
	dest := b.mesh.Dest(e)
	m := b.mesh.Dest(b.mesh.Lnext(e))
	prevA := b.mesh.Orig(b.prev(e))
	nextB := b.mesh.Dest(b.next(e))

	delta := 1
	if b.orient(prevA, a, m) == predicate.Collinear {
		delta--
	}
	if b.orient(m, dest, nextB) == predicate.Collinear {
		delta--
	}
	return delta
}

func (b *builder) faceWeight(e quadedge.EdgeID) weight {
	count := 0
	for _, d := range [2]quadedge.EdgeID{b.mesh.Lnext(e), b.mesh.Lprev(e)} {
		if b.mesh.IsConvexDiagonal(d, b.orient) {
			count++
		}
	}
	return weight{convexDiagonals: count, origin: b.mesh.Orig(e), dest: b.mesh.Dest(e)}
}

// absorbMouth deletes boundary edge e, exposing its triangle's two other
// sides as the new boundary edges a->m and m->dest.
func (b *builder) absorbMouth(e quadedge.EdgeID) (newA, newB quadedge.EdgeID) {
	ln := b.mesh.Lnext(e)
	lp := b.mesh.Lprev(e)
	b.mesh.Delete(e)
	return quadedge.Sym(lp), quadedge.Sym(ln)
}

func (b *builder) mouthPhase(need int) int {
	bkts := newBuckets()
	for _, e := range b.currentBoundaryEdges() {
		if _, ok := b.isMouth(e); ok {
			bkts.push(b.mouthDelta(e), candidate{edge: e, w: b.faceWeight(e)})
		}
	}

	for need > 0 {
		c, _, ok := bkts.popBest(need)
		if !ok {
			break
		}
		// The candidate may have gone stale since it was bucketed: an
		// already-absorbed mouth can have put its own apex onto the
		// boundary, and that apex may be this candidate's apex too.
		// Re-validate (and re-derive its delta fresh, since the boundary
		// around it may have shifted) before trusting it, the way
		// to_vertices_sequence re-checks _is_mouth on every popped
		// candidate instead of only the repair branch.
		if _, ok := b.isMouth(c.edge); !ok {
			continue
		}
		delta := b.mouthDelta(c.edge)
		if delta == -1 {
			if ok2, newDelta := b.tryFlipRepair(c.edge); ok2 {
				delta = newDelta
			} else {
				continue
			}
		}

		newA, newB := b.absorbMouth(c.edge)
		if b.anchor == c.edge {
			b.anchor = newA
		}
		m := b.mesh.Dest(newA)
		b.onBoundary[m] = true
		b.size += delta
		need -= delta

		for _, ne := range [2]quadedge.EdgeID{newA, newB} {
			if _, ok := b.isMouth(ne); ok {
				bkts.push(b.mouthDelta(ne), candidate{edge: ne, w: b.faceWeight(ne)})
			}
		}
	}
	return need
}

// tryFlipRepair attempts to turn a -1 mouth candidate into a non-negative
// one by flipping its interior diagonal once. It reports whether the
// candidate's delta is non-negative after the flip, along with that delta;
// a flip that leaves the delta at -1 is not undone.
func (b *builder) tryFlipRepair(e quadedge.EdgeID) (bool, int) {
	d := b.mesh.Lnext(e)
	other := b.mesh.Dest(b.mesh.Lnext(d))
	if b.onBoundary[other] {
		return false, 0
	}
	if !b.mesh.IsConvexDiagonal(d, b.orient) {
		return false, 0
	}
	b.mesh.Flip(d)
	newDelta := b.mouthDelta(e)
	if newDelta == -1 {
		return false, 0
	}
	return true, newDelta
}
