// Package delaunay builds a Delaunay triangulation over a quad-edge mesh by
// the Guibas-Stolfi divide-and-conquer algorithm: split the lexicographically
// sorted input in half, triangulate each half recursively, then zip the two
// triangulations together along their lower common tangent.
package delaunay

import (
	"github.com/arl/assertgo"
	"github.com/arl/geogen/predicate"
	"github.com/arl/geogen/quadedge"
)

// Point is a mesh vertex.
type Point = predicate.Point

// InCircler tests whether d lies strictly inside the circle through a, b, c
// (given in CCW order).
type InCircler func(a, b, c, d Point) bool

// Triangulation names the two boundary edges bracketing a triangulated
// point set: Left's origin is the lexicographically smallest vertex,
// Right's destination is the largest.
type Triangulation struct {
	Left, Right quadedge.EdgeID
}

// Builder assembles Delaunay triangulations onto a shared mesh arena, using
// an injected orientation and in-circle predicate.
type Builder struct {
	Mesh     *quadedge.Mesh
	Orient   predicate.Orienteer
	InCircle InCircler
}

// NewBuilder returns a Builder writing into mesh.
func NewBuilder(mesh *quadedge.Mesh, orient predicate.Orienteer, inCircle InCircler) *Builder {
	return &Builder{Mesh: mesh, Orient: orient, InCircle: inCircle}
}

// Triangulate builds the Delaunay triangulation of pts, which must already
// be sorted lexicographically (by x, ties broken by y) and contain at least
// two distinct points. Three or more collinear points in a base case
// produce a chain of edges with no faces, per the algorithm's edge case.
func (b *Builder) Triangulate(pts []Point) Triangulation {
	assert.True(len(pts) >= 2, "delaunay: need at least two points")
	le, re := b.divide(pts)
	return Triangulation{Left: le, Right: re}
}

func (b *Builder) leftOf(p Point, e quadedge.EdgeID) bool {
	return b.Orient(p, b.Mesh.Orig(e), b.Mesh.Dest(e)) == predicate.CounterClockwise
}

func (b *Builder) rightOf(p Point, e quadedge.EdgeID) bool {
	return b.Orient(p, b.Mesh.Dest(e), b.Mesh.Orig(e)) == predicate.CounterClockwise
}

// valid reports whether e is still a viable merge candidate: its far
// endpoint must lie strictly to the right of the base edge (the same test
// as rightOf), which is above it since base runs from right to left.
func (b *Builder) valid(e, base quadedge.EdgeID) bool {
	return b.Orient(b.Mesh.Dest(e), b.Mesh.Dest(base), b.Mesh.Orig(base)) == predicate.CounterClockwise
}

func (b *Builder) divide(s []Point) (le, re quadedge.EdgeID) {
	switch len(s) {
	case 2:
		a := b.Mesh.MakeEdge(s[0], s[1])
		return a, quadedge.Sym(a)
	case 3:
		return b.triangle(s[0], s[1], s[2])
	}

	mid := len(s) / 2
	ldo, ldi := b.divide(s[:mid])
	rdi, rdo := b.divide(s[mid:])

	// Lower common tangent of the left and right hulls.
	for {
		if b.leftOf(b.Mesh.Orig(rdi), ldi) {
			ldi = b.Mesh.Lnext(ldi)
		} else if b.rightOf(b.Mesh.Orig(ldi), rdi) {
			rdi = b.Mesh.Rprev(rdi)
		} else {
			break
		}
	}

	basel := b.Mesh.Connect(quadedge.Sym(rdi), ldi)
	if b.Mesh.Orig(ldi) == b.Mesh.Orig(ldo) {
		ldo = quadedge.Sym(basel)
	}
	if b.Mesh.Orig(rdi) == b.Mesh.Orig(rdo) {
		rdo = basel
	}

	// Merge: repeatedly find the next candidate edge on each side and
	// connect the one whose far endpoint does not fall in the other's
	// circumcircle, until neither side has a valid candidate left.
	for {
		lcand := b.Mesh.Onext(quadedge.Sym(basel))
		if b.valid(lcand, basel) {
			for b.InCircle(b.Mesh.Dest(basel), b.Mesh.Orig(basel), b.Mesh.Dest(lcand), b.Mesh.Dest(b.Mesh.Onext(lcand))) {
				t := b.Mesh.Onext(lcand)
				b.Mesh.Delete(lcand)
				lcand = t
			}
		}
		rcand := b.Mesh.Oprev(basel)
		if b.valid(rcand, basel) {
			for b.InCircle(b.Mesh.Dest(basel), b.Mesh.Orig(basel), b.Mesh.Dest(rcand), b.Mesh.Dest(b.Mesh.Oprev(rcand))) {
				t := b.Mesh.Oprev(rcand)
				b.Mesh.Delete(rcand)
				rcand = t
			}
		}

		lok, rok := b.valid(lcand, basel), b.valid(rcand, basel)
		if !lok && !rok {
			break
		}
		if !lok || (rok && b.InCircle(b.Mesh.Dest(lcand), b.Mesh.Orig(lcand), b.Mesh.Orig(rcand), b.Mesh.Dest(rcand))) {
			basel = b.Mesh.Connect(rcand, quadedge.Sym(basel))
		} else {
			basel = b.Mesh.Connect(quadedge.Sym(basel), quadedge.Sym(lcand))
		}
	}

	return ldo, rdo
}

// triangle handles the 3-point base case: two edges sharing the middle
// point, closed off according to the triple's orientation.
func (b *Builder) triangle(p0, p1, p2 Point) (le, re quadedge.EdgeID) {
	a := b.Mesh.MakeEdge(p0, p1)
	c := b.Mesh.MakeEdge(p1, p2)
	b.Mesh.Splice(quadedge.Sym(a), c)

	switch b.Orient(p0, p1, p2) {
	case predicate.CounterClockwise:
		b.Mesh.Connect(c, a)
		return a, quadedge.Sym(c)
	case predicate.Clockwise:
		d := b.Mesh.Connect(c, a)
		return quadedge.Sym(d), d
	default:
		return a, quadedge.Sym(c)
	}
}
