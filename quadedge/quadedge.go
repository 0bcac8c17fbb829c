// Package quadedge implements Guibas and Stolfi's quad-edge data structure:
// a permutation-based encoding of a planar subdivision supporting the four
// primitive operations (MakeEdge, Splice, Connect, Delete) plus the Flip
// ("swap") reconfiguration used by Delaunay algorithms.
//
// Edges are allocated from an arena and addressed by stable EdgeID values,
// the way detour.MeshTile addresses polygons and links by index rather than
// pointer — the mesh is dropped wholesale at the end of a build instead of
// being garbage-collected edge by edge.
package quadedge

import (
	"github.com/arl/assertgo"
	"github.com/arl/geogen/predicate"
)

// Point is a mesh vertex.
type Point = predicate.Point

// Orienteer is the injected orientation predicate (see package predicate).
type Orienteer = predicate.Orienteer

// EdgeID addresses one of the four directed records sharing an undirected
// edge of the mesh. The low two bits select the rotation: 0 and 2 are the
// primal (vertex-to-vertex) directions, 1 and 3 are its dual (face-to-face)
// directions. EdgeID(-1) is the nil edge.
type EdgeID int32

const nilEdge EdgeID = -1

// Valid reports whether id addresses a live edge record.
func (id EdgeID) Valid() bool { return id >= 0 }

// Mesh is an arena of quad-edge records. The zero value is ready to use.
type Mesh struct {
	onext   []EdgeID
	orig    []Point
	hasOrig []bool
	free    []EdgeID
}

// rot returns the record's rotational dual: the same undirected edge, one
// quarter-turn counterclockwise (primal -> left dual -> reverse primal ->
// right dual -> primal again). Invariant I1: four applications is identity.
func rot(e EdgeID) EdgeID {
	base := e &^ 3
	return base + (e+1)&3
}

// invRot is the inverse rotation, rot applied three times.
func invRot(e EdgeID) EdgeID {
	base := e &^ 3
	return base + (e+3)&3
}

// Sym reverses the edge's orientation (rot applied twice).
func Sym(e EdgeID) EdgeID { return rot(rot(e)) }

// Rot returns e's rotational dual.
func Rot(e EdgeID) EdgeID { return rot(e) }

// InvRot returns e's inverse rotational dual.
func InvRot(e EdgeID) EdgeID { return invRot(e) }

// Onext returns the next edge counterclockwise around e's origin.
func (m *Mesh) Onext(e EdgeID) EdgeID { return m.onext[e] }

func (m *Mesh) setOnext(e, v EdgeID) { m.onext[e] = v }

// Oprev returns the next edge clockwise around e's origin: rot.onext.rot.
func (m *Mesh) Oprev(e EdgeID) EdgeID { return rot(m.onext[rot(e)]) }

// Lnext returns the next edge counterclockwise around e's left face:
// rot⁻¹.onext.rot.
func (m *Mesh) Lnext(e EdgeID) EdgeID { return rot(m.onext[invRot(e)]) }

// Lprev returns the next edge clockwise around e's left face: onext.sym.
func (m *Mesh) Lprev(e EdgeID) EdgeID { return Sym(m.onext[e]) }

// Rprev returns the next edge clockwise around e's right face: sym.onext.
func (m *Mesh) Rprev(e EdgeID) EdgeID { return m.onext[Sym(e)] }

// Rnext returns the next edge counterclockwise around e's right face:
// rot.onext.rot⁻¹.
func (m *Mesh) Rnext(e EdgeID) EdgeID { return invRot(m.onext[rot(e)]) }

// Orig returns e's origin vertex.
func (m *Mesh) Orig(e EdgeID) Point { return m.orig[e] }

func (m *Mesh) setOrig(e EdgeID, p Point) {
	m.orig[e] = p
	m.hasOrig[e] = true
}

// Dest returns e's destination vertex (the origin of its Sym).
func (m *Mesh) Dest(e EdgeID) Point { return m.orig[Sym(e)] }

// MakeEdge allocates a new, topologically disconnected edge from a to b.
func (m *Mesh) MakeEdge(a, b Point) EdgeID {
	var base EdgeID
	if n := len(m.free); n > 0 {
		base = m.free[n-1]
		m.free = m.free[:n-1]
	} else {
		base = EdgeID(len(m.onext))
		m.onext = append(m.onext, 0, 0, 0, 0)
		m.orig = append(m.orig, Point{}, Point{}, Point{}, Point{})
		m.hasOrig = append(m.hasOrig, false, false, false, false)
	}
	e, eRot, eSym, eInvRot := base, base+1, base+2, base+3
	m.onext[e] = e
	m.onext[eSym] = eSym
	m.onext[eRot] = eInvRot
	m.onext[eInvRot] = eRot
	m.hasOrig[e], m.hasOrig[eRot], m.hasOrig[eSym], m.hasOrig[eInvRot] = false, false, false, false
	m.setOrig(e, a)
	m.setOrig(eSym, b)
	return e
}

// Splice exchanges the origin rings of a and b: if a and b share an
// origin it separates their site rings (and vice versa), while
// simultaneously splitting or joining the dual face rings consistently.
// It is the only topological primitive the mesh needs beyond MakeEdge.
func (m *Mesh) Splice(a, b EdgeID) {
	alpha := rot(m.onext[a])
	beta := rot(m.onext[b])

	oa, ob := m.onext[a], m.onext[b]
	m.onext[a], m.onext[b] = ob, oa

	oalpha, obeta := m.onext[alpha], m.onext[beta]
	m.onext[alpha], m.onext[beta] = obeta, oalpha
}

// Connect inserts a new edge from a.Dest to b.Orig such that its Lnext
// walks from a into b along their shared left face.
func (m *Mesh) Connect(a, b EdgeID) EdgeID {
	e := m.MakeEdge(m.Dest(a), m.Orig(b))
	m.Splice(e, m.Lnext(a))
	m.Splice(Sym(e), b)
	return e
}

// Delete detaches e from both endpoints' site rings. The four records
// making up the undirected edge become free for reuse by MakeEdge.
func (m *Mesh) Delete(e EdgeID) {
	m.Splice(e, m.Oprev(e))
	es := Sym(e)
	m.Splice(es, m.Oprev(es))
	base := e &^ 3
	m.free = append(m.free, base)
}

// Flip re-hangs the diagonal e of the quadrilateral formed by its two
// adjacent triangular faces so that it connects the two opposite
// vertices instead. Only meaningful when IsConvexDiagonal(e) holds;
// callers are expected to have checked that first, since misuse here is
// a caller bug rather than a recoverable condition.
func (m *Mesh) Flip(e EdgeID) {
	a := m.Oprev(e)
	b := m.Oprev(Sym(e))
	assert.True(a.Valid() && b.Valid(), "quadedge: Flip on a boundary edge")

	m.Splice(e, a)
	m.Splice(Sym(e), b)
	m.Splice(e, m.Lnext(a))
	m.Splice(Sym(e), m.Lnext(b))
	m.setOrig(e, m.Dest(a))
	m.setOrig(Sym(e), m.Dest(b))
}

// IsConvexDiagonal reports whether e is the diagonal of a strictly convex
// quadrilateral formed by its two adjacent triangles, i.e. whether Flip(e)
// is safe: all four vertices of the quadrilateral turn consistently
// counterclockwise.
func (m *Mesh) IsConvexDiagonal(e EdgeID, orient Orienteer) bool {
	rs, re := m.Rnext(e), m.Lnext(e)
	return orient(m.Orig(rs), m.Dest(rs), m.Dest(e)) == predicate.CounterClockwise &&
		orient(m.Dest(Sym(re)), m.Orig(Sym(re)), m.Orig(m.Lprev(e))) == predicate.CounterClockwise &&
		orient(m.Orig(re), m.Dest(re), m.Orig(e)) == predicate.CounterClockwise &&
		orient(m.Dest(Sym(rs)), m.Orig(Sym(rs)), m.Dest(m.Rprev(e))) == predicate.CounterClockwise
}
