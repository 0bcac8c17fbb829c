package quadedge_test

import (
	"testing"

	"github.com/arl/geogen/predicate"
	"github.com/arl/geogen/quadedge"
	"github.com/stretchr/testify/assert"
)

func TestRotInvariant(t *testing.T) {
	var m quadedge.Mesh
	e := m.MakeEdge(predicate.Point{X: 0, Y: 0}, predicate.Point{X: 1, Y: 0})
	r1 := quadedge.Rot(e)
	r2 := quadedge.Rot(r1)
	r3 := quadedge.Rot(r2)
	r4 := quadedge.Rot(r3)
	assert.Equal(t, e, r4)
	assert.Equal(t, quadedge.Sym(e), r2)
	assert.NotEqual(t, e, r1)
}

func TestMakeEdgeOrigDest(t *testing.T) {
	var m quadedge.Mesh
	a, b := predicate.Point{X: 0, Y: 0}, predicate.Point{X: 1, Y: 1}
	e := m.MakeEdge(a, b)
	assert.Equal(t, a, m.Orig(e))
	assert.Equal(t, b, m.Dest(e))
	assert.Equal(t, b, m.Orig(quadedge.Sym(e)))
	assert.Equal(t, a, m.Dest(quadedge.Sym(e)))
	// A lone edge's origin ring is just itself.
	assert.Equal(t, e, m.Onext(e))
}

func TestSpliceJoinsOriginRings(t *testing.T) {
	var m quadedge.Mesh
	p0 := predicate.Point{X: 0, Y: 0}
	p1 := predicate.Point{X: 1, Y: 0}
	p2 := predicate.Point{X: 0, Y: 1}

	a := m.MakeEdge(p0, p1)
	b := m.MakeEdge(p0, p2)

	m.Splice(a, b)

	// Both edges now share an origin ring: walking Onext from a reaches b.
	assert.Equal(t, b, m.Onext(a))
	assert.Equal(t, a, m.Onext(b))
}

func TestConnectAndDelete(t *testing.T) {
	var m quadedge.Mesh
	p0 := predicate.Point{X: 0, Y: 0}
	p1 := predicate.Point{X: 1, Y: 0}
	p2 := predicate.Point{X: 1, Y: 1}

	a := m.MakeEdge(p0, p1)
	b := m.MakeEdge(p1, p2)
	m.Splice(quadedge.Sym(a), b)

	c := m.Connect(b, a)
	assert.Equal(t, p2, m.Orig(c))
	assert.Equal(t, p0, m.Dest(c))

	m.Delete(c)
	// after deleting the connecting edge, a and b are no longer joined
	// through it.
	assert.NotEqual(t, c, m.Onext(quadedge.Sym(a)))
}
