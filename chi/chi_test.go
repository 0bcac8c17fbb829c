package chi_test

import (
	"testing"

	"github.com/arl/geogen/chi"
	"github.com/arl/geogen/delaunay"
	"github.com/arl/geogen/oracle"
	"github.com/arl/geogen/predicate"
	"github.com/arl/geogen/quadedge"
	"github.com/arl/geogen/sample"
	"github.com/stretchr/testify/assert"
)

// hexagon-ish point cloud: a convex quad plus two points safely inside it,
// in general position (no three collinear).
func sampleCloud() []predicate.Point {
	return []predicate.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
		{X: 4, Y: 5}, {X: 6, Y: 3},
	}
}

func TestPolygonStaysWithinRequestedSize(t *testing.T) {
	ctx := predicate.Context{}
	mesh := &quadedge.Mesh{}
	pts := sortLex(sampleCloud())
	tri := delaunay.NewBuilder(mesh, ctx.Orientation, ctx.InCircle).Triangulate(pts)

	size := 6
	poly := chi.Polygon(mesh, ctx.Orientation, ctx.InCircle, tri, size)
	assert.LessOrEqual(t, 3, len(poly))
	assert.LessOrEqual(t, len(poly), size, "chi-algorithm overshot the requested size")

	// Simple: no repeated vertices.
	seen := make(map[predicate.Point]bool)
	for _, p := range poly {
		assert.False(t, seen[p], "vertex %v repeated", p)
		seen[p] = true
	}
}

// denseCloud returns n points in general position, dense enough that the
// boundary has several mouths sharing an apex and ears whose triangle fan
// spans more than one flip — the sparse sampleCloud above never reaches
// either regime. The pools hold 2n values so that sample.Points can use a
// prime grid length.
func denseCloud(n int) []predicate.Point {
	o := oracle.NewRand(7)
	xs := make([]float32, 2*n)
	ys := make([]float32, 2*n)
	for i := range xs {
		xs[i] = float32(i)
		ys[i] = float32(i)
	}
	return sample.Points(o, xs, ys, n)
}

func TestPolygonStaysWithinRequestedSizeDenseCloud(t *testing.T) {
	ctx := predicate.Context{}
	pts := sortLex(denseCloud(18))

	for _, size := range []int{5, 9, 14, 18} {
		mesh := &quadedge.Mesh{}
		tri := delaunay.NewBuilder(mesh, ctx.Orientation, ctx.InCircle).Triangulate(pts)

		poly := chi.Polygon(mesh, ctx.Orientation, ctx.InCircle, tri, size)
		assert.LessOrEqual(t, 3, len(poly))
		assert.LessOrEqual(t, len(poly), size, "chi-algorithm overshot the requested size %d (got %d)", size, len(poly))

		seen := make(map[predicate.Point]bool)
		for _, p := range poly {
			assert.False(t, seen[p], "vertex %v repeated", p)
			seen[p] = true
		}
	}
}

func TestPolygonWithHoles(t *testing.T) {
	ctx := predicate.Context{}
	mesh := &quadedge.Mesh{}
	pts := sampleCloud()
	o := oracle.NewRand(42)

	border, holes := chi.PolygonWithHoles(mesh, ctx.Orientation, ctx.InCircle, o, pts, 4, []int{3})
	assert.GreaterOrEqual(t, len(border), 3)
	assert.LessOrEqual(t, len(holes), 1)
	for _, h := range holes {
		assert.GreaterOrEqual(t, len(h), 3)
	}
}

func sortLex(pts []predicate.Point) []predicate.Point {
	out := append([]predicate.Point(nil), pts...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && less(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func less(a, b predicate.Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}
