package compose_test

import (
	"testing"

	"github.com/arl/geogen/chi"
	"github.com/arl/geogen/compose"
	"github.com/arl/geogen/delaunay"
	"github.com/arl/geogen/oracle"
	"github.com/arl/geogen/predicate"
	"github.com/arl/geogen/quadedge"
	"github.com/stretchr/testify/assert"
)

func grid() []predicate.Point {
	var pts []predicate.Point
	for x := 0; x < 6; x++ {
		for y := 0; y < 6; y++ {
			pts = append(pts, predicate.Point{X: float32(x) * 3, Y: float32(y) * 3})
		}
	}
	return pts
}

func chiBuilder(orient predicate.Orienteer, inCircle chi.InCircler) compose.ContourBuilder {
	return func(pts []predicate.Point, size int) []predicate.Point {
		sorted := append([]predicate.Point(nil), pts...)
		for i := 1; i < len(sorted); i++ {
			for j := i; j > 0 && (sorted[j].X < sorted[j-1].X || (sorted[j].X == sorted[j-1].X && sorted[j].Y < sorted[j-1].Y)); j-- {
				sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
			}
		}
		mesh := &quadedge.Mesh{}
		tri := delaunay.NewBuilder(mesh, orient, inCircle).Triangulate(sorted)
		return chi.Polygon(mesh, orient, inCircle, tri, size)
	}
}

func TestMulticontourProducesDisjointSlices(t *testing.T) {
	ctx := predicate.Context{}
	o := oracle.NewRand(3)
	rings := compose.Multicontour(o, grid(), []int{4, 5}, chiBuilder(ctx.Orientation, ctx.InCircle))

	assert.LessOrEqual(t, len(rings), 2)
	owner := make(map[predicate.Point]int)
	for i, r := range rings {
		assert.GreaterOrEqual(t, len(r), 3)
		for _, p := range r {
			if j, ok := owner[p]; ok {
				assert.Equal(t, j, i, "point %v shared by contours %d and %d", p, j, i)
			}
			owner[p] = i
		}
	}
}

func TestMultisegmentNonCrossing(t *testing.T) {
	o := oracle.NewRand(9)
	segs := compose.Multisegment(o, grid(), 5)
	assert.LessOrEqual(t, len(segs), 5)

	ctx := predicate.Context{}
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			rel := ctx.SegmentsRelation(segs[i], segs[j])
			assert.NotEqual(t, predicate.Cross, rel)
			assert.NotEqual(t, predicate.Overlap, rel)
		}
	}
}

func TestMixDrawsDisjointComponents(t *testing.T) {
	ctx := predicate.Context{}
	o := oracle.NewRand(21)
	cfg := compose.MixConfig{PointCount: 3, SegmentCount: 2, BorderSize: 4, HoleSizes: nil}
	res := compose.Mix(o, ctx.Orientation, ctx.InCircle, grid(), cfg)

	used := make(map[predicate.Point]int)
	for _, p := range res.Points {
		used[p]++
	}
	for _, s := range res.Segments {
		used[s.Start]++
		used[s.End]++
	}
	for _, poly := range res.Polygons {
		for _, p := range poly.Border {
			used[p]++
		}
	}
	for p, n := range used {
		assert.LessOrEqual(t, n, 1, "point %v reused across mix components", p)
	}
}
