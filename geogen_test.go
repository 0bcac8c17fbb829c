package geogen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arl/geogen"
	"github.com/arl/geogen/oracle"
	"github.com/arl/geogen/predicate"
)

// queue returns a CoordFn that yields vs in order, then repeats the last
// value, for scripting an exact draw sequence (S1-S3 of the testable
// properties section).
func queue(vs ...float32) geogen.CoordFn {
	i := 0
	return func() float32 {
		v := vs[i]
		if i < len(vs)-1 {
			i++
		}
		return v
	}
}

// S1: a degenerate first draw is rejected and redrawn.
func TestGenSegmentRedrawsOnDegenerateDraw(t *testing.T) {
	x := queue(3, 3, 3, 5)
	y := queue(4, 4, 4, 6)
	seg, err := geogen.GenSegment(x, y)
	assert.NoError(t, err)
	assert.Equal(t, geogen.Segment{
		Start: geogen.Point{X: 3, Y: 4},
		End:   geogen.Point{X: 5, Y: 6},
	}, seg)
}

// S2: a triangular contour auto-orients to CCW regardless of input order.
func TestGenTriangularContourAutoOrients(t *testing.T) {
	ctx := predicate.Context{}

	x := queue(0, 2, 1)
	y := queue(0, 0, 2)
	tri, err := geogen.GenTriangularContour(x, y, ctx.Orientation)
	assert.NoError(t, err)
	assert.Equal(t, geogen.Contour{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 2}}, tri)
	assert.Equal(t, predicate.CounterClockwise, ctx.Orientation(tri[0], tri[1], tri[2]))

	// Same three points fed in reverse draw order still yields a CCW
	// triangle over the same vertex set.
	x2 := queue(1, 2, 0)
	y2 := queue(2, 0, 0)
	tri2, err := geogen.GenTriangularContour(x2, y2, ctx.Orientation)
	assert.NoError(t, err)
	assert.Equal(t, predicate.CounterClockwise, ctx.Orientation(tri2[0], tri2[1], tri2[2]))
	assert.ElementsMatch(t, tri, tri2)
}

// S3: a rectangular contour is built from two sorted coordinate pairs, CCW,
// lexicographically smallest vertex first.
func TestGenRectangularContour(t *testing.T) {
	x := queue(3, 7)
	y := queue(4, 9)
	box := geogen.GenRectangularContour(x, y)
	assert.Equal(t, geogen.Contour{
		{X: 3, Y: 4}, {X: 7, Y: 4}, {X: 7, Y: 9}, {X: 3, Y: 9},
	}, box)
}

func uniformCoord(o oracle.Oracle, lo, hi float32) geogen.CoordFn {
	return func() float32 {
		return lo + float32(o.Integer(0, 1000))/1000*(hi-lo)
	}
}

// S4/S5: a convex contour and a general contour satisfy the universal size
// and shape invariants (properties 2, 4, 5).
func TestGenConvexAndGeneralContourInvariants(t *testing.T) {
	ctx := predicate.Context{}
	cfg := geogen.Config{Predicate: ctx}
	o := oracle.NewRand(11)
	x := uniformCoord(o, 0, 100)
	y := uniformCoord(o, 0, 100)

	convex, err := geogen.GenConvexContour(cfg, o, x, y, geogen.Bounds{Min: 5, Max: 5})
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, len(convex), 3)
	assert.LessOrEqual(t, len(convex), 5)
	assertCCW(t, ctx, convex)
	assertAllCCWTurns(t, ctx, convex)

	pentagon, err := geogen.GenContour(cfg, o, x, y, geogen.Bounds{Min: 5, Max: 5})
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, len(pentagon), 3)
	assertCCW(t, ctx, pentagon)
	assertSimpleNoCollinearTriples(t, ctx, pentagon)
}

// S6: a polygon's border is CCW with 4 to 6 vertices, and any hole it
// carries is CW with at least 3 vertices.
func TestGenPolygonWithHole(t *testing.T) {
	ctx := predicate.Context{}
	cfg := geogen.Config{Predicate: ctx}
	o := oracle.NewRand(99)
	x := uniformCoord(o, 0, 200)
	y := uniformCoord(o, 0, 200)

	poly, err := geogen.GenPolygon(cfg, o, x, y, geogen.Bounds{Min: 4, Max: 6}, []geogen.Bounds{{Min: 3, Max: 3}})
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, len(poly.Border), 4)
	assert.LessOrEqual(t, len(poly.Border), 6)
	assertCCW(t, ctx, poly.Border)

	// A degenerate input can legitimately yield fewer holes than requested
	// (chi.PolygonWithHoles drops a hole candidate that would cross an
	// already-accepted one); what must hold whenever a hole is present is
	// its own validity and disjointness from the border.
	assert.LessOrEqual(t, len(poly.Holes), 1)
	for _, hole := range poly.Holes {
		assert.GreaterOrEqual(t, len(hole), 3)
		assertCW(t, ctx, hole)
	}
}

func assertCCW(t *testing.T, ctx predicate.Context, ring geogen.Contour) {
	t.Helper()
	area := signedArea(ring)
	assert.Greater(t, area, float32(0), "ring is not CCW: %v", ring)
}

func assertCW(t *testing.T, ctx predicate.Context, ring geogen.Contour) {
	t.Helper()
	area := signedArea(ring)
	assert.Less(t, area, float32(0), "ring is not CW: %v", ring)
}

func signedArea(ring geogen.Contour) float32 {
	var area float32
	n := len(ring)
	for i := 0; i < n; i++ {
		a, b := ring[i], ring[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	return area
}

func assertAllCCWTurns(t *testing.T, ctx predicate.Context, ring geogen.Contour) {
	t.Helper()
	n := len(ring)
	for i := 0; i < n; i++ {
		o := ctx.Orientation(ring[i], ring[(i+1)%n], ring[(i+2)%n])
		assert.NotEqual(t, predicate.Clockwise, o, "reflex turn at index %d", i)
	}
}

func assertSimpleNoCollinearTriples(t *testing.T, ctx predicate.Context, ring geogen.Contour) {
	t.Helper()
	n := len(ring)
	seen := make(map[geogen.Point]bool, n)
	for i, p := range ring {
		assert.False(t, seen[p], "vertex %v repeated at index %d", p, i)
		seen[p] = true
		o := ctx.Orientation(ring[i], ring[(i+1)%n], ring[(i+2)%n])
		assert.NotEqual(t, predicate.Collinear, o, "collinear triple at index %d", i)
	}
}

func TestGenMixComponentsAreDisjoint(t *testing.T) {
	ctx := predicate.Context{}
	cfg := geogen.Config{Predicate: ctx}
	o := oracle.NewRand(5)
	x := uniformCoord(o, 0, 200)
	y := uniformCoord(o, 0, 200)

	mix, err := geogen.GenMix(cfg, o, x, y, geogen.MixSizes{
		Points:     geogen.Bounds{Min: 2, Max: 4},
		Segments:   geogen.Bounds{Min: 1, Max: 2},
		BorderSize: geogen.Bounds{Min: 4, Max: 5},
		HoleSizes:  nil,
	})
	assert.NoError(t, err)

	seen := make(map[geogen.Point]bool)
	for _, p := range mix.Points {
		assert.False(t, seen[p])
		seen[p] = true
	}
	for _, s := range mix.Segments {
		for _, p := range []geogen.Point{s.Start, s.End} {
			assert.False(t, seen[p], "point %v reused across mix components", p)
			seen[p] = true
		}
	}
	for _, poly := range mix.Polygons {
		for _, p := range poly.Border {
			assert.False(t, seen[p], "point %v reused across mix components", p)
			seen[p] = true
		}
	}
}
