package contour_test

import (
	"testing"

	"github.com/arl/geogen/contour"
	"github.com/arl/geogen/predicate"
	"github.com/stretchr/testify/assert"
)

func TestCompressCollinearDropsRedundantVertex(t *testing.T) {
	ctx := predicate.Context{}
	square := []contour.Point{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 4, Y: 0}, // (2,0) is collinear with its neighbours
		{X: 4, Y: 4}, {X: 0, Y: 4},
	}
	out := contour.CompressCollinear(square, ctx.Orientation)
	assert.Len(t, out, 4)
	assert.NotContains(t, out, contour.Point{X: 2, Y: 0})
}

func TestCompressCollinearKeepsTriangle(t *testing.T) {
	ctx := predicate.Context{}
	tri := []contour.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 2}}
	out := contour.CompressCollinear(tri, ctx.Orientation)
	assert.Len(t, out, 3)
}

func TestHullDropsInteriorPoints(t *testing.T) {
	ctx := predicate.Context{}
	pts := []contour.Point{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 2, Y: 2},
	}
	hull := contour.Hull(pts, ctx.Orientation, false)
	assert.Len(t, hull, 4)
	assert.NotContains(t, hull, contour.Point{X: 2, Y: 2})
}

func TestHullStrictDropsCollinear(t *testing.T) {
	ctx := predicate.Context{}
	pts := []contour.Point{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4},
	}
	hull := contour.Hull(pts, ctx.Orientation, true)
	assert.Len(t, hull, 4)
}
