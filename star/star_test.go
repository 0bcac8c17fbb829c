package star_test

import (
	"testing"

	"github.com/arl/geogen/predicate"
	"github.com/arl/geogen/star"
	"github.com/stretchr/testify/assert"
)

func TestContourIsSimpleAndSized(t *testing.T) {
	ctx := predicate.Context{}
	pts := []predicate.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
		{X: 5, Y: 2}, {X: 8, Y: 5}, {X: 5, Y: 8}, {X: 2, Y: 5},
	}

	poly := star.Contour(pts, ctx.Orientation)
	assert.GreaterOrEqual(t, len(poly), 3)

	seen := make(map[predicate.Point]bool)
	for _, p := range poly {
		assert.False(t, seen[p])
		seen[p] = true
	}
}

func TestContourSmallInputPassesThrough(t *testing.T) {
	ctx := predicate.Context{}
	pts := []predicate.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	poly := star.Contour(pts, ctx.Orientation)
	assert.Equal(t, pts, poly)
}
