package valtr_test

import (
	"testing"

	"github.com/arl/geogen/oracle"
	"github.com/arl/geogen/predicate"
	"github.com/arl/geogen/valtr"
	"github.com/stretchr/testify/assert"
)

func TestContourIsConvexAndSized(t *testing.T) {
	ctx := predicate.Context{}
	o := oracle.NewRand(11)
	pts := []predicate.Point{
		{X: 0, Y: 0}, {X: 5, Y: -2}, {X: 9, Y: 1}, {X: 7, Y: 6}, {X: 2, Y: 7}, {X: -1, Y: 3},
	}

	poly := valtr.Contour(o, pts, ctx.Orientation)
	assert.GreaterOrEqual(t, len(poly), 3)

	n := len(poly)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		c := poly[(i+2)%n]
		assert.Equal(t, predicate.CounterClockwise, ctx.Orientation(a, b, c))
	}
}
