package sample_test

import (
	"testing"

	"github.com/arl/geogen/oracle"
	"github.com/arl/geogen/predicate"
	"github.com/arl/geogen/sample"
	"github.com/stretchr/testify/assert"
)

func pool(n int, step float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i) * step
	}
	return out
}

func TestPointsNoThreeCollinear(t *testing.T) {
	o := oracle.NewRand(5)
	xs := pool(20, 1)
	ys := pool(20, 1)

	pts := sample.Points(o, xs, ys, 7)
	assert.Len(t, pts, 7)

	ctx := predicate.Context{}
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			for k := j + 1; k < len(pts); k++ {
				assert.NotEqual(t, predicate.Collinear, ctx.Orientation(pts[i], pts[j], pts[k]))
			}
		}
	}
}
