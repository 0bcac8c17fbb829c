package predicate_test

import (
	"testing"

	"github.com/arl/geogen/predicate"
	"github.com/stretchr/testify/assert"
)

func TestOrientation(t *testing.T) {
	ctx := predicate.Context{}
	a, b, c := predicate.Point{X: 0, Y: 0}, predicate.Point{X: 1, Y: 0}, predicate.Point{X: 1, Y: 1}
	assert.Equal(t, predicate.CounterClockwise, ctx.Orientation(a, b, c))
	assert.Equal(t, predicate.Clockwise, ctx.Orientation(a, c, b))
	assert.Equal(t, predicate.Collinear, ctx.Orientation(a, b, predicate.Point{X: 2, Y: 0}))
}

func TestInCircle(t *testing.T) {
	ctx := predicate.Context{}
	a := predicate.Point{X: 0, Y: 0}
	b := predicate.Point{X: 1, Y: 0}
	c := predicate.Point{X: 0, Y: 1}
	inside := predicate.Point{X: 0.1, Y: 0.1}
	outside := predicate.Point{X: 10, Y: 10}
	assert.True(t, ctx.InCircle(a, b, c, inside))
	assert.False(t, ctx.InCircle(a, b, c, outside))
}

func TestSegmentsRelation(t *testing.T) {
	ctx := predicate.Context{}
	s := predicate.Segment{Start: predicate.Point{X: 0, Y: 0}, End: predicate.Point{X: 4, Y: 0}}

	disjoint := predicate.Segment{Start: predicate.Point{X: 0, Y: 1}, End: predicate.Point{X: 4, Y: 1}}
	assert.Equal(t, predicate.Disjoint, ctx.SegmentsRelation(s, disjoint))

	touch := predicate.Segment{Start: predicate.Point{X: 4, Y: 0}, End: predicate.Point{X: 4, Y: 4}}
	assert.Equal(t, predicate.Touch, ctx.SegmentsRelation(s, touch))

	cross := predicate.Segment{Start: predicate.Point{X: 2, Y: -2}, End: predicate.Point{X: 2, Y: 2}}
	assert.Equal(t, predicate.Cross, ctx.SegmentsRelation(s, cross))

	overlap := predicate.Segment{Start: predicate.Point{X: 2, Y: 0}, End: predicate.Point{X: 6, Y: 0}}
	assert.Equal(t, predicate.Overlap, ctx.SegmentsRelation(s, overlap))
}
