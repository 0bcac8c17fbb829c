package oracle_test

import (
	"testing"

	"github.com/arl/geogen/oracle"
	"github.com/stretchr/testify/assert"
)

func TestRandDeterministic(t *testing.T) {
	a := oracle.NewRand(7)
	b := oracle.NewRand(7)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Integer(0, 100), b.Integer(0, 100))
	}
}

func TestChoiceWithinBounds(t *testing.T) {
	o := oracle.NewRand(1)
	seq := []string{"a", "b", "c"}
	for i := 0; i < 20; i++ {
		v := oracle.Choice(o, seq)
		assert.Contains(t, seq, v)
	}
}

func TestPermutationIsRearrangement(t *testing.T) {
	o := oracle.NewRand(2)
	seq := []int{1, 2, 3, 4, 5}
	perm := oracle.Permutation(o, seq)
	assert.ElementsMatch(t, seq, perm)
}

func TestListSizeWithinRange(t *testing.T) {
	o := oracle.NewRand(3)
	for i := 0; i < 20; i++ {
		n := oracle.ListSize(o, 2, 5)
		assert.GreaterOrEqual(t, n, 2)
		assert.LessOrEqual(t, n, 5)
	}
}
