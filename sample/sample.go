// Package sample places points in general position (no three collinear)
// using a quadratic-residue grid: given sorted x and y coordinate pools,
// truncate both to a prime length p (see Points for short pools) and pair
// xs[i] with ys[scale*i^2 mod p] for a randomly chosen nonzero scale.
// Because i -> i^2 mod p traces a parabola modulo p and scale is coprime
// to p, every pair of
// index differences maps to a distinct slope, so no three resulting points
// are collinear.
package sample

import (
	"sort"

	"github.com/arl/assertgo"
	"github.com/arl/geogen/oracle"
	"github.com/arl/geogen/predicate"
)

// Point is a sampled vertex.
type Point = predicate.Point

// nextPrime returns the smallest prime >= n.
func nextPrime(n int) int {
	if n <= 2 {
		return 2
	}
	isPrime := func(v int) bool {
		if v < 2 {
			return false
		}
		for d := 2; d*d <= v; d++ {
			if v%d == 0 {
				return false
			}
		}
		return true
	}
	for ; !isPrime(n); n++ {
	}
	return n
}

// Points draws size points in general position from the coordinate pools
// xs and ys, both of which must already contain at least size values (the
// caller over-draws from its coordinate generators to guarantee this).
// The grid length p is the smallest prime >= size only when both pools
// hold at least that many values; otherwise p is the shorter pool's length
// (never below size), which need not be prime, and the no-three-collinear
// property is then not guaranteed.
func Points(o oracle.Oracle, xs, ys []float32, size int) []Point {
	if size == 0 {
		return nil
	}
	assert.True(len(xs) >= size && len(ys) >= size, "sample: coordinate pools smaller than requested size")

	p := nextPrime(size)
	for p > len(xs) || p > len(ys) {
		p--
		if p < size {
			p = size
		}
	}

	sx := append([]float32(nil), xs...)
	sy := append([]float32(nil), ys...)
	sort.Slice(sx, func(i, j int) bool { return sx[i] < sx[j] })
	sort.Slice(sy, func(i, j int) bool { return sy[i] < sy[j] })
	sx = sx[:p]
	sy = sy[:p]

	scale := 1
	if p > 2 {
		scale = o.Integer(1, p-1)
	}

	// One point per index i in [0, size): the quadratic-residue property
	// that guarantees no three collinear holds for the full i=0..p-1
	// parabola, and carries over to any prefix of it, so no dedup by
	// residue is needed (and doing so would only shrink the output, since
	// i and p-i always share a residue).
	pts := make([]Point, size)
	for i := 0; i < size; i++ {
		yi := (scale * i * i) % p
		pts[i] = Point{X: sx[i], Y: sy[yi]}
	}

	assert.True(len(pts) == size, "sample: produced a different count than requested")
	return pts
}
