package chi

import (
	"container/heap"

	"github.com/arl/geogen/predicate"
	"github.com/arl/geogen/quadedge"
)

// weight is the tie-breaking key for candidates sharing a delta bucket:
// the number of strictly-convex diagonals around the candidate's left
// face (larger faces win), then origin and dest lexicographically, so
// that replaying the same oracle against the same mesh always picks the
// same candidate.
type weight struct {
	convexDiagonals int
	origin, dest    predicate.Point
}

func pointLess(a, b predicate.Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// less reports whether w is strictly less than o (used to find the max).
func (w weight) less(o weight) bool {
	if w.convexDiagonals != o.convexDiagonals {
		return w.convexDiagonals < o.convexDiagonals
	}
	if w.origin != o.origin {
		return pointLess(w.origin, o.origin)
	}
	return pointLess(w.dest, o.dest)
}

type candidate struct {
	edge quadedge.EdgeID
	w    weight
}

// candidateHeap is a max-heap of candidates ordered by weight, giving
// popmax in O(log n).
type candidateHeap []candidate

func (h candidateHeap) Len() int            { return len(h) }
func (h candidateHeap) Less(i, j int) bool  { return h[j].w.less(h[i].w) }
func (h candidateHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(candidate)) }
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// buckets holds one candidateHeap per admissible delta value (-1..3): a
// min-max set keyed by weight, realized as one max-heap per delta key
// since deltas are a small fixed range.
type buckets struct {
	m map[int]*candidateHeap
}

func newBuckets() *buckets {
	b := &buckets{m: make(map[int]*candidateHeap, 5)}
	for d := -1; d <= 3; d++ {
		h := &candidateHeap{}
		heap.Init(h)
		b.m[d] = h
	}
	return b
}

func (b *buckets) push(delta int, c candidate) {
	h := b.m[delta]
	heap.Push(h, c)
}

// bucketKey clamps a real predicted delta into [-1, 3], the range buckets
// indexes: a candidate's actual delta (an ear clip's in particular) can
// fall outside this range, but the clamp only affects selection priority
// — callers must always re-derive and check the real delta before
// applying a popped candidate.
func bucketKey(delta int) int {
	switch {
	case delta < -1:
		return -1
	case delta > 3:
		return 3
	default:
		return delta
	}
}

// popBest returns the candidate from the highest delta bucket (capped at
// need) that is non-empty, preferring not to overshoot the remaining
// deficit, along with the delta it came from. ok is false if every bucket
// is empty.
func (b *buckets) popBest(need int) (c candidate, delta int, ok bool) {
	best := need
	if best > 3 {
		best = 3
	}
	for d := best; d >= -1; d-- {
		h := b.m[d]
		if h.Len() > 0 {
			return heap.Pop(h).(candidate), d, true
		}
	}
	return candidate{}, 0, false
}

func (b *buckets) empty() bool {
	for _, h := range b.m {
		if h.Len() > 0 {
			return false
		}
	}
	return true
}
