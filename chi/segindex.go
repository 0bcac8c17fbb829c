package chi

import "github.com/arl/geogen/predicate"

// SegmentIndex accumulates accepted hole/border edges and answers whether a
// candidate segment crosses or overlaps anything already indexed. It is a
// bounding-box-pruned linear scan rather than the balanced tree a much
// larger edge count would need: polygon and hole boundaries here run to a
// few dozen edges at most, so a tree's upkeep would outweigh its payoff.
type SegmentIndex struct {
	ctx  predicate.Context
	segs []predicate.Segment
}

// NewSegmentIndex returns an empty index.
func NewSegmentIndex() *SegmentIndex {
	return &SegmentIndex{}
}

// Insert adds seg to the index.
func (idx *SegmentIndex) Insert(seg predicate.Segment) {
	idx.segs = append(idx.segs, seg)
}

// InsertRing adds every edge of the cyclic vertex sequence ring.
func (idx *SegmentIndex) InsertRing(ring []predicate.Point) {
	n := len(ring)
	for i := 0; i < n; i++ {
		idx.Insert(predicate.Segment{Start: ring[i], End: ring[(i+1)%n]})
	}
}

func bbox(s predicate.Segment) (minX, maxX, minY, maxY float32) {
	minX, maxX = order(s.Start.X, s.End.X)
	minY, maxY = order(s.Start.Y, s.End.Y)
	return
}

func order(a, b float32) (float32, float32) {
	if a <= b {
		return a, b
	}
	return b, a
}

func boxesOverlap(a, b predicate.Segment) bool {
	aMinX, aMaxX, aMinY, aMaxY := bbox(a)
	bMinX, bMaxX, bMinY, bMaxY := bbox(b)
	return aMinX <= bMaxX && bMinX <= aMaxX && aMinY <= bMaxY && bMinY <= aMaxY
}

// CrossesOrOverlaps reports whether seg crosses or overlaps any indexed
// segment (Touch is permitted: shared endpoints between adjacent hole
// edges and the border are legal).
func (idx *SegmentIndex) CrossesOrOverlaps(seg predicate.Segment) bool {
	for _, s := range idx.segs {
		if !boxesOverlap(seg, s) {
			continue
		}
		switch idx.ctx.SegmentsRelation(seg, s) {
		case predicate.Cross, predicate.Overlap:
			return true
		}
	}
	return false
}

// DisjointOrTouching reports the negation of CrossesOrOverlaps, named for
// readability at call sites that phrase the guard positively.
func (idx *SegmentIndex) DisjointOrTouching(seg predicate.Segment) bool {
	return !idx.CrossesOrOverlaps(seg)
}
