package chi

import (
	"github.com/arl/assertgo"
	"github.com/arl/geogen/predicate"
	"github.com/arl/geogen/quadedge"
)

// isEar reports whether boundary edge e forms a strictly convex corner at
// its destination with the next boundary edge, and whether the interior
// diagonal separating them is safely flippable.
func (b *builder) isEar(e quadedge.EdgeID) bool {
	nxt := b.next(e)
	if b.orient(b.mesh.Orig(e), b.mesh.Dest(e), b.mesh.Dest(nxt)) != predicate.CounterClockwise {
		return false
	}
	d := b.mesh.Lnext(e)
	return b.mesh.IsConvexDiagonal(d, b.orient)
}

// clipEar flips the interior diagonal away from e until e becomes the
// hypotenuse of a single remaining triangle, deletes it, then restores a
// clean triangulation by flipping the edge exposed on the far side if it
// is still a valid diagonal. Each flip along the way exposes a
// previously-interior vertex onto the boundary; deleting e itself costs
// one vertex of boundary "prominence" since e's far endpoint (the ear tip)
// usually becomes collinear with its remaining neighbours.
func (b *builder) clipEar(e quadedge.EdgeID) int {
	nxt := b.next(e)
	flips := 0
	d := b.mesh.Lnext(e)
	for d != nxt && b.mesh.IsConvexDiagonal(d, b.orient) && flips < maxEarFlips {
		far := b.mesh.Dest(d)
		b.mesh.Flip(d)
		b.onBoundary[far] = true
		flips++
		d = b.mesh.Lnext(e)
	}

	b.mesh.Delete(e)
	if b.mesh.IsConvexDiagonal(nxt, b.orient) {
		b.mesh.Flip(nxt)
	}

	return flips - 1
}

// maxEarFlips bounds the flip-chasing loop: a well-formed Delaunay mesh
// over n points can never need more than n-3 flips to clear one ear, so
// this is purely a termination guard against an inconsistent predicate.
const maxEarFlips = 1 << 20

// earDelta performs the same flip chase clipEar would (discovering how
// many previously-interior vertices the clip would expose), then undoes
// every flip in reverse order — a diagonal flip is its own inverse — so
// the mesh is left exactly as it was. This gives every ear candidate a
// real predicted delta to bucket and compare against the remaining
// deficit by, instead of the constant placeholder clipEar's post-hoc
// flips-1 count used to produce.
func (b *builder) earDelta(e quadedge.EdgeID) int {
	nxt := b.next(e)
	var flipped []quadedge.EdgeID
	d := b.mesh.Lnext(e)
	for d != nxt && b.mesh.IsConvexDiagonal(d, b.orient) && len(flipped) < maxEarFlips {
		b.mesh.Flip(d)
		flipped = append(flipped, d)
		d = b.mesh.Lnext(e)
	}
	for i := len(flipped) - 1; i >= 0; i-- {
		b.mesh.Flip(flipped[i])
	}
	return len(flipped) - 1
}

func (b *builder) earPhase(need int) int {
	bkts := newBuckets()
	for _, e := range b.currentBoundaryEdges() {
		if b.isEar(e) {
			bkts.push(bucketKey(b.earDelta(e)), candidate{edge: e, w: b.faceWeight(e)})
		}
	}

	for need > 0 {
		c, _, ok := bkts.popBest(need)
		if !ok {
			break
		}
		if !b.isEar(c.edge) {
			continue
		}
		// The flip chase a clip performs can expose an unbounded number
		// of vertices (bounded only by the apex's triangle-fan degree),
		// so the bucket key above is clamped and cannot be trusted for
		// the "does not overshoot the deficit" rule on its own: check
		// the real predicted delta here and skip (permanently — a
		// degenerate but acceptable loss, matching the chi-algorithm's
		// "closest achievable size" contract) any candidate that would
		// overshoot it.
		delta := b.earDelta(c.edge)
		if delta > need {
			continue
		}

		nxt := b.next(c.edge)
		applied := b.clipEar(c.edge)
		assert.True(applied == delta, "chi: ear clip delta did not match its prediction")
		if b.anchor == c.edge {
			b.anchor = nxt
		}
		b.size += delta
		need -= delta

		if b.isEar(nxt) {
			bkts.push(bucketKey(b.earDelta(nxt)), candidate{edge: nxt, w: b.faceWeight(nxt)})
		}
	}
	return need
}
