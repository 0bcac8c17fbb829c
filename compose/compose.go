package compose

import (
	"sort"

	"github.com/arl/geogen/chi"
	"github.com/arl/geogen/oracle"
	"github.com/arl/geogen/predicate"
	"github.com/arl/geogen/quadedge"
)

func sortAxis(pts []Point, byY bool) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	sort.Slice(out, func(i, j int) bool {
		if byY {
			if out[i].Y != out[j].Y {
				return out[i].Y < out[j].Y
			}
			return out[i].X < out[j].X
		}
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

// ContourBuilder turns a point slice and a target size into a cyclic
// vertex sequence (chi.Polygon, valtr.Contour, or star.Contour, bound by
// the caller).
type ContourBuilder func(pts []Point, size int) []Point

// Multicontour partitions pts into len(sizes) disjoint slices (choosing the
// sorting axis per slice via the oracle, per the original generator's
// alternating "sorting key chooser"), builds one contour per slice with
// build, and advances past any shared-boundary coordinate the disjointness
// guard forbids reusing.
func Multicontour(o oracle.Oracle, pts []Point, sizes []int, build ContourBuilder) [][]Point {
	remaining := append([]Point(nil), pts...)
	results := make([][]Point, 0, len(sizes))

	for _, want := range sizes {
		sz := want
		if sz > len(remaining) {
			sz = len(remaining)
		}
		if sz < 3 {
			break
		}
		byY := o.Bool()
		remaining = sortAxis(remaining, byY)

		slice := remaining[:sz]
		ring := build(slice, sz)
		results = append(results, ring)

		end := sz
		if blocksSharedBoundary(ring, byY) {
			boundary := coordOf(remaining[end-1], byY)
			for end < len(remaining) && coordOf(remaining[end], byY) == boundary {
				end++
			}
		}
		remaining = remaining[end:]
	}
	return results
}

// Multisegment draws up to count pairwise non-crossing, non-overlapping
// segments (touching at endpoints is allowed) from pts.
func Multisegment(o oracle.Oracle, pts []Point, count int) []predicate.Segment {
	remaining := sortAxis(pts, false)
	idx := chi.NewSegmentIndex()
	segs := make([]predicate.Segment, 0, count)

	for len(segs) < count && len(remaining) >= 2 {
		byY := o.Bool()
		remaining = sortAxis(remaining, byY)
		seg := predicate.Segment{Start: remaining[0], End: remaining[1]}

		consumed := 2
		if !idx.CrossesOrOverlaps(seg) {
			idx.Insert(seg)
			segs = append(segs, seg)
			if blocksSharedBoundary([]Point{seg.Start, seg.End}, byY) {
				boundary := coordOf(remaining[1], byY)
				for consumed < len(remaining) && coordOf(remaining[consumed], byY) == boundary {
					consumed++
				}
			}
		}
		remaining = remaining[consumed:]
	}
	return segs
}

// Polygon is a border with its holes, as built by chi.PolygonWithHoles.
type Polygon struct {
	Border []Point
	Holes  [][]Point
}

// Multipolygon partitions pts into len(borderSizes) disjoint slices and
// builds one polygon-with-holes per slice.
func Multipolygon(o oracle.Oracle, orient predicate.Orienteer, inCircle chi.InCircler, pts []Point, borderSizes []int, holeSizes [][]int) []Polygon {
	remaining := append([]Point(nil), pts...)
	results := make([]Polygon, 0, len(borderSizes))

	for i, want := range borderSizes {
		hs := holeSizes[i]
		need := want
		for _, h := range hs {
			need += h
		}
		sz := need
		if sz > len(remaining) {
			sz = len(remaining)
		}
		if sz < 3 {
			break
		}
		byY := o.Bool()
		remaining = sortAxis(remaining, byY)

		slice := remaining[:sz]
		mesh := &quadedge.Mesh{}
		border, holes := chi.PolygonWithHoles(mesh, orient, inCircle, o, slice, want, hs)
		results = append(results, Polygon{Border: border, Holes: holes})

		end := sz
		if blocksSharedBoundary(border, byY) {
			boundary := coordOf(remaining[end-1], byY)
			for end < len(remaining) && coordOf(remaining[end], byY) == boundary {
				end++
			}
		}
		remaining = remaining[end:]
	}
	return results
}

// MixConfig bounds a Mix's three components.
type MixConfig struct {
	PointCount   int
	SegmentCount int
	BorderSize   int
	HoleSizes    []int
}

// MixResult is a disjoint (multipoint, multisegment, multipolygon) triple,
// any component of which may be empty.
type MixResult struct {
	Points   []Point
	Segments []predicate.Segment
	Polygons []Polygon
}

// Mix draws a random permutation of the points/segments/polygon drawers
// and runs them in that order against successively shrinking slices of
// pts, so which component gets first pick of the coordinate pool varies
// from call to call (mirroring the original generator's drawer shuffle)
// while every component still consumes points the others haven't touched.
func Mix(o oracle.Oracle, orient predicate.Orienteer, inCircle chi.InCircler, pts []Point, cfg MixConfig) MixResult {
	remaining := append([]Point(nil), pts...)
	var result MixResult

	drawPoints := func() {
		n := cfg.PointCount
		if n > len(remaining) {
			n = len(remaining)
		}
		remaining = sortAxis(remaining, o.Bool())
		result.Points = append([]Point(nil), remaining[:n]...)
		remaining = remaining[n:]
	}
	drawSegments := func() {
		remaining = sortAxis(remaining, o.Bool())
		n := cfg.SegmentCount * 2
		if n > len(remaining) {
			n = len(remaining) - len(remaining)%2
		}
		slice := remaining[:n]
		idx := chi.NewSegmentIndex()
		for i := 0; i+1 < len(slice); i += 2 {
			seg := predicate.Segment{Start: slice[i], End: slice[i+1]}
			if idx.CrossesOrOverlaps(seg) {
				continue
			}
			idx.Insert(seg)
			result.Segments = append(result.Segments, seg)
		}
		remaining = remaining[n:]
	}
	drawPolygons := func() {
		need := cfg.BorderSize
		for _, h := range cfg.HoleSizes {
			need += h
		}
		if need < 3 || len(remaining) < need {
			return
		}
		remaining = sortAxis(remaining, o.Bool())
		slice := remaining[:need]
		mesh := &quadedge.Mesh{}
		border, holes := chi.PolygonWithHoles(mesh, orient, inCircle, o, slice, cfg.BorderSize, cfg.HoleSizes)
		result.Polygons = append(result.Polygons, Polygon{Border: border, Holes: holes})
		remaining = remaining[need:]
	}

	drawers := [3]func(){drawPoints, drawSegments, drawPolygons}
	for _, i := range oracle.Permutation(o, []int{0, 1, 2}) {
		drawers[i]()
	}
	return result
}
