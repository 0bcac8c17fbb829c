// Package geogen generates random planar geometric objects — points,
// segments, contours, polygons with holes, and heterogeneous mixes of
// them — for use as inputs to property-based tests. It is a pure library:
// every entry point is a deterministic function of its draw oracle,
// coordinate generators and size bounds (see Config, oracle.Oracle).
package geogen

import (
	"sort"

	"github.com/arl/geogen/chi"
	"github.com/arl/geogen/compose"
	"github.com/arl/geogen/delaunay"
	"github.com/arl/geogen/oracle"
	"github.com/arl/geogen/predicate"
	"github.com/arl/geogen/quadedge"
	"github.com/arl/geogen/sample"
	"github.com/arl/geogen/star"
	"github.com/arl/geogen/valtr"
)

// CoordFn draws one coordinate value from an external numeric generator —
// the counterpart of the draw oracle for plain x/y values. Kept separate
// from oracle.Oracle because how coordinates are drawn is an external
// contract the core never prescribes.
type CoordFn func() float32

// Config bundles the injected predicate capability and logger every entry
// point needs. The zero Config is directly usable: it defaults to
// predicate.Context{} and a discarding Logger.
type Config struct {
	Predicate predicate.Context
	Log       Logger
}

func (c Config) logger() Logger {
	if c.Log == nil {
		return noopLogger{}
	}
	return c.Log
}

const maxDrawAttempts = 64

// GenPoint draws a single point from x and y.
func GenPoint(x, y CoordFn) Point {
	return Point{X: x(), Y: y()}
}

// GenSegment draws two points, redrawing (at the oracle level, per the
// spec's "no silent retries" rule) until they differ, up to
// maxDrawAttempts before giving up with an ExhaustionSignal.
func GenSegment(x, y CoordFn) (Segment, error) {
	for i := 0; i < maxDrawAttempts; i++ {
		a, b := GenPoint(x, y), GenPoint(x, y)
		if a != b {
			return Segment{Start: a, End: b}, nil
		}
	}
	return Segment{}, newError(ExhaustionSignal, "could not draw two distinct points for a segment")
}

// GenBox draws an axis-aligned rectangle from two x-coordinates and two
// y-coordinates, as a CCW contour with the lexicographically smallest
// vertex first (S3).
func GenBox(x, y CoordFn) Contour {
	x0, x1 := sortedPair(x(), x())
	y0, y1 := sortedPair(y(), y())
	return Contour{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
	}
}

func sortedPair(a, b float32) (float32, float32) {
	if a <= b {
		return a, b
	}
	return b, a
}

// GenMultipoint draws a set of pairwise-distinct points whose size lies
// within sizeBounds.
func GenMultipoint(cfg Config, x, y CoordFn, sizeBounds Bounds) (Multipoint, error) {
	sizeBounds, err := resolveSize(cfg.logger(), sizeBounds, 0, "multipoint")
	if err != nil {
		return nil, err
	}
	n := sizeBounds.Min
	if sizeBounds.Max > n {
		n = sizeBounds.Max
	}

	seen := make(map[Point]bool, n)
	pts := make(Multipoint, 0, n)
	for len(pts) < n {
		drew := false
		for i := 0; i < maxDrawAttempts; i++ {
			p := GenPoint(x, y)
			if !seen[p] {
				seen[p] = true
				pts = append(pts, p)
				drew = true
				break
			}
		}
		if !drew {
			if len(pts) >= sizeBounds.Min {
				break
			}
			return nil, newError(ExhaustionSignal, "could not draw a fresh point for multipoint (%d/%d)", len(pts), n)
		}
	}
	return pts, nil
}

// generalPositionPoints over-draws coordinate pools from x and y and
// samples n points with no three collinear via the quadratic-residue
// grid (component K).
func generalPositionPoints(o oracle.Oracle, x, y CoordFn, n int) []Point {
	if n == 0 {
		return nil
	}
	pool := n * 2
	if pool < 8 {
		pool = 8
	}
	xs := make([]float32, pool)
	ys := make([]float32, pool)
	for i := range xs {
		xs[i] = x()
		ys[i] = y()
	}
	return sample.Points(o, xs, ys, n)
}

func (cfg Config) triangulate(pts []Point) (*quadedge.Mesh, delaunay.Triangulation) {
	sorted := append([]Point(nil), pts...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})
	mesh := &quadedge.Mesh{}
	b := delaunay.NewBuilder(mesh, cfg.Predicate.Orientation, cfg.Predicate.InCircle)
	return mesh, b.Triangulate(sorted)
}

// GenContour draws a simple polygon of a size within sizeBounds via the
// chi-algorithm (F), with no constraint on convexity/concavity.
func GenContour(cfg Config, o oracle.Oracle, x, y CoordFn, sizeBounds Bounds) (Contour, error) {
	sizeBounds, err := resolveSize(cfg.logger(), sizeBounds, 3, "contour")
	if err != nil {
		return nil, err
	}
	size := pickSize(o, sizeBounds)
	pts := generalPositionPoints(o, x, y, size*2)
	if len(pts) < 3 {
		return nil, newError(ExhaustionSignal, "not enough points in general position for a contour")
	}
	mesh, tri := cfg.triangulate(pts)
	ring := chi.Polygon(mesh, cfg.Predicate.Orientation, cfg.Predicate.InCircle, tri, size)
	if len(ring) < sizeBounds.Min {
		return nil, newError(ExhaustionSignal, "chi-algorithm could not reach minimum contour size %d (got %d)", sizeBounds.Min, len(ring))
	}
	if len(ring) > sizeBounds.Max {
		return nil, newError(ExhaustionSignal, "chi-algorithm overshot maximum contour size %d (got %d)", sizeBounds.Max, len(ring))
	}
	return Contour(ring), nil
}

// GenConvexContour draws a convex polygon (all CCW turns) via Valtr's
// random axis-decomposition algorithm (H).
func GenConvexContour(cfg Config, o oracle.Oracle, x, y CoordFn, sizeBounds Bounds) (Contour, error) {
	sizeBounds, err := resolveSize(cfg.logger(), sizeBounds, 3, "convex contour")
	if err != nil {
		return nil, err
	}
	size := pickSize(o, sizeBounds)
	pts := generalPositionPoints(o, x, y, size)
	if len(pts) < 3 {
		return nil, newError(ExhaustionSignal, "not enough points in general position for a convex contour")
	}
	ring := valtr.Contour(o, pts, cfg.Predicate.Orientation)
	return Contour(ring), nil
}

// GenConcaveContour draws a simple polygon guaranteed to have at least one
// reflex (CW) vertex, redrawing at the oracle level if the chi-algorithm
// happens to return a convex ring.
func GenConcaveContour(cfg Config, o oracle.Oracle, x, y CoordFn, sizeBounds Bounds) (Contour, error) {
	sizeBounds, err := resolveSize(cfg.logger(), sizeBounds, 4, "concave contour")
	if err != nil {
		return nil, err
	}
	for i := 0; i < maxDrawAttempts; i++ {
		ring, err := GenContour(cfg, o, x, y, sizeBounds)
		if err != nil {
			return nil, err
		}
		if !isConvex(ring, cfg.Predicate.Orientation) {
			return ring, nil
		}
	}
	return nil, newError(ExhaustionSignal, "could not draw a concave contour within the retry budget")
}

func isConvex(ring Contour, orient predicate.Orienteer) bool {
	n := len(ring)
	for i := 0; i < n; i++ {
		if orient(ring[i], ring[(i+1)%n], ring[(i+2)%n]) == predicate.Clockwise {
			return false
		}
	}
	return true
}

// GenStarContour draws a star-shaped simple polygon (I).
func GenStarContour(cfg Config, o oracle.Oracle, x, y CoordFn, sizeBounds Bounds) (Contour, error) {
	sizeBounds, err := resolveSize(cfg.logger(), sizeBounds, 3, "star contour")
	if err != nil {
		return nil, err
	}
	size := pickSize(o, sizeBounds)
	pts := generalPositionPoints(o, x, y, size)
	if len(pts) < 3 {
		return nil, newError(ExhaustionSignal, "not enough points in general position for a star contour")
	}
	ring := star.Contour(pts, cfg.Predicate.Orientation)
	if len(ring) < 3 {
		return nil, newError(ExhaustionSignal, "star-contour builder collapsed below 3 vertices")
	}
	return Contour(ring), nil
}

// GenTriangularContour draws 3 points and returns them as a CCW triangle,
// auto-orienting regardless of draw order (S2).
func GenTriangularContour(x, y CoordFn, orient predicate.Orienteer) (Contour, error) {
	a, b, c := GenPoint(x, y), GenPoint(x, y), GenPoint(x, y)
	if orient(a, b, c) == predicate.Collinear {
		return nil, newError(ExhaustionSignal, "three drawn points are collinear, not a triangle")
	}
	if orient(a, b, c) == predicate.Clockwise {
		b, c = c, b
	}
	return Contour{a, b, c}, nil
}

// GenRectangularContour is GenBox under the gen_rectangular_contour name
// (S3): a degenerate, always-convex 4-vertex contour.
func GenRectangularContour(x, y CoordFn) Contour {
	return GenBox(x, y)
}

// GenMulticontour draws len(sizeBounds) disjoint contours (L), each built
// by build, partitioning one shared sampled point pool via the §4.7
// disjointness guard.
func GenMulticontour(cfg Config, o oracle.Oracle, x, y CoordFn, sizeBounds []Bounds, build compose.ContourBuilder) (Multicontour, error) {
	resolved := make([]Bounds, len(sizeBounds))
	sizes := make([]int, len(sizeBounds))
	total := 0
	for i, b := range sizeBounds {
		b, err := resolveSize(cfg.logger(), b, 3, "multicontour component")
		if err != nil {
			return nil, err
		}
		resolved[i] = b
		sizes[i] = pickSize(o, b)
		total += sizes[i]
	}
	pts := generalPositionPoints(o, x, y, total*2)
	rings := compose.Multicontour(o, pts, sizes, build)

	out := make(Multicontour, len(rings))
	for i, r := range rings {
		if len(r) > resolved[i].Max {
			return nil, newError(ExhaustionSignal, "chi-algorithm overshot maximum size %d for multicontour component %d (got %d)", resolved[i].Max, i, len(r))
		}
		out[i] = Contour(r)
	}
	return out, nil
}

// ChiContourBuilder adapts chi.Polygon into a compose.ContourBuilder by
// triangulating each slice independently.
func (cfg Config) ChiContourBuilder() compose.ContourBuilder {
	return func(pts []Point, size int) []Point {
		mesh, tri := cfg.triangulate(pts)
		return chi.Polygon(mesh, cfg.Predicate.Orientation, cfg.Predicate.InCircle, tri, size)
	}
}

// GenMultisegment draws up to sizeBounds.Max pairwise non-crossing,
// non-overlapping segments from freshly sampled general-position points.
func GenMultisegment(cfg Config, o oracle.Oracle, x, y CoordFn, sizeBounds Bounds) (Multisegment, error) {
	sizeBounds, err := resolveSize(cfg.logger(), sizeBounds, 0, "multisegment")
	if err != nil {
		return nil, err
	}
	n := pickSize(o, sizeBounds)
	if n == 0 {
		return nil, nil
	}
	pts := generalPositionPoints(o, x, y, n*2+2)
	segs := compose.Multisegment(o, pts, n)
	return Multisegment(segs), nil
}

// GenPolygon draws a polygon with holes (G): a CCW border whose vertex
// count lies within borderSize, carrying up to len(holeSizes) CW,
// pairwise-disjoint holes (a hole that would cross an accepted one, or that
// finds too few interior points, is dropped). A border outside borderSize
// is rejected with an ExhaustionSignal.
func GenPolygon(cfg Config, o oracle.Oracle, x, y CoordFn, borderSize Bounds, holeSizes []Bounds) (Polygon, error) {
	borderSize, err := resolveSize(cfg.logger(), borderSize, 3, "polygon border")
	if err != nil {
		return Polygon{}, err
	}
	hs := make([]int, len(holeSizes))
	borderN := pickSize(o, borderSize)
	total := borderN
	for i, b := range holeSizes {
		b, err := resolveSize(cfg.logger(), b, 3, "polygon hole")
		if err != nil {
			return Polygon{}, err
		}
		hs[i] = pickSize(o, b)
		total += hs[i]
	}

	pts := generalPositionPoints(o, x, y, total*2)
	if len(pts) < total {
		return Polygon{}, newError(ExhaustionSignal, "not enough points in general position for polygon with holes")
	}

	mesh := &quadedge.Mesh{}
	border, holes := chi.PolygonWithHoles(mesh, cfg.Predicate.Orientation, cfg.Predicate.InCircle, o, pts, borderN, hs)
	if len(border) < borderSize.Min {
		return Polygon{}, newError(ExhaustionSignal, "chi-algorithm could not reach minimum polygon border size %d (got %d)", borderSize.Min, len(border))
	}
	if len(border) > borderSize.Max {
		return Polygon{}, newError(ExhaustionSignal, "chi-algorithm overshot maximum polygon border size %d (got %d)", borderSize.Max, len(border))
	}

	out := Polygon{Border: Contour(border), Holes: make([]Contour, len(holes))}
	for i, h := range holes {
		out.Holes[i] = Contour(h)
	}
	return out, nil
}

// GenMultipolygon draws len(borderSizes) pairwise non-crossing-non-
// overlapping polygons with holes, partitioning a shared point pool.
func GenMultipolygon(cfg Config, o oracle.Oracle, x, y CoordFn, borderSizes []Bounds, holeSizes [][]Bounds) (Multipolygon, error) {
	bs := make([]int, len(borderSizes))
	hs := make([][]int, len(borderSizes))
	total := 0
	for i, b := range borderSizes {
		b, err := resolveSize(cfg.logger(), b, 3, "multipolygon border")
		if err != nil {
			return nil, err
		}
		bs[i] = pickSize(o, b)
		total += bs[i]
		hs[i] = make([]int, len(holeSizes[i]))
		for j, hb := range holeSizes[i] {
			hb, err := resolveSize(cfg.logger(), hb, 3, "multipolygon hole")
			if err != nil {
				return nil, err
			}
			hs[i][j] = pickSize(o, hb)
			total += hs[i][j]
		}
	}

	pts := generalPositionPoints(o, x, y, total*2)
	polys := compose.Multipolygon(o, cfg.Predicate.Orientation, cfg.Predicate.InCircle, pts, bs, hs)

	out := make(Multipolygon, len(polys))
	for i, p := range polys {
		holes := make([]Contour, len(p.Holes))
		for j, h := range p.Holes {
			holes[j] = Contour(h)
		}
		out[i] = Polygon{Border: Contour(p.Border), Holes: holes}
	}
	return out, nil
}

// MixSizes bounds a GenMix call's three disjoint components.
type MixSizes struct {
	Points      Bounds
	Segments    Bounds
	BorderSize  Bounds
	HoleSizes   []Bounds
}

// GenMix draws a disjoint (multipoint, multisegment, multipolygon) triple,
// any of which may be empty, in a randomly permuted draw order (L).
func GenMix(cfg Config, o oracle.Oracle, x, y CoordFn, sizes MixSizes) (Mix, error) {
	pointN := pickSize(o, sizes.Points)
	segN := pickSize(o, sizes.Segments)
	borderN := pickSize(o, sizes.BorderSize)
	holeN := make([]int, len(sizes.HoleSizes))
	total := pointN + segN*2 + borderN
	for i, hb := range sizes.HoleSizes {
		holeN[i] = pickSize(o, hb)
		total += holeN[i]
	}

	pts := generalPositionPoints(o, x, y, total*2)
	res := compose.Mix(o, cfg.Predicate.Orientation, cfg.Predicate.InCircle, pts, compose.MixConfig{
		PointCount:   pointN,
		SegmentCount: segN,
		BorderSize:   borderN,
		HoleSizes:    holeN,
	})

	mix := Mix{
		Points:   Multipoint(res.Points),
		Segments: Multisegment(res.Segments),
	}
	mix.Polygons = make(Multipolygon, len(res.Polygons))
	for i, p := range res.Polygons {
		holes := make([]Contour, len(p.Holes))
		for j, h := range p.Holes {
			holes[j] = Contour(h)
		}
		mix.Polygons[i] = Polygon{Border: Contour(p.Border), Holes: holes}
	}
	return mix, nil
}

// Unpack selects one non-empty component of a Mix as a Shape, the way a
// property-based test framework draws a single heterogeneous sample: it
// prefers polygons, then segments, then points, falling back to Empty.
func (m Mix) Unpack() Shape {
	switch {
	case len(m.Polygons) > 0:
		return m.Polygons[0]
	case len(m.Segments) > 0:
		return m.Segments[0]
	case len(m.Points) > 0:
		return m.Points[0]
	default:
		return Empty{}
	}
}
