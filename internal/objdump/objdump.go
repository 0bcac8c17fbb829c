// Package objdump loads a fixed coordinate corpus from a Wavefront OBJ file,
// for replaying a generation deterministically against recorded points
// instead of a live draw oracle. It also renders a generated shape back out
// as flattened 3-D vertices (z=0) for inspection with ordinary OBJ viewers.
//
// This module only reads fixtures; no OBJ encoder is available in the
// underlying gobj library, so rendering a shape back out is done directly.
package objdump

import (
	"fmt"

	"github.com/arl/gobj"
	"github.com/arl/gogeo/f32/d3"

	"github.com/arl/geogen/predicate"
)

// LoadPoints reads every vertex of the OBJ file at path and projects it onto
// the xy-plane (dropping z), in file order.
func LoadPoints(path string) ([]predicate.Point, error) {
	obj, err := gobj.Load(path)
	if err != nil {
		return nil, fmt.Errorf("objdump: load %q: %w", path, err)
	}
	verts := obj.Verts()
	pts := make([]predicate.Point, len(verts))
	for i, v := range verts {
		pts[i] = predicate.Point{X: float32(v[0]), Y: float32(v[1])}
	}
	return pts, nil
}

// Vec3Of lifts a 2-D point into a 3-D vector with z=0, the representation
// gogeo's d3 package operates on, for tools further down the pipeline that
// expect 3-D vertices.
func Vec3Of(p predicate.Point) d3.Vec3 {
	return d3.Vec3{p.X, p.Y, 0}
}

// DumpRing renders a cyclic vertex sequence as an OBJ "v"/"f" fragment: one
// vertex line per point (z=0 via Vec3Of) and a single closed face line,
// written to a plain string since gobj exposes no writer of its own.
func DumpRing(ring []predicate.Point) string {
	var out string
	for _, p := range ring {
		v := Vec3Of(p)
		out += fmt.Sprintf("v %g %g %g\n", v[0], v[1], v[2])
	}
	out += "f"
	for i := range ring {
		out += fmt.Sprintf(" %d", i+1)
	}
	out += "\n"
	return out
}
