package delaunay

import "github.com/arl/geogen/quadedge"

// BoundaryEdges walks the outer face of t starting at Left and following
// Rprev, returning the sequence of edges in CCW order around the hull.
func (t Triangulation) BoundaryEdges(mesh *quadedge.Mesh) []quadedge.EdgeID {
	var edges []quadedge.EdgeID
	e := t.Left
	for {
		edges = append(edges, e)
		e = mesh.Rprev(e)
		if e == t.Left {
			break
		}
	}
	return edges
}

// Boundary returns the outer ring's vertices in CCW order: the origin of
// each edge yielded by BoundaryEdges.
func (t Triangulation) Boundary(mesh *quadedge.Mesh) []Point {
	edges := t.BoundaryEdges(mesh)
	pts := make([]Point, len(edges))
	for i, e := range edges {
		pts[i] = mesh.Orig(e)
	}
	return pts
}
