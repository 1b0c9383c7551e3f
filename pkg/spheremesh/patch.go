package spheremesh

import (
	"math"

	"github.com/nrayamajhee/globemesh/pkg/geom"
)

// Patch is an ephemeral descriptor of one triangular region during a
// generation pass: three unit corners in CCW order viewed from outside,
// the independently resolved resolution of each edge, and the resolution
// at the patch center.
type Patch struct {
	A, B, C geom.Vec3

	// EdgeAB, EdgeBC and EdgeCA are the subdivision levels resolved at
	// the respective edge midpoints. A neighbor sharing an edge resolves
	// the same midpoint and therefore the same level.
	EdgeAB, EdgeBC, EdgeCA int

	// Center is the subdivision level resolved at the patch centroid.
	Center int
}

// Resolution returns the level the patch tessellates at: the finest of the
// four governing levels, clamped to at least 1. Using the max prevents a
// coarse center from under-tessellating a boundary a neighbor expects at
// higher density.
func (p Patch) Resolution() int {
	k := p.Center
	for _, e := range [3]int{p.EdgeAB, p.EdgeBC, p.EdgeCA} {
		if e > k {
			k = e
		}
	}
	if k < 1 {
		k = 1
	}
	return k
}

// snapFraction rounds t to the nearest multiple of 1/res, forcing a
// boundary vertex onto a position the coarser neighbor also computes.
func snapFraction(t float64, res int) float64 {
	if res < 1 {
		res = 1
	}
	return math.Round(t*float64(res)) / float64(res)
}

// Tessellate builds the patch's barycentric vertex grid and triangle list.
// The grid holds (k+1)(k+2)/2 unit vectors for k = p.Resolution(); row r
// spans from the A-B edge to the A-C edge with r+1 entries. Triangles index
// into the grid and are wound CCW viewed from outside.
//
// Grid points on a patch edge are computed at that edge's own resolution:
// the intended fraction along the edge is rounded to the nearest multiple
// of 1/edgeResolution and reinterpolated. Snapping collapses several fine
// positions onto one coarse boundary point; the triangles referencing them
// become degenerate after vertex deduplication and are dropped there.
func (p Patch) Tessellate() ([]geom.Vec3, [][3]int) {
	k := p.Resolution()
	fk := float64(k)

	grid := make([]geom.Vec3, 0, (k+1)*(k+2)/2)
	for r := 0; r <= k; r++ {
		tr := float64(r) / fk
		for c := 0; c <= r; c++ {
			grid = append(grid, p.gridPoint(r, c, tr, k))
		}
	}

	// idx maps (row, column) to the grid offset.
	idx := func(r, c int) int { return r*(r+1)/2 + c }

	tris := make([][3]int, 0, k*k)
	for r := 0; r < k; r++ {
		for i := 0; i <= r; i++ {
			tris = append(tris, [3]int{idx(r, i), idx(r+1, i), idx(r+1, i+1)})
		}
		for i := 0; i < r; i++ {
			tris = append(tris, [3]int{idx(r, i), idx(r+1, i+1), idx(r, i+1)})
		}
	}
	return grid, tris
}

// gridPoint computes one grid position. Boundary rows and columns snap to
// their edge's resolution; interior points nest two great-circle
// interpolations at the patch resolution.
func (p Patch) gridPoint(r, c int, tr float64, k int) geom.Vec3 {
	switch {
	case r == 0:
		return p.A
	case c == 0:
		return geom.Slerp(p.A, p.B, snapFraction(tr, p.EdgeAB))
	case c == r:
		return geom.Slerp(p.A, p.C, snapFraction(tr, p.EdgeCA))
	case r == k:
		return geom.Slerp(p.B, p.C, snapFraction(float64(c)/float64(k), p.EdgeBC))
	default:
		left := geom.Slerp(p.A, p.B, tr)
		right := geom.Slerp(p.A, p.C, tr)
		return geom.Slerp(left, right, float64(c)/float64(r))
	}
}
