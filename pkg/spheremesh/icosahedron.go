package spheremesh

import "github.com/nrayamajhee/globemesh/pkg/geom"

// baseFace is one triangular base region of the subdivided solid. Corners
// are unit vectors in CCW order viewed from outside the sphere.
type baseFace struct {
	a, b, c geom.Vec3
}

// icosahedron returns the 20 faces of a unit icosahedron, corners
// normalized onto the sphere, wound CCW from outside.
func icosahedron() []baseFace {
	// Golden-ratio construction: three orthogonal golden rectangles.
	const t = 1.618033988749895

	raw := [12]geom.Vec3{
		{X: -1, Y: t}, {X: 1, Y: t}, {X: -1, Y: -t}, {X: 1, Y: -t},
		{Y: -1, Z: t}, {Y: 1, Z: t}, {Y: -1, Z: -t}, {Y: 1, Z: -t},
		{X: t, Z: -1}, {X: t, Z: 1}, {X: -t, Z: -1}, {X: -t, Z: 1},
	}
	var verts [12]geom.Vec3
	for i, v := range raw {
		verts[i] = v.Normalize()
	}

	idx := [20][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	faces := make([]baseFace, len(idx))
	for i, f := range idx {
		faces[i] = baseFace{verts[f[0]], verts[f[1]], verts[f[2]]}
	}
	return faces
}

// subdivideFaces splits every face into four via great-circle midpoints,
// repeated level times. Midpoints of a shared edge are recomputed by both
// neighbors from the same endpoints, so corners stay consistent.
func subdivideFaces(faces []baseFace, level int) []baseFace {
	for ; level > 0; level-- {
		next := make([]baseFace, 0, len(faces)*4)
		for _, f := range faces {
			mab := geom.Slerp(f.a, f.b, 0.5)
			mbc := geom.Slerp(f.b, f.c, 0.5)
			mca := geom.Slerp(f.c, f.a, 0.5)
			next = append(next,
				baseFace{f.a, mab, mca},
				baseFace{mab, f.b, mbc},
				baseFace{mca, mbc, f.c},
				baseFace{mab, mbc, mca},
			)
		}
		faces = next
	}
	return faces
}
