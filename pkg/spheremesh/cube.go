package spheremesh

import (
	"github.com/nrayamajhee/globemesh/pkg/geom"
	"github.com/nrayamajhee/globemesh/pkg/mesh"
)

// cubeFace is one square face of the [-1,1] cube, described by a corner
// and two full edge vectors with u cross v pointing outward.
type cubeFace struct {
	base, u, v geom.Vec3
}

// cubeFaces returns the six faces of the cube, oriented outward.
func cubeFaces() [6]cubeFace {
	return [6]cubeFace{
		{geom.Vec3{X: 1, Y: -1, Z: -1}, geom.Vec3{X: 0, Y: 2, Z: 0}, geom.Vec3{X: 0, Y: 0, Z: 2}},   // +X
		{geom.Vec3{X: -1, Y: -1, Z: -1}, geom.Vec3{X: 0, Y: 0, Z: 2}, geom.Vec3{X: 0, Y: 2, Z: 0}},  // -X
		{geom.Vec3{X: -1, Y: 1, Z: -1}, geom.Vec3{X: 0, Y: 0, Z: 2}, geom.Vec3{X: 2, Y: 0, Z: 0}},   // +Y
		{geom.Vec3{X: -1, Y: -1, Z: -1}, geom.Vec3{X: 2, Y: 0, Z: 0}, geom.Vec3{X: 0, Y: 0, Z: 2}},  // -Y
		{geom.Vec3{X: -1, Y: -1, Z: 1}, geom.Vec3{X: 2, Y: 0, Z: 0}, geom.Vec3{X: 0, Y: 2, Z: 0}},   // +Z
		{geom.Vec3{X: 1, Y: -1, Z: -1}, geom.Vec3{X: -2, Y: 0, Z: 0}, geom.Vec3{X: 0, Y: 2, Z: 0}},  // -Z
	}
}

// point projects face-plane coordinates (s, t in [0,1]) onto the unit
// sphere by central projection.
func (f cubeFace) point(s, t float64) geom.Vec3 {
	return f.base.Add(f.u.Scale(s)).Add(f.v.Scale(t)).Normalize()
}

// GenerateCube runs one generation pass over the cube-projected sphere.
// Each face is a quadrilateral patch: the same LOD policy, boundary
// snapping and deduplication as the triangular variant, but the raw
// positions come from planar interpolation on the cube face followed by
// normalization instead of great-circle blending.
func GenerateCube(cfg Config) (*mesh.Mesh, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res := NewResolver(cfg)
	b := mesh.NewBuilder()

	for _, f := range cubeFaces() {
		tessellateCubeFace(f, cfg, res, b)
	}

	return b.Mesh(), nil
}

// tessellateCubeFace emits one face's grid and triangles into the builder.
func tessellateCubeFace(f cubeFace, cfg Config, res *Resolver, b *mesh.Builder) {
	// Edge levels are resolved at edge midpoints; the adjacent cube face
	// resolves the same midpoint, so shared edges agree on density.
	eS0 := res.Resolve(f.point(0.5, 0)) // t = 0 edge
	eS1 := res.Resolve(f.point(0.5, 1)) // t = 1 edge
	eT0 := res.Resolve(f.point(0, 0.5)) // s = 0 edge
	eT1 := res.Resolve(f.point(1, 0.5)) // s = 1 edge
	center := res.Resolve(f.point(0.5, 0.5))

	k := center
	for _, e := range [4]int{eS0, eS1, eT0, eT1} {
		if e > k {
			k = e
		}
	}
	if k < 1 {
		k = 1
	}
	fk := float64(k)

	// Full (k+1)^2 grid; boundary fractions snap to the owning edge's
	// resolution so the neighbor face lands on identical plane points.
	indices := make([]uint32, (k+1)*(k+1))
	for j := 0; j <= k; j++ {
		t := float64(j) / fk
		for i := 0; i <= k; i++ {
			s := float64(i) / fk
			ss, tt := s, t
			switch {
			case j == 0:
				ss = snapFraction(s, eS0)
			case j == k:
				ss = snapFraction(s, eS1)
			}
			switch {
			case i == 0:
				tt = snapFraction(t, eT0)
			case i == k:
				tt = snapFraction(t, eT1)
			}
			indices[j*(k+1)+i] = b.Intern(displace(cfg, f.point(ss, tt)))
		}
	}

	for j := 0; j < k; j++ {
		for i := 0; i < k; i++ {
			p00 := indices[j*(k+1)+i]
			p10 := indices[j*(k+1)+i+1]
			p01 := indices[(j+1)*(k+1)+i]
			p11 := indices[(j+1)*(k+1)+i+1]
			b.Triangle(p00, p10, p11)
			b.Triangle(p00, p11, p01)
		}
	}
}
