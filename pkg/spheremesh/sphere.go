package spheremesh

import (
	"math"

	"github.com/nrayamajhee/globemesh/pkg/geom"
	"github.com/nrayamajhee/globemesh/pkg/mesh"
)

// Generate runs one full generation pass over the icosahedron-based sphere
// and returns the assembled mesh. The pass is synchronous, deterministic
// and side-effect free; the returned mesh is the only value that outlives
// it. Invalid configs fail before any geometry is generated.
func Generate(cfg Config) (*mesh.Mesh, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res := NewResolver(cfg)
	b := mesh.NewBuilder()

	faces := subdivideFaces(icosahedron(), cfg.BaseSubdivision)
	for _, f := range faces {
		p := Patch{
			A:      f.a,
			B:      f.b,
			C:      f.c,
			EdgeAB: res.Resolve(geom.Slerp(f.a, f.b, 0.5)),
			EdgeBC: res.Resolve(geom.Slerp(f.b, f.c, 0.5)),
			EdgeCA: res.Resolve(geom.Slerp(f.c, f.a, 0.5)),
			Center: res.Resolve(geom.Slerp3(f.a, f.b, f.c, 1.0/3, 1.0/3, 1.0/3)),
		}

		grid, tris := p.Tessellate()
		indices := make([]uint32, len(grid))
		for i, unit := range grid {
			indices[i] = b.Intern(displace(cfg, unit))
		}
		for _, t := range tris {
			b.Triangle(indices[t[0]], indices[t[1]], indices[t[2]])
		}
	}

	return b.Mesh(), nil
}

// displace converts a unit-sphere point to its final world position:
// radius scaling plus optional height displacement. This happens before
// deduplication so two paths deriving the same boundary point displace
// identically and still merge.
func displace(cfg Config, unit geom.Vec3) geom.Vec3 {
	r := cfg.Radius
	if cfg.Heights != nil && cfg.DisplacementScale > 0 {
		u, v := SphereUV(unit)
		r += cfg.Heights.Sample(u, v) * cfg.DisplacementScale
	}
	return unit.Scale(r)
}

// SphereUV maps a unit-sphere point to equirectangular texture coordinates
// in [0, 1].
func SphereUV(p geom.Vec3) (u, v float64) {
	u = 0.5 + math.Atan2(p.Z, p.X)/(2*math.Pi)
	v = 0.5 - math.Asin(geom.Clamp(p.Y, -1, 1))/math.Pi
	return u, v
}
