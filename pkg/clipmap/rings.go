package clipmap

import (
	"fmt"

	"github.com/nrayamajhee/globemesh/pkg/geom"
	"github.com/nrayamajhee/globemesh/pkg/mesh"
)

// RingsConfig describes a nest of clipmap rings centered on one point.
// Every ring has the same segment count; each ring outward doubles the
// cell size and carves a hole where the next finer ring sits.
type RingsConfig struct {
	// Rings is the nesting depth. 1 builds a single plain grid.
	Rings int

	// Segments per ring side. A multiple of 4 and >= 8, so the hole
	// boundary lands on stitch-pair boundaries.
	Segments int

	// CellSize is the finest ring's cell edge length.
	CellSize float64

	// Center positions the nest in the XZ plane.
	Center geom.Vec3
}

// Validate reports the first precondition violation, or nil.
func (c RingsConfig) Validate() error {
	if c.Rings < 1 {
		return fmt.Errorf("clipmap: ring count must be >= 1, got %d", c.Rings)
	}
	if c.Segments < 8 || c.Segments%4 != 0 {
		return fmt.Errorf("clipmap: ring segments must be a multiple of 4 and >= 8, got %d", c.Segments)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("clipmap: cell size must be > 0, got %v", c.CellSize)
	}
	return nil
}

// BuildRings composes the ring nest into one deduplicated mesh. Each inner
// ring's outer border is stitched at ratio 2 against the surrounding
// coarser ring, whose hole boundary runs at exactly the stitched anchor
// spacing, so the shared boundary vertices merge and the nest is seamless.
func BuildRings(cfg RingsConfig) (*mesh.Mesh, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := cfg.Segments
	b := mesh.NewBuilder()

	cell := cfg.CellSize
	for ring := 0; ring < cfg.Rings; ring++ {
		gc := Config{
			Segments: n,
			CellSize: cell,
			Center:   cfg.Center,
			Stitch:   [4]int{1, 1, 1, 1},
		}
		if ring < cfg.Rings-1 {
			// A coarser ring surrounds this one.
			gc.Stitch = [4]int{2, 2, 2, 2}
		}
		if ring > 0 {
			// The previous (finer) ring fills the middle quarter.
			gc.Hole = &Rect{X0: n / 4, Y0: n / 4, X1: 3 * n / 4, Y1: 3 * n / 4}
		}

		g, err := Build(gc)
		if err != nil {
			return nil, err
		}
		mergeGrid(b, g)
		cell *= 2
	}

	return b.Mesh(), nil
}

// mergeGrid interns a grid's referenced vertices into the shared builder,
// dropping lattice vertices nothing connects.
func mergeGrid(b *mesh.Builder, g *Grid) {
	remap := make(map[uint32]uint32, len(g.Positions))
	lookup := func(i uint32) uint32 {
		if m, ok := remap[i]; ok {
			return m
		}
		m := b.Intern(g.Positions[i])
		remap[i] = m
		return m
	}
	for i := 0; i+2 < len(g.Indices); i += 3 {
		b.Triangle(lookup(g.Indices[i]), lookup(g.Indices[i+1]), lookup(g.Indices[i+2]))
	}
}
