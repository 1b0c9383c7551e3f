package clipmap

import (
	"math"
	"testing"

	"github.com/nrayamajhee/globemesh/pkg/geom"
	"github.com/nrayamajhee/globemesh/pkg/mesh"
)

func TestRingsConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RingsConfig)
	}{
		{"zero rings", func(c *RingsConfig) { c.Rings = 0 }},
		{"segments not multiple of 4", func(c *RingsConfig) { c.Segments = 10 }},
		{"too few segments", func(c *RingsConfig) { c.Segments = 4 }},
		{"zero cell size", func(c *RingsConfig) { c.CellSize = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := RingsConfig{Rings: 2, Segments: 8, CellSize: 1}
			tt.mutate(&cfg)
			if _, err := BuildRings(cfg); err == nil {
				t.Error("expected config error, got nil")
			}
		})
	}
}

func TestBuildRingsSingle(t *testing.T) {
	m, err := BuildRings(RingsConfig{Rings: 1, Segments: 8, CellSize: 1})
	if err != nil {
		t.Fatalf("BuildRings: %v", err)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got, want := len(m.Indices)/3, 2*8*8; got != want {
		t.Errorf("triangle count = %d, want %d", got, want)
	}
	if got, want := len(m.Positions), 9*9; got != want {
		t.Errorf("vertex count = %d, want %d", got, want)
	}
}

func meshAreaXZ(m *mesh.Mesh) float64 {
	var area float64
	for i := 0; i+2 < len(m.Indices); i += 3 {
		p0 := m.Positions[m.Indices[i]]
		p1 := m.Positions[m.Indices[i+1]]
		p2 := m.Positions[m.Indices[i+2]]
		area += triangleAreaXZ(p0, p1, p2)
	}
	return area
}

// TestBuildRingsSeamless builds a three-ring nest and checks it forms a
// single manifold sheet: every interior edge is shared by exactly two
// triangles, and the only single-use edges lie on the outermost border.
func TestBuildRingsSeamless(t *testing.T) {
	cfg := RingsConfig{Rings: 3, Segments: 8, CellSize: 1}
	m, err := BuildRings(cfg)
	if err != nil {
		t.Fatalf("BuildRings: %v", err)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	// Total extent is set by the outermost ring.
	extent := float64(cfg.Segments) * cfg.CellSize * math.Pow(2, float64(cfg.Rings-1))
	if area := meshAreaXZ(m); math.Abs(area-extent*extent) > 1e-9 {
		t.Errorf("covered area = %v, want %v", area, extent*extent)
	}

	type edge struct{ a, b uint32 }
	counts := make(map[edge]int)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		tri := [3]uint32{m.Indices[i], m.Indices[i+1], m.Indices[i+2]}
		for j := 0; j < 3; j++ {
			a, b := tri[j], tri[(j+1)%3]
			if a > b {
				a, b = b, a
			}
			counts[edge{a, b}]++
		}
	}
	half := extent / 2
	onBorder := func(p geom.Vec3) bool {
		return math.Abs(math.Abs(p.X)-half) < 1e-9 || math.Abs(math.Abs(p.Z)-half) < 1e-9
	}
	for e, n := range counts {
		if n > 2 {
			t.Fatalf("edge (%d, %d) used %d times", e.a, e.b, n)
		}
		if n == 1 {
			if !onBorder(m.Positions[e.a]) || !onBorder(m.Positions[e.b]) {
				t.Fatalf("interior seam edge (%v, %v) used once", m.Positions[e.a], m.Positions[e.b])
			}
		}
	}
}

func TestBuildRingsDedupesSharedBoundary(t *testing.T) {
	// With two rings the fine ring's border vertices coincide with the
	// coarse ring's hole boundary; merging must not duplicate them.
	two, err := BuildRings(RingsConfig{Rings: 2, Segments: 8, CellSize: 1})
	if err != nil {
		t.Fatalf("BuildRings: %v", err)
	}

	// Fine ring: 9x9 lattice minus the 16 odd border vertices its
	// stitched edges skip. Coarse ring: 9x9 minus the 9 hole-interior
	// vertices, minus the 16 hole-boundary vertices shared with the
	// fine ring's border anchors.
	want := (81 - 16) + (81 - 9) - 16
	if got := len(two.Positions); got != want {
		t.Errorf("vertex count = %d, want %d", got, want)
	}
}

func TestBuildRingsCentered(t *testing.T) {
	center := geom.Vec3{X: 100, Z: -50}
	m, err := BuildRings(RingsConfig{Rings: 2, Segments: 8, CellSize: 1, Center: center})
	if err != nil {
		t.Fatalf("BuildRings: %v", err)
	}
	var sum geom.Vec3
	for _, p := range m.Positions {
		sum = sum.Add(p)
	}
	c := sum.Scale(1 / float64(len(m.Positions)))
	if math.Abs(c.X-center.X) > 1e-9 || math.Abs(c.Z-center.Z) > 1e-9 {
		t.Errorf("centroid = %v, want %v", c, center)
	}
}
