package mesh

import (
	"testing"

	"github.com/nrayamajhee/globemesh/pkg/geom"
)

func TestInternDeduplicates(t *testing.T) {
	b := NewBuilder()

	i0 := b.Intern(geom.Vec3{X: 1, Y: 2, Z: 3})
	i1 := b.Intern(geom.Vec3{X: 1, Y: 2, Z: 3})
	if i0 != i1 {
		t.Errorf("identical positions interned to %d and %d", i0, i1)
	}
	if b.VertexCount() != 1 {
		t.Errorf("vertex count = %d, want 1", b.VertexCount())
	}
}

func TestInternMergesWithinPrecision(t *testing.T) {
	b := NewBuilder()

	// Two computations of the "same" boundary point differing by less
	// than half the quantum must land on one index.
	i0 := b.Intern(geom.Vec3{X: 1, Y: 0, Z: 0})
	i1 := b.Intern(geom.Vec3{X: 1 + 4e-7, Y: 0, Z: 0})
	if i0 != i1 {
		t.Errorf("positions within precision interned to %d and %d", i0, i1)
	}
}

func TestInternKeepsDistinct(t *testing.T) {
	b := NewBuilder()

	i0 := b.Intern(geom.Vec3{X: 1, Y: 0, Z: 0})
	i1 := b.Intern(geom.Vec3{X: 1 + 2e-6, Y: 0, Z: 0})
	if i0 == i1 {
		t.Error("clearly distinct positions merged to one index")
	}
}

func TestTriangleDropsDegenerate(t *testing.T) {
	b := NewBuilder()
	i0 := b.Intern(geom.Vec3{X: 0, Y: 0, Z: 0})
	i1 := b.Intern(geom.Vec3{X: 1, Y: 0, Z: 0})
	i2 := b.Intern(geom.Vec3{X: 0, Y: 1, Z: 0})

	b.Triangle(i0, i0, i1)
	b.Triangle(i0, i1, i0)
	b.Triangle(i1, i0, i0)
	b.Triangle(i0, i1, i2)

	m := b.Mesh()
	if len(m.Indices) != 3 {
		t.Errorf("index count = %d, want 3 (only the non-degenerate triangle)", len(m.Indices))
	}
}

func TestMeshComputesNormals(t *testing.T) {
	b := NewBuilder()
	i0 := b.Intern(geom.Vec3{X: 0, Y: 0, Z: 0})
	i1 := b.Intern(geom.Vec3{X: 1, Y: 0, Z: 0})
	i2 := b.Intern(geom.Vec3{X: 0, Y: 0, Z: -1})
	b.Triangle(i0, i1, i2)

	m := b.Mesh()
	if len(m.Normals) != 3 {
		t.Fatalf("normal count = %d, want 3", len(m.Normals))
	}
	want := geom.Vec3{X: 0, Y: 1, Z: 0}
	for i, n := range m.Normals {
		if n.Distance(want) > 1e-12 {
			t.Errorf("normal %d = %v, want %v", i, n, want)
		}
	}
}
