package mesh

import (
	"math"

	"github.com/nrayamajhee/globemesh/pkg/geom"
)

// DefaultPrecision is the coordinate quantum used for vertex deduplication:
// positions within half a quantum of each other share one vertex. Coarser
// merges visually distinct vertices; finer fails to merge boundary vertices
// that two interpolation paths computed with ordinary floating-point drift.
const DefaultPrecision = 1e-6

// Builder accumulates vertices and triangles for one generation pass,
// deduplicating vertices by quantized coordinates so patches that
// independently re-derive the same boundary point share one index.
//
// A Builder is single-use: build one mesh, call Mesh, discard. The
// deduplication table never outlives the pass.
type Builder struct {
	precision float64
	keys      map[[3]int64]uint32
	mesh      Mesh
}

// NewBuilder returns a Builder deduplicating at DefaultPrecision.
func NewBuilder() *Builder {
	return NewBuilderPrecision(DefaultPrecision)
}

// NewBuilderPrecision returns a Builder with a custom deduplication quantum.
func NewBuilderPrecision(precision float64) *Builder {
	return &Builder{
		precision: precision,
		keys:      make(map[[3]int64]uint32),
	}
}

// Intern returns the index for p, appending it to the vertex buffer only if
// no vertex with the same quantized coordinates exists yet.
func (b *Builder) Intern(p geom.Vec3) uint32 {
	key := [3]int64{
		int64(math.Round(p.X / b.precision)),
		int64(math.Round(p.Y / b.precision)),
		int64(math.Round(p.Z / b.precision)),
	}
	if idx, ok := b.keys[key]; ok {
		return idx
	}
	idx := uint32(len(b.mesh.Positions))
	b.mesh.Positions = append(b.mesh.Positions, p)
	b.keys[key] = idx
	return idx
}

// Triangle appends one triangle. Triangles with two or more identical
// indices are dropped: snapping a fine grid row onto a coarser boundary
// collapses vertices routinely, and the resulting degenerates carry no area.
func (b *Builder) Triangle(i0, i1, i2 uint32) {
	if i0 == i1 || i1 == i2 || i0 == i2 {
		return
	}
	b.mesh.Indices = append(b.mesh.Indices, i0, i1, i2)
}

// VertexCount returns the number of distinct vertices interned so far.
func (b *Builder) VertexCount() int {
	return len(b.mesh.Positions)
}

// Mesh finalizes the pass: computes smooth normals and returns the mesh.
// The builder must not be used afterwards.
func (b *Builder) Mesh() *Mesh {
	b.keys = nil
	b.mesh.ComputeNormals()
	return &b.mesh
}
