// Package mesh holds the generated triangle mesh and the vertex
// deduplication table used while assembling it.
package mesh

import (
	"fmt"

	"github.com/nrayamajhee/globemesh/pkg/geom"
)

// Mesh is the output of one generation pass: a vertex position buffer, a
// triangle index buffer (CCW viewed from outside) and per-vertex normals.
// The caller owns it after generation.
type Mesh struct {
	Positions []geom.Vec3
	Normals   []geom.Vec3
	Indices   []uint32
}

// Stats summarizes a mesh for logging and the CLI info command.
type Stats struct {
	Vertices  int
	Triangles int
	Min       geom.Vec3
	Max       geom.Vec3
}

// Stats returns vertex/triangle counts and the axis-aligned bounds.
func (m *Mesh) Stats() Stats {
	s := Stats{
		Vertices:  len(m.Positions),
		Triangles: len(m.Indices) / 3,
	}
	if len(m.Positions) == 0 {
		return s
	}
	s.Min = m.Positions[0]
	s.Max = m.Positions[0]
	for _, p := range m.Positions[1:] {
		if p.X < s.Min.X {
			s.Min.X = p.X
		}
		if p.Y < s.Min.Y {
			s.Min.Y = p.Y
		}
		if p.Z < s.Min.Z {
			s.Min.Z = p.Z
		}
		if p.X > s.Max.X {
			s.Max.X = p.X
		}
		if p.Y > s.Max.Y {
			s.Max.Y = p.Y
		}
		if p.Z > s.Max.Z {
			s.Max.Z = p.Z
		}
	}
	return s
}

// Validate checks that every index references an existing vertex and that
// the index buffer holds whole triangles.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	n := uint32(len(m.Positions))
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("index %d at position %d out of range (vertex count %d)", idx, i, n)
		}
	}
	return nil
}

// ComputeNormals derives smooth per-vertex normals by accumulating the face
// normal of every triangle touching each vertex and normalizing the sum.
// Any existing normals are replaced.
func (m *Mesh) ComputeNormals() {
	m.Normals = make([]geom.Vec3, len(m.Positions))

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		p0 := m.Positions[i0]
		e1 := m.Positions[i1].Sub(p0)
		e2 := m.Positions[i2].Sub(p0)
		n := e1.Cross(e2).Normalize()

		m.Normals[i0] = m.Normals[i0].Add(n)
		m.Normals[i1] = m.Normals[i1].Add(n)
		m.Normals[i2] = m.Normals[i2].Add(n)
	}

	for i := range m.Normals {
		m.Normals[i] = m.Normals[i].Normalize()
	}
}

// InterleavedF32 returns positions and normals interleaved as
// [px py pz nx ny nz ...] float32 for GPU upload.
func (m *Mesh) InterleavedF32() []float32 {
	out := make([]float32, 0, len(m.Positions)*6)
	for i, p := range m.Positions {
		out = append(out, float32(p.X), float32(p.Y), float32(p.Z))
		if i < len(m.Normals) {
			n := m.Normals[i]
			out = append(out, float32(n.X), float32(n.Y), float32(n.Z))
		} else {
			out = append(out, 0, 1, 0)
		}
	}
	return out
}

// PositionsF32 returns the vertex positions as a flat float32 sequence.
func (m *Mesh) PositionsF32() []float32 {
	out := make([]float32, 0, len(m.Positions)*3)
	for _, p := range m.Positions {
		out = append(out, float32(p.X), float32(p.Y), float32(p.Z))
	}
	return out
}
