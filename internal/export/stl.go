package export

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/nrayamajhee/globemesh/pkg/mesh"
)

const stlHeaderSize = 80

// WriteSTL writes the mesh as binary STL. Facet normals are recomputed
// per triangle since STL carries no shared vertices.
func WriteSTL(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)

	var header [stlHeaderSize]byte
	copy(header[:], "globemesh binary STL")
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}

	count := uint32(len(m.Indices) / 3)
	if err := binary.Write(bw, binary.LittleEndian, count); err != nil {
		return err
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		p0 := m.Positions[m.Indices[i]]
		p1 := m.Positions[m.Indices[i+1]]
		p2 := m.Positions[m.Indices[i+2]]

		n := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()

		facet := [12]float32{
			float32(n.X), float32(n.Y), float32(n.Z),
			float32(p0.X), float32(p0.Y), float32(p0.Z),
			float32(p1.X), float32(p1.Y), float32(p1.Z),
			float32(p2.X), float32(p2.Y), float32(p2.Z),
		}
		if err := binary.Write(bw, binary.LittleEndian, facet); err != nil {
			return err
		}
		// Attribute byte count, unused.
		if err := binary.Write(bw, binary.LittleEndian, uint16(0)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadSTLTriangleCount reads the facet count from a binary STL stream.
// Used to sanity-check exports without parsing every facet.
func ReadSTLTriangleCount(r io.Reader) (uint32, error) {
	var header [stlHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, err
	}
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return 0, err
	}
	return count, nil
}
