// Package export writes generated meshes to interchange formats.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/nrayamajhee/globemesh/pkg/mesh"
)

// WriteOBJ writes the mesh as Wavefront OBJ with positions, normals, and
// triangle faces. OBJ indices are 1-based.
func WriteOBJ(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", len(m.Positions), len(m.Indices)/3)

	for _, p := range m.Positions {
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	for _, n := range m.Normals {
		fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
	}

	hasNormals := len(m.Normals) == len(m.Positions)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Indices[i] + 1
		b := m.Indices[i+1] + 1
		c := m.Indices[i+2] + 1
		if hasNormals {
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
		} else {
			fmt.Fprintf(bw, "f %d %d %d\n", a, b, c)
		}
	}

	return bw.Flush()
}

// Save writes the mesh to a file in the given format ("obj" or "stl").
func Save(path, format string, m *mesh.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer f.Close()

	switch format {
	case "obj":
		err = WriteOBJ(f, m)
	case "stl":
		err = WriteSTL(f, m)
	default:
		err = fmt.Errorf("export: unknown format %q", format)
	}
	if err != nil {
		return err
	}
	return f.Close()
}
