// Package clipmap builds axis-aligned quad grids whose border cells can be
// stitched down to a neighbor at half density, plus nested rings of such
// grids for clipmap-style terrain. Stitching never changes which vertices
// exist, only which ones the index buffer connects.
package clipmap

import (
	"fmt"

	"github.com/nrayamajhee/globemesh/pkg/geom"
)

// Edge identifies one side of a grid.
type Edge int

const (
	EdgeTop    Edge = iota // cells at y = 0
	EdgeBottom             // cells at y = segments-1
	EdgeLeft               // cells at x = 0
	EdgeRight              // cells at x = segments-1
)

// Rect is a half-open cell-coordinate rectangle: x in [X0, X1), y in [Y0, Y1).
type Rect struct {
	X0, Y0, X1, Y1 int
}

func (r Rect) contains(x, y int) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

// Config describes one grid.
type Config struct {
	// Segments is the cell count per side. Even and >= 4, so stitched
	// border cells pair up and the 2x2 corner blocks fit.
	Segments int

	// CellSize is the world-space cell edge length.
	CellSize float64

	// Center positions the grid in the XZ plane (Y up).
	Center geom.Vec3

	// Stitch holds the density ratio against the neighbor on each edge,
	// indexed by Edge. 1 means same density, 2 means this grid is twice
	// as dense and its border connects only every other boundary vertex.
	// The corner patterns support no other ratios.
	Stitch [4]int

	// Hole optionally carves a rectangle out of the grid: cells fully
	// inside are skipped in both the interior and stitching passes.
	Hole *Rect
}

// Validate reports the first precondition violation, or nil.
func (c Config) Validate() error {
	if c.Segments < 4 || c.Segments%2 != 0 {
		return fmt.Errorf("clipmap: segments must be even and >= 4, got %d", c.Segments)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("clipmap: cell size must be > 0, got %v", c.CellSize)
	}
	for e, ratio := range c.Stitch {
		if ratio != 1 && ratio != 2 {
			return fmt.Errorf("clipmap: edge %d stitch ratio must be 1 or 2, got %d", e, ratio)
		}
	}
	if h := c.Hole; h != nil {
		if h.X0 >= h.X1 || h.Y0 >= h.Y1 {
			return fmt.Errorf("clipmap: empty hole rect %+v", *h)
		}
		if h.X0 < 0 || h.Y0 < 0 || h.X1 > c.Segments || h.Y1 > c.Segments {
			return fmt.Errorf("clipmap: hole %+v outside grid of %d segments", *h, c.Segments)
		}
	}
	return nil
}

// Grid is one built grid: the full dense vertex lattice and the index
// buffer connecting it. Vertices skipped by stitching or holes stay in the
// buffer unreferenced.
type Grid struct {
	Segments  int
	Positions []geom.Vec3
	Indices   []uint32
}

// vertex returns the lattice index of corner (x, y), x and y in [0, segments].
func (g *Grid) vertex(x, y int) uint32 {
	return uint32(y*(g.Segments+1) + x)
}

// Build generates the grid. The vertex lattice is always complete; the
// stitch configuration and hole only decide connectivity. Triangles wind
// CCW viewed from +Y.
func Build(cfg Config) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := cfg.Segments
	g := &Grid{Segments: n}

	half := float64(n) / 2
	g.Positions = make([]geom.Vec3, 0, (n+1)*(n+1))
	for y := 0; y <= n; y++ {
		for x := 0; x <= n; x++ {
			g.Positions = append(g.Positions, geom.Vec3{
				X: cfg.Center.X + (float64(x)-half)*cfg.CellSize,
				Y: cfg.Center.Y,
				Z: cfg.Center.Z + (float64(y)-half)*cfg.CellSize,
			})
		}
	}

	b := gridBuilder{grid: g, cfg: cfg}
	b.interior()
	b.edgeStrips()
	b.corners()

	return g, nil
}

// gridBuilder accumulates connectivity for one Build call.
type gridBuilder struct {
	grid *Grid
	cfg  Config
}

func (b *gridBuilder) stitched(e Edge) bool {
	return b.cfg.Stitch[e] == 2
}

func (b *gridBuilder) inHole(x, y int) bool {
	return b.cfg.Hole != nil && b.cfg.Hole.contains(x, y)
}

// inCorner reports whether cell (x, y) belongs to one of the 2x2 corner
// blocks handled by the corner pattern table.
func (b *gridBuilder) inCorner(x, y int) bool {
	n := b.cfg.Segments
	return (x < 2 || x >= n-2) && (y < 2 || y >= n-2)
}

func (b *gridBuilder) tri(a, c, d uint32) {
	b.grid.Indices = append(b.grid.Indices, a, c, d)
}

// cell emits the standard two-triangle tessellation of cell (x, y).
func (b *gridBuilder) cell(x, y int) {
	if b.inHole(x, y) {
		return
	}
	g := b.grid
	p00 := g.vertex(x, y)
	p10 := g.vertex(x+1, y)
	p01 := g.vertex(x, y+1)
	p11 := g.vertex(x+1, y+1)
	b.tri(p00, p01, p10)
	b.tri(p10, p01, p11)
}

// interior fills everything except the 1-cell border and corner blocks.
func (b *gridBuilder) interior() {
	n := b.cfg.Segments
	for y := 1; y < n-1; y++ {
		for x := 1; x < n-1; x++ {
			if b.inCorner(x, y) {
				continue
			}
			b.cell(x, y)
		}
	}
}

// edgeStrips fills the border cells between the corner blocks: a 3-triangle
// fan per cell pair on stitched edges, plain cells otherwise.
func (b *gridBuilder) edgeStrips() {
	n := b.cfg.Segments
	for c := 2; c < n-2; c++ {
		if !b.stitched(EdgeTop) {
			b.cell(c, 0)
		}
		if !b.stitched(EdgeBottom) {
			b.cell(c, n-1)
		}
		if !b.stitched(EdgeLeft) {
			b.cell(0, c)
		}
		if !b.stitched(EdgeRight) {
			b.cell(n-1, c)
		}
	}

	for c := 2; c < n-2; c += 2 {
		if b.stitched(EdgeTop) && !(b.inHole(c, 0) && b.inHole(c+1, 0)) {
			b.fanTop(c)
		}
		if b.stitched(EdgeBottom) && !(b.inHole(c, n-1) && b.inHole(c+1, n-1)) {
			b.fanBottom(c)
		}
		if b.stitched(EdgeLeft) && !(b.inHole(0, c) && b.inHole(0, c+1)) {
			b.fanLeft(c)
		}
		if b.stitched(EdgeRight) && !(b.inHole(n-1, c) && b.inHole(n-1, c+1)) {
			b.fanRight(c)
		}
	}
}

// fanTop connects the coarse 2-span (x..x+2, 0) to the fine 3-span at
// row 1. The three fans below mirror it for the other edges; winding stays
// CCW from +Y on every side.
func (b *gridBuilder) fanTop(x int) {
	g := b.grid
	a0, a2 := g.vertex(x, 0), g.vertex(x+2, 0)
	f0, f1, f2 := g.vertex(x, 1), g.vertex(x+1, 1), g.vertex(x+2, 1)
	b.tri(a0, f0, f1)
	b.tri(a0, f1, a2)
	b.tri(a2, f1, f2)
}

func (b *gridBuilder) fanBottom(x int) {
	g, n := b.grid, b.cfg.Segments
	a0, a2 := g.vertex(x, n), g.vertex(x+2, n)
	f0, f1, f2 := g.vertex(x, n-1), g.vertex(x+1, n-1), g.vertex(x+2, n-1)
	b.tri(a0, f1, f0)
	b.tri(a0, a2, f1)
	b.tri(a2, f2, f1)
}

func (b *gridBuilder) fanLeft(y int) {
	g := b.grid
	a0, a2 := g.vertex(0, y), g.vertex(0, y+2)
	f0, f1, f2 := g.vertex(1, y), g.vertex(1, y+1), g.vertex(1, y+2)
	b.tri(a0, f1, f0)
	b.tri(a0, a2, f1)
	b.tri(a2, f2, f1)
}

func (b *gridBuilder) fanRight(y int) {
	g, n := b.grid, b.cfg.Segments
	a0, a2 := g.vertex(n, y), g.vertex(n, y+2)
	f0, f1, f2 := g.vertex(n-1, y), g.vertex(n-1, y+1), g.vertex(n-1, y+2)
	b.tri(a0, f0, f1)
	b.tri(a0, f1, a2)
	b.tri(a2, f1, f2)
}
