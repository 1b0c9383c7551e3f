package clipmap

// Corner triangulation patterns.
//
// Each 2x2 corner block of the grid is emitted from a fixed pattern chosen
// by whether its adjoining horizontal and vertical edges are stitched. The
// patterns are written once in local coordinates over the block's 3x3
// vertex lattice, with the corner at (0,0), the horizontal grid edge along
// j=0 and the vertical grid edge along i=0. A per-corner transform maps
// local points to lattice coordinates and reverses the triangle order when
// the transform mirrors.

// lpoint is a local lattice point of a corner block, i and j in [0, 2].
type lpoint struct {
	i, j int
}

// ltri is one triangle of a pattern, CCW from +Y in local space.
type ltri [3]lpoint

// cornerPattern identifies one of the four corner triangulations.
type cornerPattern uint8

const (
	cornerPlain      cornerPattern = iota // neither edge stitched
	cornerStitchH                         // only the horizontal edge
	cornerStitchV                         // only the vertical edge
	cornerStitchBoth                      // both edges
)

// cornerPatternTable maps the stitch bitmask (bit 0 = horizontal edge, bit
// 1 = vertical edge) to a pattern.
var cornerPatternTable = [4]cornerPattern{
	cornerPlain,
	cornerStitchH,
	cornerStitchV,
	cornerStitchBoth,
}

// quadCells emits the standard two triangles for local cells.
func quadCells(cells ...lpoint) []ltri {
	var out []ltri
	for _, c := range cells {
		out = append(out,
			ltri{{c.i, c.j}, {c.i, c.j + 1}, {c.i + 1, c.j}},
			ltri{{c.i + 1, c.j}, {c.i, c.j + 1}, {c.i + 1, c.j + 1}},
		)
	}
	return out
}

// cornerTriangles holds the triangle list per pattern.
var cornerTriangles = [4][]ltri{
	// cornerPlain: four standard cells.
	cornerPlain: quadCells(lpoint{0, 0}, lpoint{1, 0}, lpoint{0, 1}, lpoint{1, 1}),

	// cornerStitchH: the 3-triangle fan from the coarse 2-span at j=0 to
	// the fine row at j=1, plus standard cells for the rest of the block.
	cornerStitchH: append([]ltri{
		{{0, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 1}, {2, 0}},
		{{2, 0}, {1, 1}, {2, 1}},
	}, quadCells(lpoint{0, 1}, lpoint{1, 1})...),

	// cornerStitchV: mirrored fan against the vertical coarse 2-span at
	// i=0, plus standard cells for the rest.
	cornerStitchV: append([]ltri{
		{{0, 0}, {1, 1}, {1, 0}},
		{{0, 0}, {0, 2}, {1, 1}},
		{{0, 2}, {1, 2}, {1, 1}},
	}, quadCells(lpoint{1, 0}, lpoint{1, 1})...),

	// cornerStitchBoth: six triangles fanned around the block center,
	// skipping the two mid-edge vertices the coarse neighbors don't
	// have ((1,0) and (0,1)).
	cornerStitchBoth: {
		{{1, 1}, {2, 0}, {0, 0}},
		{{1, 1}, {2, 1}, {2, 0}},
		{{1, 1}, {2, 2}, {2, 1}},
		{{1, 1}, {1, 2}, {2, 2}},
		{{1, 1}, {0, 2}, {1, 2}},
		{{1, 1}, {0, 0}, {0, 2}},
	},
}

// cornerTransform maps local block coordinates to lattice coordinates for
// one grid corner. mirror marks transforms that flip orientation and
// therefore need their triangle order reversed.
type cornerTransform struct {
	hEdge, vEdge Edge
	mirror       bool
	mapPoint     func(n int, p lpoint) (x, y int)
}

// cornerTransforms covers the four grid corners. Together with the four
// patterns this realizes all 16 corner configurations.
var cornerTransforms = [4]cornerTransform{
	{EdgeTop, EdgeLeft, false, func(n int, p lpoint) (int, int) { return p.i, p.j }},
	{EdgeTop, EdgeRight, true, func(n int, p lpoint) (int, int) { return n - p.i, p.j }},
	{EdgeBottom, EdgeLeft, true, func(n int, p lpoint) (int, int) { return p.i, n - p.j }},
	{EdgeBottom, EdgeRight, false, func(n int, p lpoint) (int, int) { return n - p.i, n - p.j }},
}

// corners emits the four 2x2 corner blocks from the pattern table.
func (b *gridBuilder) corners() {
	n := b.cfg.Segments
	for _, tf := range cornerTransforms {
		// Skip a block only when the hole swallows it whole.
		cx, cy := tf.mapPoint(n, lpoint{0, 0})
		bx, by := cx, cy
		if bx == n {
			bx = n - 2
		}
		if by == n {
			by = n - 2
		}
		if b.inHole(bx, by) && b.inHole(bx+1, by) && b.inHole(bx, by+1) && b.inHole(bx+1, by+1) {
			continue
		}

		mask := 0
		if b.stitched(tf.hEdge) {
			mask |= 1
		}
		if b.stitched(tf.vEdge) {
			mask |= 2
		}
		for _, t := range cornerTriangles[cornerPatternTable[mask]] {
			x0, y0 := tf.mapPoint(n, t[0])
			x1, y1 := tf.mapPoint(n, t[1])
			x2, y2 := tf.mapPoint(n, t[2])
			if tf.mirror {
				x1, y1, x2, y2 = x2, y2, x1, y1
			}
			b.tri(b.grid.vertex(x0, y0), b.grid.vertex(x1, y1), b.grid.vertex(x2, y2))
		}
	}
}
