package grid

import "iter"

// offsets are (dRow, dCol) pairs in clockwise order starting at N.
var (
	conn4Offsets = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	conn8Offsets = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// Offsets returns the (dRow, dCol) neighbor offsets for conn.
// The returned slice is shared and must not be modified.
// Complexity: O(1).
func Offsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return conn8Offsets
	}
	return conn4Offsets
}

// NewGrid wraps lines without copying them. An empty slice yields an
// empty grid (Height == 0) for which InBounds is always false.
// Complexity: O(H).
func NewGrid(lines []string) *Grid {
	w := 0
	for _, line := range lines {
		if len(line) > w {
			w = len(line)
		}
	}
	return &Grid{Height: len(lines), Width: w, rows: lines}
}

// InBounds reports whether c lies within the grid, using the length of
// c's own row.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < len(g.rows[c.Row])
}

// Neighbors yields the in-bounds neighbors of c under conn, in the order
// given by Offsets. c itself is never yielded.
// Complexity: O(d).
func (g *Grid) Neighbors(c Coord, conn Connectivity) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for _, d := range Offsets(conn) {
			n := c.Translate(d[0], d[1])
			if !g.InBounds(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}
