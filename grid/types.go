package grid

import "fmt"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Coord addresses a single cell by 0-based row and column.
type Coord struct {
	Row, Col int
}

// Translate returns the coordinate shifted by (dr, dc).
func (c Coord) Translate(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// String formats the coordinate as "row,col".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Grid is an immutable view over a slice of lines.
// Height is the number of rows; Width is the length of the longest row.
type Grid struct {
	Height, Width int
	rows          []string
}
