// Package grid provides the coordinate system shared by the schematic
// packages: a ragged 2D grid of ASCII lines addressed by (row, column).
//
// What:
//
//   - Coord names a single cell; rows and columns are 0-based.
//   - Grid wraps the input lines and answers bounds queries. Rows may have
//     differing lengths; a cell exists iff its column is inside its own row.
//   - Neighbors enumerates the 4- or 8-neighborhood of a cell, clipped to
//     the grid, in a fixed clockwise order starting at N.
//
// Why:
//
//   - Symbol adjacency: find every cell touching a marker, diagonals included.
//   - Token projection: a multi-column token is addressed per cell.
//
// Complexity:
//
//   - NewGrid:   O(H), Memory: O(H) (lines are shared, not copied).
//   - InBounds:  O(1).
//   - Neighbors: O(d), d = 4 or 8.
//
// Options:
//
//   - Conn4 (N, E, S, W) or Conn8 (adds the four diagonals).
package grid
