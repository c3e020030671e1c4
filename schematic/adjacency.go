package schematic

import (
	"slices"

	"github.com/katalvlaran/lvschematic/grid"
)

// AdjacentNumbers returns the numbers around the marker cell (row, col)
// using the case-table resolver, sorted ascending.
//
// The rows above and below are each reduced to at most two values by
// windowRow. On the queried row the left and right cells are looked up
// independently; if (row, col) is itself inside a token, that token is
// reported once per side. Results
// are concatenated (above, left, right, below) and sorted; equal values
// are kept.
//
// Complexity: O(1), eight map lookups.
func (idx *Index) AdjacentNumbers(row, col int) []int {
	out := make([]int, 0, 4)
	out = append(out, idx.windowRow(row-1, col)...)
	if v, ok := idx.numbers[grid.Coord{Row: row, Col: col - 1}]; ok {
		out = append(out, v)
	}
	if v, ok := idx.numbers[grid.Coord{Row: row, Col: col + 1}]; ok {
		out = append(out, v)
	}
	out = append(out, idx.windowRow(row+1, col)...)
	slices.Sort(out)

	return out
}

// windowRow inspects the left, center and right cells of a neighbor row.
// An occupied center shares its token with any occupied edge, since
// contiguous digits always form a single token.
//
//	L C R  -> L      L . R  -> L, R
//	L C .  -> L      L . .  -> L
//	. C R  -> R      . . R  -> R
//	. C .  -> C      . . .  -> (none)
func (idx *Index) windowRow(row, col int) []int {
	l, hasL := idx.numbers[grid.Coord{Row: row, Col: col - 1}]
	c, hasC := idx.numbers[grid.Coord{Row: row, Col: col}]
	r, hasR := idx.numbers[grid.Coord{Row: row, Col: col + 1}]

	switch {
	case hasL && hasC:
		return []int{l}
	case hasC && hasR:
		return []int{r}
	case hasL && hasR:
		return []int{l, r}
	case hasL:
		return []int{l}
	case hasR:
		return []int{r}
	case hasC:
		return []int{c}
	}
	return nil
}

// AdjacentTokens returns the values of the distinct tokens occupying any
// of the 8 cells around (row, col), sorted ascending. Hits are collapsed
// by token identity, so a wide token counts once and two different tokens
// with the same value count twice.
//
// Complexity: O(1), eight map lookups.
func (idx *Index) AdjacentTokens(row, col int) []int {
	seen := make(map[int]struct{}, 4)
	out := make([]int, 0, 4)
	for n := range idx.grid.Neighbors(grid.Coord{Row: row, Col: col}, grid.Conn8) {
		id, ok := idx.owners[n]
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, idx.tokens[id].Value)
	}
	slices.Sort(out)

	return out
}

// Adjacent dispatches to the resolver selected by d.
func (idx *Index) Adjacent(at grid.Coord, d Dedup) []int {
	if d == DedupIdentity {
		return idx.AdjacentTokens(at.Row, at.Col)
	}
	return idx.AdjacentNumbers(at.Row, at.Col)
}
