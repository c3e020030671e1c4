package schematic

import (
	"fmt"
	"maps"

	"github.com/katalvlaran/lvschematic/grid"
)

// Index holds the two coordinate maps of a schematic: token value by
// cell and marker character by cell. Every cell of a token's span maps to
// the same value and the same token ID. An Index is immutable once built.
type Index struct {
	grid    *grid.Grid
	numbers map[grid.Coord]int
	owners  map[grid.Coord]int
	symbols map[grid.Coord]byte
	tokens  []Token
	markers []Marker
}

// NewIndex scans every line with Tokens and Markers and builds both maps.
// The lines are not copied. A digit run that fails to parse aborts the
// build with an error wrapping ErrMalformedNumber and naming the 1-based
// line. An empty slice yields an empty Index.
// Complexity: O(total characters).
func NewIndex(lines []string) (*Index, error) {
	idx := &Index{
		grid:    grid.NewGrid(lines),
		numbers: make(map[grid.Coord]int),
		owners:  make(map[grid.Coord]int),
		symbols: make(map[grid.Coord]byte),
	}
	for row, line := range lines {
		for tok, err := range Tokens(line) {
			if err != nil {
				return nil, fmt.Errorf("line %d %q: %w", row+1, line, err)
			}
			tok.Row = row
			tok.ID = len(idx.tokens)
			idx.tokens = append(idx.tokens, tok)
			for col := tok.Start; col < tok.End; col++ {
				c := grid.Coord{Row: row, Col: col}
				idx.numbers[c] = tok.Value
				idx.owners[c] = tok.ID
			}
		}
		for col, ch := range Markers(line) {
			c := grid.Coord{Row: row, Col: col}
			idx.symbols[c] = ch
			idx.markers = append(idx.markers, Marker{Char: ch, At: c})
		}
	}

	return idx, nil
}

// Grid returns the grid the index was built from.
func (idx *Index) Grid() *grid.Grid { return idx.grid }

// Tokens returns every token in row-major order. The slice is shared.
func (idx *Index) Tokens() []Token { return idx.tokens }

// Markers returns every marker in row-major order. The slice is shared.
func (idx *Index) Markers() []Marker { return idx.markers }

// Numbers returns a copy of the token-value-by-cell map.
func (idx *Index) Numbers() map[grid.Coord]int { return maps.Clone(idx.numbers) }

// Symbols returns a copy of the marker-by-cell map.
func (idx *Index) Symbols() map[grid.Coord]byte { return maps.Clone(idx.symbols) }

// NumberAt returns the value of the token covering c.
func (idx *Index) NumberAt(c grid.Coord) (int, bool) {
	v, ok := idx.numbers[c]
	return v, ok
}

// SymbolAt returns the marker character at c.
func (idx *Index) SymbolAt(c grid.Coord) (byte, bool) {
	ch, ok := idx.symbols[c]
	return ch, ok
}

// TokenAt returns the token covering c.
func (idx *Index) TokenAt(c grid.Coord) (Token, bool) {
	id, ok := idx.owners[c]
	if !ok {
		return Token{}, false
	}
	return idx.tokens[id], true
}
