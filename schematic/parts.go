package schematic

import (
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvschematic/grid"
)

// PartNumbers returns the value of every token with at least one cell
// 8-adjacent to any marker, in row-major order. Each token counts once.
// Complexity: O(digit cells × 8).
func (idx *Index) PartNumbers() []int {
	var parts []int
	for _, tok := range idx.tokens {
		if idx.touchesMarker(tok) {
			parts = append(parts, tok.Value)
		}
	}
	return parts
}

func (idx *Index) touchesMarker(tok Token) bool {
	for col := tok.Start; col < tok.End; col++ {
		for n := range idx.grid.Neighbors(grid.Coord{Row: tok.Row, Col: col}, grid.Conn8) {
			if _, ok := idx.symbols[n]; ok {
				return true
			}
		}
	}
	return false
}

// PartNumberSum builds an Index from lines and returns the exact sum of
// its PartNumbers. Only the Logger option is consulted; invalid options
// still fail.
func PartNumberSum(lines []string, opts ...Option) (*big.Int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	idx, err := NewIndex(lines)
	if err != nil {
		return nil, err
	}
	parts := idx.PartNumbers()
	o.Logger.Debug("part numbers resolved",
		zap.Int("tokens", len(idx.tokens)),
		zap.Int("parts", len(parts)))

	sum := new(big.Int)
	for _, p := range parts {
		sum.Add(sum, big.NewInt(int64(p)))
	}
	return sum, nil
}
