package schematic

import (
	"errors"
	"math/big"

	"github.com/katalvlaran/lvschematic/grid"
)

// Sentinel errors for schematic operations.
var (
	// ErrMalformedNumber indicates a digit run that does not parse as an int.
	ErrMalformedNumber = errors.New("schematic: malformed number")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("schematic: invalid option supplied")
)

// DefaultSymbol is the marker character that qualifies a gear.
const DefaultSymbol byte = '*'

// Token is a maximal run of decimal digits on one row.
// The span is [Start, End): Start inclusive, End exclusive.
// ID is the token's ordinal within its Index and identifies it uniquely.
type Token struct {
	ID    int
	Value int
	Row   int
	Start int
	End   int
}

// Width returns the number of columns the token occupies.
func (t Token) Width() int { return t.End - t.Start }

// Marker is a single-cell symbol.
type Marker struct {
	Char byte
	At   grid.Coord
}

// Gear is a qualifying marker with exactly two adjacent numbers.
// Numbers is sorted ascending; Ratio is their exact product.
type Gear struct {
	At      grid.Coord
	Numbers [2]int
	Ratio   *big.Int
}
