package schematic

import (
	"math/big"
	"slices"

	"go.uber.org/zap"
)

// Gears returns every marker equal to the qualifying symbol that has
// exactly two adjacent numbers, in row-major order.
func (idx *Index) Gears(opts ...Option) ([]Gear, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return idx.gears(o), nil
}

func (idx *Index) gears(o Options) []Gear {
	var gears []Gear
	for _, m := range idx.markers {
		if m.Char != o.Symbol {
			continue
		}
		nums := idx.Adjacent(m.At, o.Dedup)
		if len(nums) != 2 {
			o.Logger.Debug("marker skipped",
				zap.Stringer("at", m.At),
				zap.Ints("adjacent", nums))
			continue
		}
		ratio := new(big.Int).Mul(big.NewInt(int64(nums[0])), big.NewInt(int64(nums[1])))
		g := Gear{At: m.At, Numbers: [2]int{nums[0], nums[1]}, Ratio: ratio}
		o.Logger.Debug("gear found",
			zap.Stringer("at", g.At),
			zap.Int("left", g.Numbers[0]),
			zap.Int("right", g.Numbers[1]),
			zap.Stringer("ratio", g.Ratio))
		gears = append(gears, g)
	}

	return gears
}

// GearRatios builds an Index from lines and returns the product of every
// gear's two numbers, sorted ascending. Products are exact at any size.
// Returns ErrOptionViolation for invalid options and ErrMalformedNumber
// (wrapped with the offending line) for unparsable input.
func GearRatios(lines []string, opts ...Option) ([]*big.Int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	idx, err := NewIndex(lines)
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("index built",
		zap.Int("rows", idx.grid.Height),
		zap.Int("width", idx.grid.Width),
		zap.Int("tokens", len(idx.tokens)),
		zap.Int("markers", len(idx.markers)),
		zap.Stringer("dedup", o.Dedup))

	gears := idx.gears(o)
	ratios := make([]*big.Int, 0, len(gears))
	for _, g := range gears {
		ratios = append(ratios, g.Ratio)
	}
	slices.SortFunc(ratios, (*big.Int).Cmp)

	return ratios, nil
}

// GearRatioSum returns the exact sum of GearRatios. An empty input sums to 0.
func GearRatioSum(lines []string, opts ...Option) (*big.Int, error) {
	ratios, err := GearRatios(lines, opts...)
	if err != nil {
		return nil, err
	}
	sum := new(big.Int)
	for _, r := range ratios {
		sum.Add(sum, r)
	}
	return sum, nil
}
