package schematic_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvschematic/schematic"
)

// engineSchematic is the 10×10 reference grid.
const engineSchematic = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..`

func engineLines() []string {
	return strings.Split(engineSchematic, "\n")
}

func mustIndex(t *testing.T, lines ...string) *schematic.Index {
	t.Helper()
	idx, err := schematic.NewIndex(lines)
	require.NoError(t, err)
	return idx
}

// assertBig compares an exact integer against its decimal form.
func assertBig(t *testing.T, want string, got *big.Int, msgAndArgs ...interface{}) {
	t.Helper()
	require.NotNil(t, got, msgAndArgs...)
	assert.Equal(t, want, got.String(), msgAndArgs...)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
