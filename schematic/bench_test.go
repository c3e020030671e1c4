package schematic_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvschematic/schematic"
)

// randomSchematic builds an n×n grid of digits, '.', '*' and '#'.
func randomSchematic(n int) []string {
	r := rand.New(rand.NewSource(42))
	const alphabet = "0123456789....................*#"
	lines := make([]string, n)
	for y := 0; y < n; y++ {
		row := make([]byte, n)
		for x := range row {
			row[x] = alphabet[r.Intn(len(alphabet))]
		}
		lines[y] = string(row)
	}
	return lines
}

// BenchmarkGearRatioSum measures a full pass on a 500×500 grid.
// Complexity: O(W×H)
func BenchmarkGearRatioSum(b *testing.B) {
	lines := randomSchematic(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := schematic.GearRatioSum(lines); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGearRatioSum_Identity measures the identity resolver on the same grid.
func BenchmarkGearRatioSum_Identity(b *testing.B) {
	lines := randomSchematic(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := schematic.GearRatioSum(lines, schematic.WithDedup(schematic.DedupIdentity)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNewIndex measures index construction alone.
func BenchmarkNewIndex(b *testing.B) {
	lines := randomSchematic(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := schematic.NewIndex(lines); err != nil {
			b.Fatal(err)
		}
	}
}
