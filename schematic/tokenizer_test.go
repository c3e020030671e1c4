// File: schematic/tokenizer_test.go
package schematic_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvschematic/schematic"
)

func collectTokens(t *testing.T, line string) []schematic.Token {
	t.Helper()
	var toks []schematic.Token
	for tok, err := range schematic.Tokens(line) {
		require.NoError(t, err)
		toks = append(toks, tok)
	}
	return toks
}

func TestTokens_Spans(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []schematic.Token
	}{
		{"empty", "", nil},
		{"no digits", "...*..", nil},
		{"single", "..7..", []schematic.Token{{Value: 7, Start: 2, End: 3}}},
		{"line start and end", "467..114", []schematic.Token{
			{Value: 467, Start: 0, End: 3},
			{Value: 114, Start: 5, End: 8},
		}},
		{"split by symbol", "12*34", []schematic.Token{
			{Value: 12, Start: 0, End: 2},
			{Value: 34, Start: 3, End: 5},
		}},
		{"leading zeros", ".007.", []schematic.Token{{Value: 7, Start: 1, End: 4}}},
		{"whole line", "123456", []schematic.Token{{Value: 123456, Start: 0, End: 6}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collectTokens(t, tt.line))
		})
	}
}

// TestTokens_CoverEveryDigit checks that spans are disjoint, non-empty and
// cover every digit of every reference line exactly once.
func TestTokens_CoverEveryDigit(t *testing.T) {
	for _, line := range engineLines() {
		covered := make([]int, len(line))
		for _, tok := range collectTokens(t, line) {
			require.Greater(t, tok.Width(), 0)
			for col := tok.Start; col < tok.End; col++ {
				covered[col]++
			}
		}
		for col := 0; col < len(line); col++ {
			want := 0
			if isDigit(line[col]) {
				want = 1
			}
			assert.Equal(t, want, covered[col], "line %q col %d", line, col)
		}
	}
}

func TestTokens_Malformed(t *testing.T) {
	line := "1*" + strings.Repeat("9", 30)
	var (
		toks []schematic.Token
		errs []error
	)
	for tok, err := range schematic.Tokens(line) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		toks = append(toks, tok)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], schematic.ErrMalformedNumber)
	assert.Contains(t, errs[0].Error(), "column 2")
	assert.Equal(t, []schematic.Token{{Value: 1, Start: 0, End: 1}}, toks)
}

func TestTokens_EarlyStop(t *testing.T) {
	n := 0
	for range schematic.Tokens("1.2.3.4") {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}
