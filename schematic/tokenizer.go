package schematic

import (
	"fmt"
	"iter"
	"strconv"
)

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// Tokens lazily yields the maximal digit runs of line, left to right.
// Row and ID are left zero; NewIndex assigns them.
// A run that does not parse as an int yields ErrMalformedNumber and ends
// the sequence.
// Complexity: O(len(line)).
func Tokens(line string) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for i := 0; i < len(line); {
			if !isDigit(line[i]) {
				i++
				continue
			}
			j := i + 1
			for j < len(line) && isDigit(line[j]) {
				j++
			}
			v, err := strconv.Atoi(line[i:j])
			if err != nil {
				yield(Token{}, fmt.Errorf("%w: %q at column %d: %v", ErrMalformedNumber, line[i:j], i, err))
				return
			}
			if !yield(Token{Value: v, Start: i, End: j}, nil) {
				return
			}
			i = j
		}
	}
}
