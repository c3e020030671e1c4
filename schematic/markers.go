package schematic

import "iter"

// IsMarker reports whether c is ASCII punctuation other than '.'.
// ASCII punctuation is the four ranges '!'-'/', ':'-'@', '['-'`' and '{'-'~'.
func IsMarker(c byte) bool {
	if c == '.' {
		return false
	}
	return ('!' <= c && c <= '/') ||
		(':' <= c && c <= '@') ||
		('[' <= c && c <= '`') ||
		('{' <= c && c <= '~')
}

// Markers lazily yields (column, char) for every marker in line.
// All marker characters are reported; callers filter for a specific symbol.
// Complexity: O(len(line)).
func Markers(line string) iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for col := 0; col < len(line); col++ {
			if IsMarker(line[col]) && !yield(col, line[col]) {
				return
			}
		}
	}
}
