// Package schematic finds numbers on an engine schematic, a 2D grid of
// ASCII characters, and relates them to the symbols around them.
//
// What:
//
//   - Tokens scans a line for maximal runs of decimal digits.
//   - Markers scans a line for symbol characters (ASCII punctuation other than '.').
//   - Index projects every token onto each cell it spans and records every
//     marker by cell, so adjacency becomes a set of map lookups.
//   - AdjacentNumbers/AdjacentTokens resolve the numbers touching a marker
//     through its 8 neighboring cells.
//   - GearRatios/GearRatioSum multiply the two numbers of every gear (a
//     qualifying marker, '*' by default, with exactly two adjacent numbers)
//     and sum the products.
//   - PartNumbers/PartNumberSum sum every number touching any marker.
//
// Adjacency modes:
//
//   - DedupCaseTable (default): rows above and below a marker are
//     inspected as a left/center/right window and merged by a fixed table;
//     the marker's own row uses raw left and right lookups. At a marker
//     cell both resolvers agree, since contiguous digits always form one
//     token and the marker splits its own row. Queried at a digit cell,
//     the case table may report the surrounding token twice.
//   - DedupIdentity collapses hits by token identity across all 8 cells
//     and never double-counts. It is opt-in.
//
// Complexity:
//
//   - NewIndex:     O(total characters), Memory: O(digit cells + markers).
//   - GearRatioSum: O(markers) lookups after the index is built.
//
// Errors:
//
//   - ErrMalformedNumber: a digit run could not be parsed (e.g. overflow).
//   - ErrOptionViolation: an invalid Option was supplied.
//
// Products and sums are exact *big.Int values. An empty input is not an
// error; every sum over it is 0.
package schematic
