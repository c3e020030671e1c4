// Package lvschematic is an engine-schematic analyzer: it reads a grid of
// digits, periods and symbols and reports how the numbers relate to the
// symbols around them.
//
// What is in the box?
//
//	grid/           Coord, Conn4/Conn8 neighbor offsets, bounds on ragged lines
//	schematic/      tokenizer, marker scanner, coordinate index, adjacency
//	                resolvers, gear-ratio and part-number aggregation
//	config/         YAML configuration for the CLI
//	cmd/schematic/  `schematic gears` and `schematic parts`
//
// Quick ASCII example:
//
//	467..
//	...*.
//	..35.
//
// The '*' touches 467 (diagonally) and 35 (below), so it is a gear with
// ratio 467 × 35 = 16345.
//
//	go install github.com/katalvlaran/lvschematic/cmd/schematic@latest
package lvschematic
