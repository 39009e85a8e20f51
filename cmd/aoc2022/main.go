// Command aoc2022 solves the first ten days of Advent of Code 2022.
//
// Each day is independent: it gets its own input and shares no state with
// the other days. Every part is first checked against the sample in its doc
// comment, then run on the real input.
package main

import (
	"embed"

	"github.com/Golzeb/aoc2022"
)

func main() {
	aoc.Run(2022, source, &solver{})
}

//go:embed day01.go day02.go day03.go day04.go day05.go day06.go day07.go day08.go day09.go day10.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}
