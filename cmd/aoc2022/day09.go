package main

import (
	"fmt"

	"github.com/Golzeb/aoc2022"
)

type ropeMove struct {
	dir   aoc.Direction
	steps int
}

func parseRopeMoves(lines []string) ([]ropeMove, error) {
	var moves []ropeMove
	for _, line := range lines {
		if line == "" {
			continue
		}
		f, err := aoc.Fields(line, 2)
		if err != nil {
			return nil, err
		}
		d, err := aoc.ParseDirection(f[0])
		if err != nil {
			return nil, err
		}
		n, err := aoc.ParseInt(f[1])
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("negative step count in %q", line)
		}
		moves = append(moves, ropeMove{d, n})
	}
	return moves, nil
}

// simulateRope moves the head of a rope with the given number of knots and
// returns the number of distinct positions visited by the tail.
func simulateRope(moves []ropeMove, knots int) int {
	rope := make([]aoc.Pt, knots)
	tail := &rope[knots-1]
	seen := map[aoc.Pt]bool{*tail: true}
	for _, m := range moves {
		for n := 0; n < m.steps; n++ {
			rope[0] = rope[0].Step(m.dir)
			for i := 1; i < knots; i++ {
				if rope[i].Touching(rope[i-1]) {
					break
				}
				rope[i] = rope[i].Toward(rope[i-1])
			}
			seen[*tail] = true
		}
	}
	return len(seen)
}

/*
want=13

R 4
U 4
L 3
D 1
R 4
D 1
L 5
R 2
*/
func (s solver) D9p1() any {
	return simulateRope(aoc.MustGet(parseRopeMoves(s.Lines())), 2)
}

/*
want=36

R 5
U 8
L 8
D 3
R 17
D 10
L 25
U 20
*/
func (s solver) D9p2() any {
	return simulateRope(aoc.MustGet(parseRopeMoves(s.Lines())), 10)
}
