package main

import (
	"fmt"

	"github.com/Golzeb/aoc2022"
)

type shape int

const (
	rock shape = iota
	paper
	scissors
)

// score is the value of playing the shape.
func (s shape) score() int { return int(s) + 1 }

// beats returns the shape that s defeats.
func (s shape) beats() shape { return (s + 2) % 3 }

// loses returns the shape that defeats s.
func (s shape) loses() shape { return (s + 1) % 3 }

type outcome int

const (
	lose outcome = 0
	draw outcome = 3
	win  outcome = 6
)

func play(opponent, me shape) outcome {
	switch {
	case me == opponent:
		return draw
	case me.beats() == opponent:
		return win
	}
	return lose
}

// choose returns the shape to play against opponent to get o.
func choose(opponent shape, o outcome) shape {
	switch o {
	case win:
		return opponent.loses()
	case lose:
		return opponent.beats()
	}
	return opponent
}

type round struct {
	opponent shape
	// col is the second column: 0, 1 or 2 for X, Y or Z.
	col int
}

func parseRounds(lines []string) ([]round, error) {
	rounds := make([]round, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		f, err := aoc.Fields(line, 2)
		if err != nil {
			return nil, err
		}
		if len(f[0]) != 1 || f[0][0] < 'A' || f[0][0] > 'C' {
			return nil, fmt.Errorf("bad opponent move %q", f[0])
		}
		if len(f[1]) != 1 || f[1][0] < 'X' || f[1][0] > 'Z' {
			return nil, fmt.Errorf("bad strategy %q", f[1])
		}
		rounds = append(rounds, round{
			opponent: shape(f[0][0] - 'A'),
			col:      int(f[1][0] - 'X'),
		})
	}
	return rounds, nil
}

// scoreAsShapes reads the second column as the shape to play.
func scoreAsShapes(rounds []round) int {
	return aoc.Fold(rounds, func(total int, r round) int {
		me := shape(r.col)
		return total + me.score() + int(play(r.opponent, me))
	}, 0)
}

// scoreAsOutcomes reads the second column as the outcome to reach.
func scoreAsOutcomes(rounds []round) int {
	return aoc.Fold(rounds, func(total int, r round) int {
		o := outcome(r.col * 3)
		return total + choose(r.opponent, o).score() + int(o)
	}, 0)
}

/*
want=15

A Y
B X
C Z
*/
func (s solver) D2p1() any {
	return scoreAsShapes(aoc.MustGet(parseRounds(s.Lines())))
}

// want=12
func (s solver) D2p2() any {
	return scoreAsOutcomes(aoc.MustGet(parseRounds(s.Lines())))
}
