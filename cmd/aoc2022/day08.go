package main

import (
	"fmt"
	"slices"

	"github.com/Golzeb/aoc2022"
)

func parseForest(lines []string) (aoc.Grid[int], error) {
	g, err := aoc.ParseGrid(nonEmpty(lines), func(r rune) (int, error) {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("bad height %q", r)
		}
		return aoc.Digit(r), nil
	})
	if err != nil {
		return nil, err
	}
	if len(g) == 0 {
		return nil, fmt.Errorf("empty forest")
	}
	return g, nil
}

// countVisible returns the number of trees visible from outside the grid.
// Each edge cell looks inward along its row or column, keeping the tallest
// height seen so far.
func countVisible(g aoc.Grid[int]) int {
	visible := map[aoc.Pt]bool{}
	for _, p := range g.EdgePaths() {
		tallest := -1
		for ok := true; ok; p, ok = g.Move(p) {
			h := g.At(p.Pt)
			if h > tallest {
				visible[p.Pt] = true
				tallest = h
				if h == 9 {
					break
				}
			}
		}
	}
	return len(visible)
}

// viewingDistance counts the trees seen from p looking in dir d, stopping
// at the first one at least as tall as p or at the edge.
func viewingDistance(g aoc.Grid[int], p aoc.Pt, d aoc.Direction) int {
	h := g.At(p)
	n := 0
	path := aoc.Path{Pt: p, Dir: d}
	for {
		var ok bool
		if path, ok = g.Move(path); !ok {
			return n
		}
		n++
		if g.At(path.Pt) >= h {
			return n
		}
	}
}

func scenicScore(g aoc.Grid[int], p aoc.Pt) int {
	score := 1
	for _, d := range aoc.Directions {
		score *= viewingDistance(g, p, d)
	}
	return score
}

// bestScenicScore scores every row in parallel and returns the best tree.
func bestScenicScore(g aoc.Grid[int]) int {
	size := g.Size()
	rows := make([]int, size.Y)
	for y := range rows {
		rows[y] = y
	}
	best := aoc.Parallel(rows, func(y int) int {
		m := 0
		for x := 0; x < size.X; x++ {
			m = max(m, scenicScore(g, aoc.Pt{X: x, Y: y}))
		}
		return m
	})
	return slices.Max(best)
}

/*
want=21

30373
25512
65332
33549
35390
*/
func (s solver) D8p1() any {
	return countVisible(aoc.MustGet(parseForest(s.Lines())))
}

// want=8
func (s solver) D8p2() any {
	g := aoc.MustGet(parseForest(s.Lines()))
	s.Debugf("forest %v size %v", g.Hash(), g.Size())
	return bestScenicScore(g)
}
