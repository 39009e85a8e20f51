package main

import (
	"fmt"

	"github.com/Golzeb/aoc2022"
)

// parseElves returns the calories carried by each elf. Elves are separated
// by blank lines; the last one needs no trailing blank line.
func parseElves(lines []string) ([][]int, error) {
	var elves [][]int
	var cur []int
	for i, line := range lines {
		if line == "" {
			if cur != nil {
				elves = append(elves, cur)
				cur = nil
			}
			continue
		}
		v, err := aoc.ParseInt(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		cur = append(cur, v)
	}
	if cur != nil {
		elves = append(elves, cur)
	}
	return elves, nil
}

// topCalories returns the sum of the n largest elf totals.
func topCalories(elves [][]int, n int) int {
	pq := aoc.MaxQueue[int]()
	for i, e := range elves {
		pq.Push(&aoc.PQI[int]{V: i, P: aoc.Sum(e...)})
	}
	total := 0
	for ; n > 0 && pq.Len() > 0; n-- {
		total += pq.Pop().P
	}
	return total
}

/*
want=24000

1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
*/
func (s solver) D1p1() any {
	elves := aoc.MustGet(parseElves(s.Lines()))
	return topCalories(elves, 1)
}

// want=45000
func (s solver) D1p2() any {
	elves := aoc.MustGet(parseElves(s.Lines()))
	s.Debugf("%d elves", len(elves))
	return topCalories(elves, 3)
}
