package main

import (
	"fmt"

	"github.com/Golzeb/aoc2022"
)

// sections is an inclusive range of section IDs.
type sections struct {
	lo, hi int
}

func (a sections) contains(b sections) bool {
	return a.lo <= b.lo && b.hi <= a.hi
}

func (a sections) overlaps(b sections) bool {
	return a.lo <= b.hi && b.lo <= a.hi
}

func parseSections(s string) (sections, error) {
	lo, hi, err := aoc.Cut(s, "-")
	if err != nil {
		return sections{}, err
	}
	var r sections
	if r.lo, err = aoc.ParseInt(lo); err != nil {
		return sections{}, err
	}
	if r.hi, err = aoc.ParseInt(hi); err != nil {
		return sections{}, err
	}
	if r.lo > r.hi {
		return sections{}, fmt.Errorf("empty range %q", s)
	}
	return r, nil
}

func parsePairs(lines []string) ([][2]sections, error) {
	var pairs [][2]sections
	for _, line := range lines {
		if line == "" {
			continue
		}
		a, b, err := aoc.Cut(line, ",")
		if err != nil {
			return nil, err
		}
		var p [2]sections
		if p[0], err = parseSections(a); err != nil {
			return nil, err
		}
		if p[1], err = parseSections(b); err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

func countPairs(pairs [][2]sections, f func(a, b sections) bool) int {
	n := 0
	for _, p := range pairs {
		if f(p[0], p[1]) {
			n++
		}
	}
	return n
}

/*
want=2

2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8
*/
func (s solver) D4p1() any {
	pairs := aoc.MustGet(parsePairs(s.Lines()))
	return countPairs(pairs, func(a, b sections) bool {
		return a.contains(b) || b.contains(a)
	})
}

// want=4
func (s solver) D4p2() any {
	pairs := aoc.MustGet(parsePairs(s.Lines()))
	return countPairs(pairs, sections.overlaps)
}
