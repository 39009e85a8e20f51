package main

import (
	"bytes"
	"fmt"

	"github.com/Golzeb/aoc2022"
)

// findMarker returns the number of bytes read once the last n bytes are
// pairwise distinct.
func findMarker(data []byte, n int) (int, error) {
	var counts [256]int
	dups := 0
	for i, c := range data {
		counts[c]++
		if counts[c] == 2 {
			dups++
		}
		if i >= n {
			old := data[i-n]
			counts[old]--
			if counts[old] == 1 {
				dups--
			}
		}
		if i >= n-1 && dups == 0 {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("no marker of length %d in %d bytes", n, len(data))
}

/*
want=7

mjqjpqmgbljsphdztnvjfqwrcgsmlb
*/
func (s solver) D6p1() any {
	return aoc.MustGet(findMarker(bytes.TrimSpace(s.Input()), 4))
}

// want=19
func (s solver) D6p2() any {
	return aoc.MustGet(findMarker(bytes.TrimSpace(s.Input()), 14))
}
