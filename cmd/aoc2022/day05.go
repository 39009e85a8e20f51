package main

import (
	"fmt"
	"strings"

	"github.com/Golzeb/aoc2022"
)

type crateMove struct {
	n, from, to int // from and to are 0-based
}

type supplies struct {
	stacks []*aoc.Stack[byte]
	moves  []crateMove
}

func (sup *supplies) clone() []*aoc.Stack[byte] {
	out := make([]*aoc.Stack[byte], len(sup.stacks))
	for i, s := range sup.stacks {
		out[i] = s.Clone()
	}
	return out
}

// parseSupplies reads the crate drawing, the blank line and the moves.
//
//	    [D]
//	[N] [C]
//	[Z] [M] [P]
//	 1   2   3
func parseSupplies(lines []string) (*supplies, error) {
	sep := -1
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			sep = i
			break
		}
	}
	if sep < 1 {
		return nil, fmt.Errorf("no crate drawing")
	}
	drawing, base := lines[:sep-1], lines[sep-1]
	n := len(strings.Fields(base))
	if n == 0 {
		return nil, fmt.Errorf("no stack numbers in %q", base)
	}
	sup := &supplies{stacks: make([]*aoc.Stack[byte], n)}
	for i := range sup.stacks {
		sup.stacks[i] = new(aoc.Stack[byte])
	}
	for i := len(drawing) - 1; i >= 0; i-- {
		row := drawing[i]
		for j := 0; j < n; j++ {
			x := 4*j + 1
			if x >= len(row) || row[x] == ' ' {
				continue
			}
			c := row[x]
			if c < 'A' || c > 'Z' || row[x-1] != '[' {
				return nil, fmt.Errorf("bad crate at column %d of %q", x, row)
			}
			sup.stacks[j].Push(c)
		}
	}
	for _, l := range lines[sep+1:] {
		if l == "" {
			continue
		}
		m, err := parseCrateMove(l, n)
		if err != nil {
			return nil, err
		}
		sup.moves = append(sup.moves, m)
	}
	return sup, nil
}

func parseCrateMove(line string, stacks int) (crateMove, error) {
	f, err := aoc.Fields(line, 6)
	if err != nil {
		return crateMove{}, err
	}
	if f[0] != "move" || f[2] != "from" || f[4] != "to" {
		return crateMove{}, fmt.Errorf("bad move %q", line)
	}
	var v [3]int
	for i, s := range []string{f[1], f[3], f[5]} {
		if v[i], err = aoc.ParseInt(s); err != nil {
			return crateMove{}, err
		}
	}
	m := crateMove{n: v[0], from: v[1] - 1, to: v[2] - 1}
	if m.from < 0 || m.from >= stacks || m.to < 0 || m.to >= stacks {
		return crateMove{}, fmt.Errorf("move %q names a stack outside 1..%d", line, stacks)
	}
	return m, nil
}

// rearrange applies the moves to a copy of the stacks and returns the top
// crate of each non-empty stack. With bulk set, a move lifts all its crates
// at once and keeps their order; otherwise they go one at a time.
func (sup *supplies) rearrange(bulk bool) (string, error) {
	stacks := sup.clone()
	for _, m := range sup.moves {
		crates, ok := stacks[m.from].PopN(m.n)
		if !ok {
			return "", fmt.Errorf("cannot move %d crates from stack %d holding %d", m.n, m.from+1, stacks[m.from].Len())
		}
		if !bulk {
			for i, j := 0, len(crates)-1; i < j; i, j = i+1, j-1 {
				crates[i], crates[j] = crates[j], crates[i]
			}
		}
		stacks[m.to].PushAll(crates...)
	}
	var sb strings.Builder
	for _, s := range stacks {
		if c, ok := s.Peek(); ok {
			sb.WriteByte(c)
		}
	}
	return sb.String(), nil
}

/*
want=CMZ

    [D]
[N] [C]
[Z] [M] [P]
 1   2   3

move 1 from 2 to 1
move 3 from 1 to 3
move 2 from 2 to 1
move 1 from 1 to 2
*/
func (s solver) D5p1() any {
	sup := aoc.MustGet(parseSupplies(s.Lines()))
	return aoc.MustGet(sup.rearrange(false))
}

// want=MCD
func (s solver) D5p2() any {
	sup := aoc.MustGet(parseSupplies(s.Lines()))
	return aoc.MustGet(sup.rearrange(true))
}
