package main

import (
	"fmt"
	"strings"

	"github.com/Golzeb/aoc2022"
)

const (
	crtWidth  = 40
	crtHeight = 6
)

type instr struct {
	op  string // "noop" or "addx"
	arg int
}

func parseProgram(lines []string) ([]instr, error) {
	var prog []instr
	for i, line := range lines {
		f := strings.Fields(line)
		switch {
		case len(f) == 0:
		case len(f) == 1 && f[0] == "noop":
			prog = append(prog, instr{op: "noop"})
		case len(f) == 2 && f[0] == "addx":
			v, err := aoc.ParseInt(f[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			prog = append(prog, instr{op: "addx", arg: v})
		default:
			return nil, fmt.Errorf("line %d: unknown instruction %q", i+1, line)
		}
	}
	return prog, nil
}

// cpuTrace holds the value of X during each cycle; X during cycle c is
// trace.x[c-1]. Once the program ends the CPU idles and X keeps its final
// value.
type cpuTrace struct {
	x     []int
	final int
}

func runProgram(prog []instr) cpuTrace {
	t := cpuTrace{final: 1}
	for _, in := range prog {
		switch in.op {
		case "noop":
			t.x = append(t.x, t.final)
		case "addx":
			t.x = append(t.x, t.final, t.final)
			t.final += in.arg
		}
	}
	return t
}

// during returns X during cycle c, counting from 1.
func (t cpuTrace) during(c int) int {
	if c <= len(t.x) {
		return t.x[c-1]
	}
	return t.final
}

func signalStrength(t cpuTrace) int {
	sum := 0
	for c := 20; c <= 220; c += 40 {
		sum += c * t.during(c)
	}
	return sum
}

// render draws the CRT: a pixel is lit when the three-wide sprite centered
// on X covers it during the cycle that draws it.
func render(t cpuTrace) string {
	rows := make([]string, crtHeight)
	for y := range rows {
		var sb strings.Builder
		for x := 0; x < crtWidth; x++ {
			if aoc.AbsDiff(t.during(y*crtWidth+x+1), x) <= 1 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}

/*
want=9880

addx 1
addx 2
noop
addx -3
addx 10
noop
addx -8
addx 5
noop
noop
addx -4
addx 15
addx -12
noop
addx 7
*/
func (s solver) D10p1() any {
	return signalStrength(runProgram(aoc.MustGet(parseProgram(s.Lines()))))
}

/*
want=|
######....##........#...................
.............###........................
.............###........................
.............###........................
.............###........................
.............###........................
*/
func (s solver) D10p2() any {
	return render(runProgram(aoc.MustGet(parseProgram(s.Lines()))))
}
