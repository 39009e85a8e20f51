package aoc

import (
	"fmt"
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

// ParseGrid builds a grid from lines of text, converting every rune with
// cell. All rows must have the same width.
func ParseGrid[T any](lines []string, cell func(rune) (T, error)) (Grid[T], error) {
	var g Grid[T]
	for y, line := range lines {
		if len(g) > 0 && len(line) != len(g[0]) {
			return nil, fmt.Errorf("row %d has width %d; want %d", y, len(line), len(g[0]))
		}
		row := make([]T, 0, len(line))
		for x, r := range line {
			v, err := cell(r)
			if err != nil {
				return nil, fmt.Errorf("cell %d,%d: %w", x, y, err)
			}
			row = append(row, v)
		}
		g = append(g, row)
	}
	return g, nil
}

var hashers sync.Map // reflect.Type => func(*Grid[T]) deephash.Sum

// Hash returns a hash of the grid contents, valid within this process.
func (g Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	h, ok := hashers.Load(rt)
	if !ok {
		h, _ = hashers.LoadOrStore(rt, deephash.HasherForType[Grid[T]]())
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// EdgePaths returns a path starting at every edge cell, pointing into the
// grid.
func (g Grid[T]) EdgePaths() []Path {
	size := g.Size()
	var paths []Path
	for x := 0; x < size.X; x++ {
		paths = append(paths, Path{
			Pt:  Pt{x, 0},
			Dir: Down,
		}, Path{
			Pt:  Pt{x, size.Y - 1},
			Dir: Up,
		})
	}
	for y := 0; y < size.Y; y++ {
		paths = append(paths, Path{
			Pt:  Pt{0, y},
			Dir: Right,
		}, Path{
			Pt:  Pt{size.X - 1, y},
			Dir: Left,
		})
	}
	return paths
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Move advances p one step in its direction. It reports false once the step
// leaves the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	p.Pt = p.Pt.Step(p.Dir)
	size := g.Size()
	if p.Pt.X < 0 || p.Pt.Y < 0 || p.Pt.X >= size.X || p.Pt.Y >= size.Y {
		return Path{}, false
	}
	return p, true
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four directions clockwise from Up.
var Directions = [...]Direction{Up, Right, Down, Left}

// ParseDirection accepts U/R/D/L as well as the arrow forms of String.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "U", "^":
		return Up, nil
	case "R", ">":
		return Right, nil
	case "D", "v":
		return Down, nil
	case "L", "<":
		return Left, nil
	}
	return 0, fmt.Errorf("bad direction %q", s)
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Step returns the neighbor of p in direction d. Up decreases Y.
func (p Pt2[T]) Step(d Direction) Pt2[T] {
	switch d {
	case Up:
		p.Y--
	case Right:
		p.X++
	case Down:
		p.Y++
	case Left:
		p.X--
	}
	return p
}

// Touching reports whether p and b are the same point or neighbors,
// diagonals included.
func (p Pt2[T]) Touching(b Pt2[T]) bool {
	return AbsDiff(p.X, b.X) <= 1 && AbsDiff(p.Y, b.Y) <= 1
}

// Toward returns a point moving from p to b in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + Sign(b.X-p.X), p.Y + Sign(b.Y-p.Y)}
}
