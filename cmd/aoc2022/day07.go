package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/Golzeb/aoc2022"
)

const (
	diskSize   = 70_000_000
	updateSize = 30_000_000
	smallDir   = 100_000
)

type dir struct {
	name   string
	parent *dir
	dirs   map[string]*dir
	files  map[string]int
	size   int // total, set by computeSizes
}

func newDir(name string, parent *dir) *dir {
	return &dir{name: name, parent: parent, dirs: map[string]*dir{}, files: map[string]int{}}
}

// parseTerminal replays a terminal transcript and returns the root
// directory with all sizes computed.
func parseTerminal(lines []string) (*dir, error) {
	root := newDir("/", nil)
	cwd := root
	for i, line := range lines {
		if line == "" {
			continue
		}
		f := strings.Fields(line)
		switch {
		case f[0] == "$" && len(f) == 3 && f[1] == "cd":
			switch f[2] {
			case "/":
				cwd = root
			case "..":
				if cwd.parent != nil {
					cwd = cwd.parent
				}
			default:
				d, ok := cwd.dirs[f[2]]
				if !ok {
					return nil, fmt.Errorf("line %d: cd into unknown directory %q", i+1, f[2])
				}
				cwd = d
			}
		case f[0] == "$" && len(f) == 2 && f[1] == "ls":
		case f[0] == "dir" && len(f) == 2:
			if _, ok := cwd.dirs[f[1]]; !ok {
				cwd.dirs[f[1]] = newDir(f[1], cwd)
			}
		case len(f) == 2:
			size, err := aoc.ParseInt(f[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			cwd.files[f[1]] = size
		default:
			return nil, fmt.Errorf("line %d: unknown output %q", i+1, line)
		}
	}
	root.computeSizes()
	return root, nil
}

func (d *dir) computeSizes() int {
	d.size = 0
	for _, s := range d.files {
		d.size += s
	}
	for _, c := range d.dirs {
		d.size += c.computeSizes()
	}
	return d.size
}

// walk calls f for d and every directory below it, breadth first.
func (d *dir) walk(f func(*dir)) {
	q := aoc.NewQueue(d)
	q.While(func(d *dir) bool {
		f(d)
		for _, c := range d.dirs {
			q.Push(c)
		}
		return true
	})
}

func sumSmallDirs(root *dir, limit int) int {
	sum := 0
	root.walk(func(d *dir) {
		if d.size <= limit {
			sum += d.size
		}
	})
	return sum
}

// smallestToFree returns the size of the smallest directory whose removal
// leaves at least need bytes free on a disk of the given total size.
func smallestToFree(root *dir, total, need int) (int, error) {
	missing := need - (total - root.size)
	if missing <= 0 {
		return 0, nil
	}
	best := math.MaxInt
	root.walk(func(d *dir) {
		if d.size >= missing && d.size < best {
			best = d.size
		}
	})
	if best == math.MaxInt {
		return 0, fmt.Errorf("no directory frees %d bytes", missing)
	}
	return best, nil
}

/*
want=95437

$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k
*/
func (s solver) D7p1() any {
	root := aoc.MustGet(parseTerminal(s.Lines()))
	return sumSmallDirs(root, smallDir)
}

// want=24933642
func (s solver) D7p2() any {
	root := aoc.MustGet(parseTerminal(s.Lines()))
	s.Debugf("used %d of %d", root.size, diskSize)
	return aoc.MustGet(smallestToFree(root, diskSize, updateSize))
}
