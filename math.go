package aoc

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/exp/constraints"
)

// Digit returns the digit value of the rune.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		panic(fmt.Sprintf("not a digit: %q", r))
	}
	return int(r - '0')
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Sign returns -1, 0 or 1 depending on the sign of v.
func Sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// ParseInt returns the int value of the string, ignoring surrounding space.
func ParseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("bad number %q: %w", s, err)
	}
	return v, nil
}

// Fields splits line on whitespace and fails unless there are exactly n
// fields.
func Fields(line string, n int) ([]string, error) {
	f := strings.Fields(line)
	if len(f) != n {
		return nil, fmt.Errorf("got %d fields in %q; want %d", len(f), line, n)
	}
	return f, nil
}

// Cut is strings.Cut that fails when sep is missing.
func Cut(s, sep string) (before, after string, err error) {
	before, after, ok := strings.Cut(s, sep)
	if !ok {
		return "", "", fmt.Errorf("missing %q in %q", sep, s)
	}
	return before, after, nil
}

// Parallel calls f on every element of in, each in its own goroutine, and
// returns the results in input order. A panic in f is raised again on the
// calling goroutine.
func Parallel[I, O any](in []I, f func(I) O) []O {
	var (
		wg       sync.WaitGroup
		panicked sync.Once
		pv       any
	)
	wg.Add(len(in))
	out := make([]O, len(in))
	for i, v := range in {
		go func(i int, v I) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					panicked.Do(func() { pv = r })
				}
			}()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	if pv != nil {
		panic(pv)
	}
	return out
}

func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}
