// Package aoc are quick & dirty utilities for solving Advent of Code
// problems: a runner that checks every part against the sample embedded in
// its doc comment before running it on the real input, plus the small grid,
// container and parsing helpers the solutions share.
package aoc

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

// parseSample extracts a sample from a doc comment of the form
//
//	want=<answer>
//
//	<input lines>
//
// A want of "|" starts a multi-line answer that ends at the first blank
// line; the input follows it. The input may be omitted.
func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	lines := strings.Split(text, "\n")
	i := slices.IndexFunc(lines, func(l string) bool {
		return strings.HasPrefix(strings.TrimSpace(l), "want=")
	})
	if i < 0 {
		return sample{}, false
	}
	var s sample
	s.want = strings.TrimPrefix(strings.TrimSpace(lines[i]), "want=")
	rest := lines[i+1:]
	if s.want == "|" {
		end := slices.IndexFunc(rest, isBlank)
		if end < 0 {
			end = len(rest)
		}
		s.want = strings.Join(rest[:end], "\n")
		rest = rest[end:]
	}
	for len(rest) > 0 && isBlank(rest[0]) {
		rest = rest[1:]
	}
	for len(rest) > 0 && isBlank(rest[len(rest)-1]) {
		rest = rest[:len(rest)-1]
	}
	if len(rest) > 0 {
		s.input = strings.Join(rest, "\n") + "\n"
	}
	return s, true
}

func isBlank(l string) bool { return strings.TrimSpace(l) == "" }

// extractSamples returns the samples found in the doc comments of every Go
// file in src, keyed by function name. A sample without input reuses the
// input of the previous one.
func extractSamples(src fs.FS) (map[string]sample, error) {
	files, err := fs.Glob(src, "*.go")
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	var lastInput string
	samples := make(map[string]sample)
	for _, name := range files {
		b, err := fs.ReadFile(src, name)
		if err != nil {
			return nil, err
		}
		fset := token.NewFileSet()
		f, err := parser.ParseFile(fset, name, b, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parsing source to extract samples: %w", err)
		}
		for _, d := range f.Decls {
			fd, ok := d.(*ast.FuncDecl)
			if !ok || fd.Doc == nil {
				continue
			}
			funcName := fd.Name.Name
			for _, c := range fd.Doc.List {
				s, ok := parseSample(c.Text)
				if ok {
					s.input = Or(s.input, lastInput)
					samples[funcName] = s
					lastInput = s.input
					break
				}
			}
		}
	}
	return samples, nil
}

type Puzzle struct {
	year       int
	day        int
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	log     *zap.SugaredLogger
	inputs  *inputStore
	input   []byte // real input, once loaded
}

func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if p.input == nil {
		p.input = MustGet(p.inputs.Input(context.Background(), p.day))
	}
	return p.input
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	s := bufio.NewScanner(bytes.NewReader(p.Input()))
	s.Buffer(nil, 1<<20)
	return s
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	MustDo(s.Err())
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Lines returns all input lines.
func (p *Puzzle) Lines() []string {
	var lines []string
	p.ForLines(func(line string) { lines = append(lines, line) })
	return lines
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		p.log.Debugf(format, args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		panic(fmt.Sprintf("no sample found for %v", p.solver.Name))
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code. The methods must have the signature
// func() any.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("got %T; want pointer to struct", x)
	}
	v = v.Elem()
	if f := v.FieldByName("Puzzle"); !f.IsValid() || f.Type() != reflect.TypeOf(&Puzzle{}) {
		return nil, fmt.Errorf("%T must embed *aoc.Puzzle", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("%s has type %v; want func() any", mn, v.Method(i).Type())
		}
		d := MustGet(strconv.Atoi(matches[1]))
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

// errSampleMismatch marks a part whose sample answer was wrong.
var errSampleMismatch = errors.New("sample mismatch")

// solve runs the current part, turning a panic into an error.
func (p *Puzzle) solve() (got any, took time.Duration, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("day %d part %s: %v", p.day, p.solver.Part, r)
		}
	}()
	t0 := time.Now()
	got = p.solver.fn()
	return got, time.Since(t0), nil
}

func (r *runner) runDay(slvr any, d day) error {
	p := &Puzzle{
		year:    r.cfg.Year,
		day:     d.day,
		samples: r.samples,
		log:     r.log.Sugar().With("day", d.day),
		inputs:  r.inputs,
	}
	fmt.Fprintln(r.out, "Running day", d.day)
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	for _, ps := range d.parts {
		p.solver = ps
		if r.opts.part != "" && ps.Part != r.opts.part {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && r.opts.onlySample {
				continue
			} else if sm && r.opts.skipSample {
				continue
			}
			p.SampleMode = sm
			if !sm && p.input == nil {
				// Prime the input so fetching is not timed.
				in, err := r.inputs.Input(r.ctx, d.day)
				if err != nil {
					return fmt.Errorf("day %d input: %w", d.day, err)
				}
				p.input = in
			}
			got, took, err := p.solve()
			if err != nil {
				return err
			}
			took = took.Round(time.Microsecond)
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Fprintf(r.out, "part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return fmt.Errorf("day %d part %s: %w", d.day, ps.Part, errSampleMismatch)
				}
				fmt.Fprintf(r.out, "part %s sample: %v ✅ (%v) \n", ps.Part, got, took)
				continue
			}
			answer := fmt.Sprint(got)
			if strings.Contains(answer, "\n") {
				// Rendered answers start on their own line.
				fmt.Fprintf(r.out, "part %s: (took %v)\n%s\n", ps.Part, took, answer)
			} else {
				fmt.Fprintf(r.out, "part %s: %v (took %v) \n", ps.Part, answer, took)
			}
			r.record(d.day, ps.Part, p.input, answer, took)
		}
	}
	return nil
}

func (r *runner) record(day int, part string, input []byte, answer string, took time.Duration) {
	if r.journal == nil {
		return
	}
	old, err := r.journal.Record(day, part, input, answer, took)
	if err != nil {
		r.log.Warn("recording answer", zap.Int("day", day), zap.String("part", part), zap.Error(err))
		return
	}
	if old != nil {
		r.log.Warn("answer changed for the same input",
			zap.Int("day", day),
			zap.String("part", part),
			zap.String("was", old.Answer),
			zap.String("now", answer),
			zap.Time("recorded", old.RecordedAt))
	}
}

// runDays runs the selected day of slvr, or all days in order. Every day
// is attempted; the first error is returned.
func (r *runner) runDays(slvr any) error {
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}
	if r.opts.day != -1 {
		d, ok := days[r.opts.day]
		if !ok {
			return fmt.Errorf("no day %d", r.opts.day)
		}
		return r.runDay(slvr, d)
	}

	var firstErr error
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, n := range dayNums {
		if err := r.runDay(slvr, days[n]); err != nil {
			r.log.Error("day failed", zap.Int("day", n), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
		fmt.Fprintln(r.out)
	}
	return firstErr
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero element of list, or else returns the zero T.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
