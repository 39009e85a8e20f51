package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const calorieSample = `
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
`

func TestParseElves(t *testing.T) {
	elves, err := parseElves(lines(calorieSample))
	if err != nil {
		t.Fatal(err)
	}
	want := [][]int{{1000, 2000, 3000}, {4000}, {5000, 6000}, {7000, 8000, 9000}, {10000}}
	if diff := cmp.Diff(want, elves); diff != "" {
		t.Errorf("parseElves mismatch (-want +got):\n%s", diff)
	}

	// Extra blank lines do not create empty elves.
	elves, err = parseElves([]string{"", "1", "", "", "2", ""})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([][]int{{1}, {2}}, elves); diff != "" {
		t.Errorf("parseElves mismatch (-want +got):\n%s", diff)
	}

	if _, err := parseElves([]string{"12", "1x"}); err == nil {
		t.Error("parseElves accepted a bad number")
	}
}

func TestTopCalories(t *testing.T) {
	elves, err := parseElves(lines(calorieSample))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		n    int
		want int
	}{
		{1, 24000},
		{3, 45000},
		{10, 55000},
		{0, 0},
	}
	for _, tt := range tests {
		if got := topCalories(elves, tt.n); got != tt.want {
			t.Errorf("topCalories(%d) = %d; want %d", tt.n, got, tt.want)
		}
	}
	if got := topCalories(nil, 3); got != 0 {
		t.Errorf("topCalories(nil) = %d", got)
	}
}
