package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const supplySample = `
    [D]
[N] [C]
[Z] [M] [P]
 1   2   3

move 1 from 2 to 1
move 3 from 1 to 3
move 2 from 2 to 1
move 1 from 1 to 2
`

func TestParseSupplies(t *testing.T) {
	sup, err := parseSupplies(lines(supplySample))
	require.NoError(t, err)
	require.Len(t, sup.stacks, 3)
	for i, want := range []string{"ZN", "MCD", "P"} {
		s := sup.stacks[i].Clone()
		got, ok := s.PopN(s.Len())
		require.True(t, ok)
		require.Equal(t, want, string(got), "stack %d", i+1)
	}
	require.Equal(t, []crateMove{{1, 1, 0}, {3, 0, 2}, {2, 1, 0}, {1, 0, 1}}, sup.moves)
}

func TestRearrange(t *testing.T) {
	sup, err := parseSupplies(lines(supplySample))
	require.NoError(t, err)

	got, err := sup.rearrange(false)
	require.NoError(t, err)
	require.Equal(t, "CMZ", got)

	// The parsed stacks are untouched, so the second crane starts over.
	got, err = sup.rearrange(true)
	require.NoError(t, err)
	require.Equal(t, "MCD", got)
}

func TestSupplyErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"no drawing", "move 1 from 1 to 2\n"},
		{"bad crate", "(A)\n 1\n\n"},
		{"bad move", "[A]\n 1\n\nmove one from 1 to 1\n"},
		{"stack out of range", "[A]\n 1\n\nmove 1 from 1 to 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSupplies(lines(tt.in))
			require.Error(t, err)
		})
	}

	sup, err := parseSupplies(lines("[A]\n 1   2\n\nmove 2 from 1 to 2\n"))
	require.NoError(t, err)
	_, err = sup.rearrange(false)
	require.ErrorContains(t, err, "cannot move 2 crates")
}

func TestRearrangeEdges(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		one, bulk string
		wantErr   string
	}{
		{
			name: "empty stacks skipped",
			in:   "[A]\n 1   2   3\n\nmove 1 from 1 to 3\n",
			one:  "A",
			bulk: "A",
		},
		{
			name: "crate order",
			in:   "[A]\n[B]\n 1   2\n\nmove 2 from 1 to 2\n",
			one:  "B",
			bulk: "A",
		},
		{
			name: "no moves",
			in:   "[A] [B]\n 1   2\n\n",
			one:  "AB",
			bulk: "AB",
		},
		{
			name:    "too many crates",
			in:      "[A] [B]\n 1   2\n\nmove 1 from 1 to 2\nmove 3 from 2 to 1\n",
			wantErr: "cannot move 3 crates from stack 2 holding 2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sup, err := parseSupplies(lines(tt.in))
			require.NoError(t, err)
			for _, bulk := range []bool{false, true} {
				got, err := sup.rearrange(bulk)
				if tt.wantErr != "" {
					require.ErrorContains(t, err, tt.wantErr, "bulk=%v", bulk)
					continue
				}
				require.NoError(t, err)
				want := tt.one
				if bulk {
					want = tt.bulk
				}
				require.Equal(t, want, got, "bulk=%v", bulk)
			}
		})
	}
}
