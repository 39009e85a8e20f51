package main

import (
	"testing"

	"github.com/Golzeb/aoc2022"
	"github.com/stretchr/testify/require"
)

func TestRopeBridge(t *testing.T) {
	small, err := parseRopeMoves(lines("R 4\nU 4\nL 3\nD 1\nR 4\nD 1\nL 5\nR 2\n"))
	require.NoError(t, err)
	require.Equal(t, ropeMove{aoc.Right, 4}, small[0])
	require.Equal(t, 13, simulateRope(small, 2))
	require.Equal(t, 1, simulateRope(small, 10))

	large, err := parseRopeMoves(lines("R 5\nU 8\nL 8\nD 3\nR 17\nD 10\nL 25\nU 20\n"))
	require.NoError(t, err)
	require.Equal(t, 36, simulateRope(large, 10))
}

func TestRopeSingleKnot(t *testing.T) {
	moves, err := parseRopeMoves([]string{"R 3", "U 2"})
	require.NoError(t, err)
	// With one knot the head is the tail.
	require.Equal(t, 6, simulateRope(moves, 1))
	require.Equal(t, 1, simulateRope(nil, 2))
}

func TestParseRopeMovesErrors(t *testing.T) {
	for _, in := range []string{"X 1", "R", "R x", "R -2", "R 1 2"} {
		_, err := parseRopeMoves([]string{in})
		require.Error(t, err, in)
	}
}
