package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const terminalSample = `
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
`

func TestParseTerminal(t *testing.T) {
	root, err := parseTerminal(lines(terminalSample))
	require.NoError(t, err)
	require.Equal(t, 48381165, root.size)
	require.Equal(t, 94853, root.dirs["a"].size)
	require.Equal(t, 584, root.dirs["a"].dirs["e"].size)
	require.Equal(t, 24933642, root.dirs["d"].size)

	var names []string
	root.walk(func(d *dir) { names = append(names, d.name) })
	require.ElementsMatch(t, []string{"/", "a", "d", "e"}, names)
	require.Equal(t, "/", names[0])

	require.Equal(t, 95437, sumSmallDirs(root, smallDir))
	got, err := smallestToFree(root, diskSize, updateSize)
	require.NoError(t, err)
	require.Equal(t, 24933642, got)
}

func TestParseTerminalRepeatedListing(t *testing.T) {
	root, err := parseTerminal(lines(`
$ cd /
$ ls
dir x
10 a
$ ls
dir x
10 a
$ cd ..
$ cd x
$ ls
5 b
`))
	require.NoError(t, err)
	require.Equal(t, 15, root.size)
	require.Equal(t, 5, root.dirs["x"].size)
}

func TestParseTerminalErrors(t *testing.T) {
	for _, in := range []string{
		"$ cd nowhere",
		"$ rm -rf /",
		"12x a.txt",
		"what is this",
	} {
		_, err := parseTerminal([]string{"$ cd /", in})
		require.Error(t, err, in)
	}
}

func TestSmallestToFree(t *testing.T) {
	root, err := parseTerminal(lines(terminalSample))
	require.NoError(t, err)

	// Enough room already.
	got, err := smallestToFree(root, 100_000_000, updateSize)
	require.NoError(t, err)
	require.Zero(t, got)

	// A directory of exactly the missing size qualifies.
	got, err = smallestToFree(root, root.size+updateSize-584, updateSize)
	require.NoError(t, err)
	require.Equal(t, 584, got)

	_, err = smallestToFree(root, root.size, root.size+1)
	require.Error(t, err)
}
