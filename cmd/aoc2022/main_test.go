package main

import "strings"

// lines splits a test input the way Puzzle.Lines does.
func lines(s string) []string {
	s = strings.TrimPrefix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
