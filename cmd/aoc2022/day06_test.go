package main

import "testing"

func TestFindMarker(t *testing.T) {
	tests := []struct {
		in             string
		packet, message int
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", 7, 19},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", 5, 23},
		{"nppdvjthqldpwncqszvftbrmjlhg", 6, 23},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", 10, 29},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", 11, 26},
	}
	for _, tt := range tests {
		if got, err := findMarker([]byte(tt.in), 4); err != nil || got != tt.packet {
			t.Errorf("findMarker(%q, 4) = %d, %v; want %d", tt.in, got, err, tt.packet)
		}
		if got, err := findMarker([]byte(tt.in), 14); err != nil || got != tt.message {
			t.Errorf("findMarker(%q, 14) = %d, %v; want %d", tt.in, got, err, tt.message)
		}
	}
}

func TestFindMarkerMissing(t *testing.T) {
	for _, in := range []string{"", "abc", "aaaaaaaa", "abcabcabc"} {
		if got, err := findMarker([]byte(in), 4); err == nil {
			t.Errorf("findMarker(%q, 4) = %d; want error", in, got)
		}
	}
	if got, err := findMarker([]byte("abcd"), 4); err != nil || got != 4 {
		t.Errorf("findMarker(abcd) = %d, %v; want 4", got, err)
	}
}
