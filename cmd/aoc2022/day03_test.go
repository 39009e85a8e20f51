package main

import "testing"

var rucksackSample = lines(`
vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
`)

func TestSharedPriority(t *testing.T) {
	want := []int{16, 38, 42, 22, 20, 19} // p, L, P, v, t, s
	for i, r := range rucksackSample {
		got, err := sharedPriority(r)
		if err != nil {
			t.Fatal(err)
		}
		if got != want[i] {
			t.Errorf("sharedPriority(%q) = %d; want %d", r, got, want[i])
		}
	}
	if _, err := sharedPriority("abc"); err == nil {
		t.Error("odd rucksack accepted")
	}
	if _, err := sharedPriority("a1"); err == nil {
		t.Error("bad item accepted")
	}
}

func TestBadgePriority(t *testing.T) {
	for i, want := range []int{18, 52} { // r, Z
		got, err := badgePriority(rucksackSample[3*i : 3*i+3])
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("group %d badge = %d; want %d", i, got, want)
		}
	}
	if _, err := badgePriority([]string{"ab", "ab", "ab"}); err == nil {
		t.Error("group sharing two items accepted")
	}
}

func TestBadgeSum(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    int
		wantErr bool
	}{
		{"sample", rucksackSample, 70, false},
		{"no rucksacks", nil, 0, false},
		{"short group", rucksackSample[:4], 0, true},
		{"one left over", append(append([]string{}, rucksackSample...), "ab"), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := badgeSum(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("badgeSum error = %v; wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("badgeSum = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestPriority(t *testing.T) {
	for r, want := range map[rune]int{'a': 1, 'z': 26, 'A': 27, 'Z': 52} {
		if got, _ := priority(r); got != want {
			t.Errorf("priority(%q) = %d; want %d", r, got, want)
		}
	}
}
