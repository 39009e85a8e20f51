package main

import (
	"fmt"
	"math/bits"

	"github.com/Golzeb/aoc2022"
)

// itemSet is a set of item types, bit i set for priority i.
type itemSet uint64

func priority(r rune) (int, error) {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 1, nil
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 27, nil
	}
	return 0, fmt.Errorf("bad item %q", r)
}

func items(s string) (itemSet, error) {
	var set itemSet
	for _, r := range s {
		p, err := priority(r)
		if err != nil {
			return 0, err
		}
		set |= 1 << p
	}
	return set, nil
}

// prioritySum returns the sum of the priorities of the items in set.
func (set itemSet) prioritySum() int {
	sum := 0
	for set != 0 {
		sum += bits.TrailingZeros64(uint64(set))
		set &= set - 1
	}
	return sum
}

// sharedPriority returns the priority sum of the item types found in both
// compartments of a rucksack.
func sharedPriority(rucksack string) (int, error) {
	if len(rucksack)%2 != 0 {
		return 0, fmt.Errorf("rucksack %q has odd size", rucksack)
	}
	half := len(rucksack) / 2
	a, err := items(rucksack[:half])
	if err != nil {
		return 0, err
	}
	b, err := items(rucksack[half:])
	if err != nil {
		return 0, err
	}
	return (a & b).prioritySum(), nil
}

// badgePriority returns the priority of the only item type carried by
// every rucksack in group.
func badgePriority(group []string) (int, error) {
	common := ^itemSet(0)
	for _, r := range group {
		set, err := items(r)
		if err != nil {
			return 0, err
		}
		common &= set
	}
	if n := bits.OnesCount64(uint64(common)); n != 1 {
		return 0, fmt.Errorf("group %q shares %d item types; want 1", group, n)
	}
	return common.prioritySum(), nil
}

// badgeSum splits rucksacks into groups of three and sums their badge
// priorities.
func badgeSum(rucksacks []string) (int, error) {
	if len(rucksacks)%3 != 0 {
		return 0, fmt.Errorf("%d rucksacks do not split into groups of three", len(rucksacks))
	}
	sum := 0
	for i := 0; i < len(rucksacks); i += 3 {
		p, err := badgePriority(rucksacks[i : i+3])
		if err != nil {
			return 0, err
		}
		sum += p
	}
	return sum, nil
}

func nonEmpty(lines []string) []string {
	out := lines[:0:0]
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

/*
want=157

vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
*/
func (s solver) D3p1() any {
	sum := 0
	s.ForLines(func(line string) {
		if line == "" {
			return
		}
		sum += aoc.MustGet(sharedPriority(line))
	})
	return sum
}

// want=70
func (s solver) D3p2() any {
	return aoc.MustGet(badgeSum(nonEmpty(s.Lines())))
}
