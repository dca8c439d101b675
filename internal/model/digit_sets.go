package model

import (
	"fmt"
	"sort"
)

// DigitSet is a named group of example sequences used as the sampling pool
type DigitSet struct {
	Name     string
	Examples map[Direction][]string
}

// Validate checks that every direction has examples and that each one parses.
// Pool skips nothing on a validated set.
func (s DigitSet) Validate() error {
	for _, direction := range Directions {
		examples := s.Examples[direction]
		if len(examples) == 0 {
			return fmt.Errorf("set %q has no %s examples", s.Name, direction)
		}
		for _, example := range examples {
			if _, err := ParseSequence(example); err != nil {
				return fmt.Errorf("set %q %s example %q: %w", s.Name, direction, example, err)
			}
		}
	}
	return nil
}

// Pool returns every digit appearing in the examples for a direction,
// duplicates included. The result is a fresh slice. Malformed examples
// contribute nothing; callers check Validate first.
func (s DigitSet) Pool(direction Direction) []int {
	var pool []int
	for _, example := range s.Examples[direction] {
		digits, err := ParseSequence(example)
		if err != nil {
			continue
		}
		pool = append(pool, digits...)
	}
	return pool
}

// Built-in set identifiers
const (
	SetA = "Set A"
	SetB = "Set B"
	SetC = "Set C"
)

var builtinSets = map[string]DigitSet{
	SetA: {
		Name: SetA,
		Examples: map[Direction][]string{
			DirectionForward: {
				"5-7-3", "4-1-7", "5-3-8-7", "6-1-5-8",
				"1-6-4-9-5", "2-9-7-6-3", "3-4-1-7-9-6", "6-1-5-8-3-9",
				"7-2-5-9-4-8-3", "4-7-1-5-3-8-6",
			},
			DirectionBackward: {
				"4-7-2-9-1-6-8-5", "9-2-5-8-3-1-7-4",
				"4-7-2-9-1-0-8-3", "9-2-5-8-3-1-7-4",
			},
		},
	},
	SetB: {
		Name: SetB,
		Examples: map[Direction][]string{
			DirectionForward: {
				"3-8-1", "7-2-5", "9-4-2-6", "5-8-3-1",
				"7-1-5-3-9", "4-2-8-6-1", "2-7-5-9-3-8", "1-6-4-2-7-5",
				"8-3-6-1-9-4-2", "5-9-2-7-4-1-6",
			},
			DirectionBackward: {
				"7-3-9-1-5-8-2-4", "6-1-8-4-9-3-5-2",
				"5-2-9-7-1-8-3-6", "3-8-1-5-9-2-7-4",
			},
		},
	},
	SetC: {
		Name: SetC,
		Examples: map[Direction][]string{
			DirectionForward: {
				"6-2-9", "1-5-8", "3-7-4-2", "9-5-1-6",
				"2-8-3-6-1", "5-1-9-4-7", "8-3-2-6-1-9", "4-7-5-2-8-3",
				"1-9-4-6-3-8-2", "7-2-5-8-1-6-3",
			},
			DirectionBackward: {
				"2-6-9-1-5-8-3-7", "4-1-7-3-9-2-5-8",
				"8-3-5-1-9-4-2-7", "6-2-8-4-1-9-5-3",
			},
		},
	},
}

// BuiltinSets returns the sets shipped with the app, keyed by name
func BuiltinSets() map[string]DigitSet {
	sets := make(map[string]DigitSet, len(builtinSets))
	for name, set := range builtinSets {
		sets[name] = set
	}
	return sets
}

// SetNames returns the sorted names of the given sets
func SetNames(sets map[string]DigitSet) []string {
	names := make([]string, 0, len(sets))
	for name := range sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
