package model

import (
	"strings"
	"testing"
)

func TestBuiltinSets(t *testing.T) {
	sets := BuiltinSets()
	names := SetNames(sets)

	expected := []string{SetA, SetB, SetC}
	if len(names) != len(expected) {
		t.Fatalf("Expected %d sets, got %d", len(expected), len(names))
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Set %d: expected %s, got %s", i, name, names[i])
		}
	}
}

func TestBuiltinSetsAreWellFormed(t *testing.T) {
	for name, set := range BuiltinSets() {
		if err := set.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestDigitSet_PoolKeepsDuplicates(t *testing.T) {
	set := DigitSet{
		Name: "test",
		Examples: map[Direction][]string{
			DirectionForward:  {"1-1-2", "2-3"},
			DirectionBackward: {"9"},
		},
	}

	pool := set.Pool(DirectionForward)
	if len(pool) != 5 {
		t.Fatalf("Expected pool of 5 digits, got %d (%v)", len(pool), pool)
	}

	counts := map[int]int{}
	for _, d := range pool {
		counts[d]++
	}
	if counts[1] != 2 || counts[2] != 2 || counts[3] != 1 {
		t.Errorf("Unexpected digit counts: %v", counts)
	}

	if backward := set.Pool(DirectionBackward); len(backward) != 1 || backward[0] != 9 {
		t.Errorf("Expected backward pool [9], got %v", backward)
	}
}

func TestSetAForwardPoolSize(t *testing.T) {
	set := BuiltinSets()[SetA]
	// 3+3+4+4+5+5+6+6+7+7 digits across the ten forward examples
	if got := len(set.Pool(DirectionForward)); got != 50 {
		t.Errorf("Expected 50 forward digits in Set A, got %d", got)
	}
	if got := len(set.Pool(DirectionBackward)); got != 32 {
		t.Errorf("Expected 32 backward digits in Set A, got %d", got)
	}
}

func TestValidate(t *testing.T) {
	typo := DigitSet{Name: "typo", Examples: map[Direction][]string{
		DirectionForward:  {"1-2-3", "4--5"},
		DirectionBackward: {"9-8-7"},
	}}
	err := typo.Validate()
	if err == nil {
		t.Fatal("Expected malformed example to be rejected")
	}
	if !strings.Contains(err.Error(), "4--5") {
		t.Errorf("Expected error to name the bad example, got %v", err)
	}

	half := DigitSet{Name: "half", Examples: map[Direction][]string{
		DirectionForward: {"1-2-3"},
	}}
	if err := half.Validate(); err == nil {
		t.Error("Expected missing backward examples to be rejected")
	}
}
