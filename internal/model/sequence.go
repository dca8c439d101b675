package model

import (
	"fmt"
	"strconv"
	"strings"
)

// SequenceSeparator joins digits in displayed sequences and typed answers
const SequenceSeparator = "-"

// FormatSequence joins digits with SequenceSeparator, e.g. [5 7 3] -> "5-7-3"
func FormatSequence(digits []int) string {
	var b strings.Builder
	for i, d := range digits {
		if i > 0 {
			b.WriteString(SequenceSeparator)
		}
		b.WriteString(strconv.Itoa(d))
	}
	return b.String()
}

// ReverseSequence returns a reversed copy of digits
func ReverseSequence(digits []int) []int {
	reversed := make([]int, len(digits))
	for i, d := range digits {
		reversed[len(digits)-1-i] = d
	}
	return reversed
}

// ParseSequence parses a hyphen separated list of single digits.
// It is a format check for user input and is not used to grade answers.
func ParseSequence(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty sequence")
	}

	parts := strings.Split(s, SequenceSeparator)
	digits := make([]int, 0, len(parts))
	for i, part := range parts {
		if len(part) != 1 || part[0] < '0' || part[0] > '9' {
			return nil, fmt.Errorf("item %d %q is not a single digit", i+1, part)
		}
		digits = append(digits, int(part[0]-'0'))
	}
	return digits, nil
}
