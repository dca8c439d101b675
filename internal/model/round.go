package model

import (
	"strings"
	"time"
)

// Round represents one memorize/display/recall cycle
type Round struct {
	ID        string
	Number    int // 1-based within the session
	Direction Direction
	Digits    []int // len(Digits) equals the session level at generation
	Input     string
	CreatedAt time.Time
}

// DisplayString returns the digits in shown order, e.g. "5-7-3"
func (r *Round) DisplayString() string {
	return FormatSequence(r.Digits)
}

// ExpectedAnswer returns the accepted answer: the shown order for forward
// recall, the reversed order for backward recall
func (r *Round) ExpectedAnswer() string {
	if r.Direction == DirectionBackward {
		return FormatSequence(ReverseSequence(r.Digits))
	}
	return FormatSequence(r.Digits)
}

// Check compares trimmed input with the expected answer. Only surrounding
// whitespace is ignored; anything else must match exactly.
func (r *Round) Check(input string) bool {
	return strings.TrimSpace(input) == r.ExpectedAnswer()
}
