package model

import "strings"

// Direction is the order in which a sequence must be recalled
type Direction string

const (
	DirectionForward  Direction = "forward"
	DirectionBackward Direction = "backward"
)

// Directions lists both recall directions in a stable order
var Directions = []Direction{DirectionForward, DirectionBackward}

// String returns the string representation of Direction
func (d Direction) String() string {
	return string(d)
}

// Label returns the upper-case name used in prompts
func (d Direction) Label() string {
	return strings.ToUpper(string(d))
}

// Icon returns the glyph shown next to the direction prompt
func (d Direction) Icon() string {
	if d == DirectionBackward {
		return "◀️"
	}
	return "▶️"
}

// IsValid reports whether d is one of the known directions
func (d Direction) IsValid() bool {
	return d == DirectionForward || d == DirectionBackward
}
