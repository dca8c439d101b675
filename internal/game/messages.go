package game

import (
	"fmt"

	"github.com/ytget/digit-span/internal/model"
)

// Status messages shown to the user
const (
	MsgInitial       = "Select a set to begin"
	MsgSelectSet     = "Please select a set first!"
	MsgEnterSequence = "⌨️ Enter the sequence now (separate digits with '-'):"
	MsgSuccess       = "✅ Excellent! Moving to the next level."
)

// focusMessage is shown while a sequence is visible
func focusMessage(direction model.Direction) string {
	return fmt.Sprintf("%s Focus on this sequence for %s recall...", direction.Icon(), direction.Label())
}

// failureMessage reveals the correct answer after a wrong recall
func failureMessage(answer string) string {
	return fmt.Sprintf("Try again! The correct sequence was: %s. Press restart.", answer)
}
