package model

import "testing"

func TestRound_ExpectedAnswer(t *testing.T) {
	tests := []struct {
		digits    []int
		direction Direction
		expected  string
	}{
		{[]int{5, 7, 3}, DirectionForward, "5-7-3"},
		{[]int{4, 1, 7}, DirectionBackward, "7-1-4"},
		{[]int{6, 1, 5, 8}, DirectionForward, "6-1-5-8"},
		{[]int{0, 0, 9}, DirectionBackward, "9-0-0"},
	}

	for _, test := range tests {
		round := &Round{Digits: test.digits, Direction: test.direction}
		if result := round.ExpectedAnswer(); result != test.expected {
			t.Errorf("ExpectedAnswer() for %v %s = %s, expected %s", test.digits, test.direction, result, test.expected)
		}
	}
}

func TestRound_DisplayStringKeepsShownOrder(t *testing.T) {
	round := &Round{Digits: []int{4, 1, 7}, Direction: DirectionBackward}
	if round.DisplayString() != "4-1-7" {
		t.Errorf("Expected display 4-1-7, got %s", round.DisplayString())
	}
}

func TestRound_Check(t *testing.T) {
	forward := &Round{Digits: []int{5, 7, 3}, Direction: DirectionForward}
	backward := &Round{Digits: []int{4, 1, 7}, Direction: DirectionBackward}
	truncated := &Round{Digits: []int{6, 1, 5, 8}, Direction: DirectionForward}

	tests := []struct {
		name     string
		round    *Round
		input    string
		expected bool
	}{
		{"exact forward", forward, "5-7-3", true},
		{"surrounding whitespace", forward, "  5-7-3\t", true},
		{"inner whitespace", forward, "5 - 7 - 3", false},
		{"other separator", forward, "5,7,3", false},
		{"backward reversed", backward, "7-1-4", true},
		{"backward as shown", backward, "4-1-7", false},
		{"truncated", truncated, "6-1-5", false},
		{"empty", forward, "", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if result := test.round.Check(test.input); result != test.expected {
				t.Errorf("Check(%q) = %v, expected %v", test.input, result, test.expected)
			}
		})
	}
}

func TestSession_Lifecycle(t *testing.T) {
	session := NewSession("s-1", SetA)
	if session.Level != InitialLevel || session.Score != 0 || !session.Active {
		t.Fatalf("Unexpected new session state: %+v", session)
	}

	session.RecordSuccess()
	session.Advance()
	if session.Score != 1 || session.Level != InitialLevel+1 {
		t.Errorf("Expected score 1 level %d, got score %d level %d", InitialLevel+1, session.Score, session.Level)
	}

	session.Stop()
	if session.Active {
		t.Error("Session should be inactive after Stop")
	}
}
