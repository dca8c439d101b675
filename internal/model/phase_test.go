package model

import "testing"

func TestPhase_AcceptsInput(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected bool
	}{
		{PhaseIdle, false},
		{PhaseDisplaying, false},
		{PhaseAwaitingInput, true},
		{PhaseResolvedSuccess, false},
		{PhaseResolvedFailure, false},
	}

	for _, test := range tests {
		result := test.phase.AcceptsInput()
		if result != test.expected {
			t.Errorf("Phase(%s).AcceptsInput() = %v, expected %v", test.phase, result, test.expected)
		}
	}
}

func TestPhase_IsRunning(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected bool
	}{
		{PhaseIdle, false},
		{PhaseDisplaying, true},
		{PhaseAwaitingInput, true},
		{PhaseResolvedSuccess, true},
		{PhaseResolvedFailure, false},
	}

	for _, test := range tests {
		result := test.phase.IsRunning()
		if result != test.expected {
			t.Errorf("Phase(%s).IsRunning() = %v, expected %v", test.phase, result, test.expected)
		}
	}
}

func TestPhase_IsTerminal(t *testing.T) {
	if !PhaseResolvedFailure.IsTerminal() {
		t.Error("ResolvedFailure should be terminal")
	}
	if PhaseIdle.IsTerminal() || PhaseResolvedSuccess.IsTerminal() {
		t.Error("Idle and ResolvedSuccess should not be terminal")
	}
}

func TestCue_String(t *testing.T) {
	tests := []struct {
		cue      Cue
		expected string
	}{
		{CueNeutral, "neutral"},
		{CueSuccess, "success"},
		{CueFailure, "failure"},
	}

	for _, test := range tests {
		if result := test.cue.String(); result != test.expected {
			t.Errorf("Cue.String() = %s, expected %s", result, test.expected)
		}
	}
}

func TestDirection_LabelAndIcon(t *testing.T) {
	if DirectionForward.Label() != "FORWARD" {
		t.Errorf("Expected FORWARD, got %s", DirectionForward.Label())
	}
	if DirectionBackward.Label() != "BACKWARD" {
		t.Errorf("Expected BACKWARD, got %s", DirectionBackward.Label())
	}
	if DirectionForward.Icon() == DirectionBackward.Icon() {
		t.Error("Forward and backward icons should differ")
	}
	if Direction("sideways").IsValid() {
		t.Error("Unknown direction should not be valid")
	}
}
