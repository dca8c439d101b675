package model

// Phase represents the current state of the round lifecycle
type Phase string

const (
	// PhaseIdle means no session is running
	PhaseIdle Phase = "Idle"

	// PhaseDisplaying means the sequence is visible to the user
	PhaseDisplaying Phase = "Displaying"

	// PhaseAwaitingInput means the sequence is hidden and input is enabled
	PhaseAwaitingInput Phase = "AwaitingInput"

	// PhaseResolvedSuccess is the short pause after a correct answer
	PhaseResolvedSuccess Phase = "ResolvedSuccess"

	// PhaseResolvedFailure ends the session until restart
	PhaseResolvedFailure Phase = "ResolvedFailure"
)

// String returns the string representation of Phase
func (p Phase) String() string {
	return string(p)
}

// AcceptsInput returns true if answers may be submitted in this phase
func (p Phase) AcceptsInput() bool {
	return p == PhaseAwaitingInput
}

// IsRunning returns true while a session is in progress
func (p Phase) IsRunning() bool {
	return p == PhaseDisplaying || p == PhaseAwaitingInput || p == PhaseResolvedSuccess
}

// IsTerminal returns true if only a restart can leave this phase
func (p Phase) IsTerminal() bool {
	return p == PhaseResolvedFailure
}

// Cue is the success/failure color hint shown with the status message
type Cue int

const (
	CueNeutral Cue = iota
	CueSuccess
	CueFailure
)

// String returns a readable name for the cue
func (c Cue) String() string {
	switch c {
	case CueSuccess:
		return "success"
	case CueFailure:
		return "failure"
	default:
		return "neutral"
	}
}
