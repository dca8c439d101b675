package model

import "time"

// Level and scoring defaults
const (
	InitialLevel = 3
	LevelStep    = 1
)

// Session is the enclosing game state for a run of rounds
type Session struct {
	ID        string
	SetName   string
	Level     int
	Score     int
	Active    bool
	StartedAt time.Time
	Rounds    int // rounds generated so far
}

// NewSession creates an active session at the initial level
func NewSession(id, setName string) *Session {
	return &Session{
		ID:        id,
		SetName:   setName,
		Level:     InitialLevel,
		Active:    true,
		StartedAt: time.Now(),
	}
}

// RecordSuccess counts a correct answer
func (s *Session) RecordSuccess() {
	s.Score++
}

// Advance moves to the next level
func (s *Session) Advance() {
	s.Level += LevelStep
}

// Stop marks the session inactive
func (s *Session) Stop() {
	s.Active = false
}
