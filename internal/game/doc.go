package game

// Package game implements the round controller: the digit span state machine
// that starts sessions, generates rounds, schedules the display and success
// delays, grades answers and restarts. It has no UI dependencies; state
// changes are published through an update callback as immutable snapshots.
