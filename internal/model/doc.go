package model

// Package model defines domain data structures used across the app: digit sets,
// recall directions, rounds, sessions and phase enums. Structures are designed
// for direct rendering in the UI and explicit state transitions.
