package ui

// Package ui contains the Fyne-based desktop user interface for the app.
// It renders controller snapshots, forwards user actions to the round
// controller and applies the persisted light/dark theme.
