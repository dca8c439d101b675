package game

import "time"

// Round timing
const (
	DisplayBaseDuration     = 2100 * time.Millisecond
	DisplayPerDigitDuration = 380 * time.Millisecond
	SuccessPause            = 1200 * time.Millisecond
)

// DisplayDuration returns how long a sequence of the given level stays visible
func DisplayDuration(level int) time.Duration {
	return DisplayBaseDuration + time.Duration(level)*DisplayPerDigitDuration
}

// Scheduler runs one-shot delayed callbacks. Callbacks may run on any goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// wallClock schedules against real time
type wallClock struct{}

// AfterFunc implements Scheduler using time.AfterFunc
func (wallClock) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// NewWallClock returns the real-time scheduler
func NewWallClock() Scheduler {
	return wallClock{}
}
