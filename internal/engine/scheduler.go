package engine

import "time"

// Timer is a cancellable pending callback.
type Timer interface {
	// Stop cancels the timer. It reports whether the call prevented the
	// callback from firing.
	Stop() bool
}

// Scheduler abstracts delayed callbacks and the clock so tests can drive
// virtual time instead of waiting on wall-clock delays.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
	Now() time.Time
}

type wallClock struct{}

// NewScheduler returns the wall-clock scheduler backed by the time package.
func NewScheduler() Scheduler {
	return wallClock{}
}

func (wallClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

func (wallClock) Now() time.Time {
	return time.Now()
}
