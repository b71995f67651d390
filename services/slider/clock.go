package slider

import "time"

// Timer is a pending deferred call
type Timer interface {
	// Stop prevents the call from running. It reports false when the call
	// already ran or was stopped before.
	Stop() bool
}

// Clock schedules deferred calls. SystemClock is backed by time.AfterFunc.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemClock is the wall clock
var SystemClock Clock = systemClock{}
