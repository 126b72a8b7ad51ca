package scheduler

import "time"

// Clock abstracts wall-clock access so the refresh loop and the update
// label can be driven by a fake clock in tests.
type Clock interface {
	// Now returns the current time, used for interval arithmetic only
	Now() time.Time

	// TimeOfDay returns the current time of day formatted HH:MM:SS.
	// ok is false while no synchronized wall clock is available, in
	// which case the update label keeps its previous value.
	TimeOfDay() (string, bool)
}

// SystemClock reads the operating system clock
type SystemClock struct{}

// Now returns the current time
func (SystemClock) Now() time.Time {
	return time.Now()
}

// TimeOfDay returns the local time of day; the system clock is always
// considered synchronized
func (SystemClock) TimeOfDay() (string, bool) {
	return time.Now().Format("15:04:05"), true
}
