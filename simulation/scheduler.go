package simulation

import "time"

// Timer is a pending scheduled call
type Timer interface {
	Stop() bool
}

// Scheduler arranges for f to run once after d
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// ClockScheduler schedules on the wall clock with time.AfterFunc
type ClockScheduler struct{}

// AfterFunc implements Scheduler
func (ClockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
