package ticker

import (
	"context"
	"sync"
	"time"

	"github.com/kosuga/ticker/internal/calendar"
)

// periodicalJob fires on a calendar-anchored recurrence (C5 over C6).
// Grounded on ticker-cxx's periodical_job, which is a timer_job with
// recur always true and its interval flag taken from the caller — same
// as everyJob's fixedDelay, just driven by the calendar engine instead
// of a fixed duration.
type periodicalJob struct {
	jobBase
	spec       RecurrenceSpec
	loc        *time.Location
	fixedDelay bool

	mu       sync.Mutex
	lastFire time.Time
}

func newPeriodicalJob(spec RecurrenceSpec, loc *time.Location, fixedDelay bool, f func(context.Context)) *periodicalJob {
	return &periodicalJob{jobBase: newJobBase(f), spec: spec, loc: loc, fixedDelay: fixedDelay}
}

func (j *periodicalJob) NextFire(now time.Time) time.Time {
	j.mu.Lock()
	defer j.mu.Unlock()
	next := calendar.Next(j.spec, now, j.lastFire, j.loc)
	j.lastFire = next
	return next
}

func (j *periodicalJob) Recurs() bool       { return true }
func (j *periodicalJob) IntervalMode() bool { return j.fixedDelay }
func (j *periodicalJob) Kind() string       { return "periodical" }
