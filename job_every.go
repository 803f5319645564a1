package ticker

import (
	"context"
	"time"
)

// everyJob fires every dur (C5's "every"/"interval" job). When
// fixedDelay is false it's fixed-rate: the next fire is computed from
// the tick that dispatched this one, so a slow callback doesn't push
// later firings out. When fixedDelay is true it's fixed-delay: the next
// fire is computed from this firing's actual completion, so firings
// never overlap no matter how long the callback takes. Grounded on
// ticker-cxx's detail::every_job and the runner's `_interval` branch in
// ticker-core.hh, which decides which of these two a recurring job gets.
type everyJob struct {
	jobBase
	dur        time.Duration
	fixedDelay bool
}

func newEveryJob(dur time.Duration, fixedDelay bool, f func(context.Context)) *everyJob {
	return &everyJob{jobBase: newJobBase(f), dur: dur, fixedDelay: fixedDelay}
}

func (j *everyJob) NextFire(now time.Time) time.Time { return now.Add(j.dur) }
func (j *everyJob) Recurs() bool                     { return true }
func (j *everyJob) IntervalMode() bool               { return j.fixedDelay }

// Kind labels fixed-delay jobs "interval" and fixed-rate jobs "every",
// matching the kind label the scheduler's metrics distinguish.
func (j *everyJob) Kind() string {
	if j.fixedDelay {
		return "interval"
	}
	return "every"
}
