package ticker

import (
	"context"
	"time"
)

// oneShotJob fires once at a fixed instant and never recurs (C5's "in"
// job). Grounded on ticker-cxx's detail::in_job, whose next_time_point
// is a dummy value never consulted because the runner never reschedules
// a non-recurring job.
type oneShotJob struct {
	jobBase
	at time.Time
}

func newOneShotJob(at time.Time, f func(context.Context)) *oneShotJob {
	return &oneShotJob{jobBase: newJobBase(f), at: at}
}

func (j *oneShotJob) NextFire(time.Time) time.Time { return j.at }
func (j *oneShotJob) Recurs() bool                 { return false }
func (j *oneShotJob) IntervalMode() bool           { return false }
func (j *oneShotJob) Kind() string                 { return "one_shot" }
