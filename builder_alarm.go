package ticker

import "context"

// AlarmBuilder fluently configures a calendar-anchored recurring job
// (C8's "alarm"), driven by the calendar engine (C6). Construction is
// private; the only way to get one is Scheduler.Alarm.
type AlarmBuilder struct {
	s          *Scheduler
	spec       RecurrenceSpec
	fixedDelay bool
}

// Alarm starts building a calendar-anchored recurring job.
func (s *Scheduler) Alarm() *AlarmBuilder {
	return &AlarmBuilder{s: s, spec: RecurrenceSpec{Ordinal: 1}}
}

// On sets the anchor and the day/weekday offset within it (§3).
func (b *AlarmBuilder) On(anchor Anchor, offset int) *AlarmBuilder {
	b.spec.Anchor = anchor
	b.spec.Offset = offset
	return b
}

// Every sets how many anchor steps elapse between firings. Default 1.
func (b *AlarmBuilder) Every(ordinal int) *AlarmBuilder {
	b.spec.Ordinal = ordinal
	return b
}

// Times records how many firings the caller intends. The runner never
// consults it (§9) — callers that need a firing cap check
// Job.HitCount() themselves and stop re-registering.
func (b *AlarmBuilder) Times(n int) *AlarmBuilder {
	b.spec.Times = n
	return b
}

// Interval switches the job to fixed-delay rescheduling: its next
// firing is computed from this firing's actual completion rather than
// from the tick that dispatched it.
func (b *AlarmBuilder) Interval() *AlarmBuilder {
	b.fixedDelay = true
	return b
}

// Do finalizes the job with callback f, computes its first firing
// instant, registers it, and returns a handle to it.
func (b *AlarmBuilder) Do(f func(ctx context.Context)) Job {
	job := newPeriodicalJob(b.spec, b.s.loc.Loc(), b.fixedDelay, f)
	first := job.NextFire(b.s.now())
	b.s.runner.AddTask(first, job)
	return job
}
