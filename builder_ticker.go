package ticker

import (
	"context"
	"time"
)

// TickerBuilder fluently configures a fixed-interval recurring job
// (C8's "ticker"). Construction is private; the only way to get one is
// Scheduler.Ticker.
type TickerBuilder struct {
	s          *Scheduler
	dur        time.Duration
	fixedDelay bool
	startAt    time.Time
	hasStart   bool
}

// Ticker starts building a fixed-interval recurring job.
func (s *Scheduler) Ticker() *TickerBuilder {
	return &TickerBuilder{s: s}
}

// Every sets the job to recur every d, fixed-rate: the next firing is
// scheduled from the tick that dispatched the last one, so a slow
// callback doesn't delay later firings.
func (b *TickerBuilder) Every(d time.Duration) *TickerBuilder {
	b.dur = d
	b.fixedDelay = false
	return b
}

// Interval sets the job to recur every d, fixed-delay: the next firing
// is always d after the previous one finished, so firings never
// overlap no matter how long the callback takes.
func (b *TickerBuilder) Interval(d time.Duration) *TickerBuilder {
	b.dur = d
	b.fixedDelay = true
	return b
}

// StartAt overrides the first firing instant. Default is now for
// Interval (the first firing is immediate) and now plus the configured
// duration for Every (§4.8).
func (b *TickerBuilder) StartAt(t time.Time) *TickerBuilder {
	b.startAt = t
	b.hasStart = true
	return b
}

// Do finalizes the job with callback f, registers it, and returns a
// handle to it. Per §4.8, an Interval job's default first firing is
// now (immediate); an Every job's default first firing is now plus its
// period.
func (b *TickerBuilder) Do(f func(ctx context.Context)) Job {
	job := newEveryJob(b.dur, b.fixedDelay, f)
	first := b.startAt
	if !b.hasStart {
		if b.fixedDelay {
			first = b.s.now()
		} else {
			first = b.s.now().Add(b.dur)
		}
	}
	b.s.runner.AddTask(first, job)
	return job
}
