package ticker

import (
	"context"
	"time"
)

// TimerBuilder fluently configures a one-shot job (C8's "timer").
// Construction is private; the only way to get one is Scheduler.Timer.
type TimerBuilder struct {
	s  *Scheduler
	at time.Time
}

// Timer starts building a one-shot job.
func (s *Scheduler) Timer() *TimerBuilder {
	return &TimerBuilder{s: s, at: s.now()}
}

// At sets the fixed instant the job fires at.
func (b *TimerBuilder) At(t time.Time) *TimerBuilder {
	b.at = t
	return b
}

// In sets the job to fire d after now.
func (b *TimerBuilder) In(d time.Duration) *TimerBuilder {
	b.at = b.s.now().Add(d)
	return b
}

// After is an alias for In (§4.8: "after(...) = in(...)").
func (b *TimerBuilder) After(d time.Duration) *TimerBuilder {
	return b.In(d)
}

// AtString parses s as a bare clock-of-day ("HH:MM:SS") or a full
// timestamp ("YYYY-MM-DD HH:MM:SS" / "YYYY/MM/DD HH:MM:SS") and sets the
// job's firing instant to the result (§4.8). A bare clock-of-day is
// anchored to today; whichever pattern matches, if the resolved instant
// has already passed it rolls forward 24h. Returns an error — the
// Configuration error of §7 — if s matches none of the accepted
// patterns, leaving the builder's instant unchanged.
func (b *TimerBuilder) AtString(s string) (*TimerBuilder, error) {
	t, err := b.s.loc.ResolveAt(s, b.s.now())
	if err != nil {
		return b, err
	}
	b.at = t
	return b, nil
}

// Do finalizes the job with callback f, registers it on the wheel, and
// returns a handle to it.
func (b *TimerBuilder) Do(f func(ctx context.Context)) Job {
	job := newOneShotJob(b.at, f)
	b.s.runner.AddTask(b.at, job)
	return job
}
