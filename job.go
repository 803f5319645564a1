package ticker

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// Job is a handle to work registered with a Scheduler (C5). Builders
// return one from their terminal Do call; callers mostly just hold onto
// it to inspect how many times a recurring job has fired.
type Job interface {
	// ID is the job's generated identity, stable for its lifetime.
	ID() string
	// HitCount returns how many times the job has been launched.
	HitCount() int64
}

// jobBase holds the state every concrete job kind shares: its callback,
// identity and hit counter. Grounded on ticker-cxx's timer_job base
// class (original_source/include/ticker_cxx/ticker-timer-job.hh); hit
// counting uses go.uber.org/atomic the same way the worker pool counts
// active workers, and identity uses google/uuid the way the teacher's
// internal/requestid (here internal/execid) stamps a dispatch.
type jobBase struct {
	id   string
	f    func(ctx context.Context)
	hits *atomic.Int64
}

func newJobBase(f func(ctx context.Context)) jobBase {
	return jobBase{
		id:   uuid.NewString(),
		f:    f,
		hits: atomic.NewInt64(0),
	}
}

func (b *jobBase) ID() string { return b.id }

func (b *jobBase) HitCount() int64 { return b.hits.Load() }

// Run invokes the job's callback and bumps its hit counter. Shared by
// every concrete job kind; it's what makes them satisfy
// internal/wheel.Job's Run method.
func (b *jobBase) Run(ctx context.Context) {
	b.hits.Inc()
	b.f(ctx)
}
