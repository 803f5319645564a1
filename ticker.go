// Package ticker is an in-process job scheduler combining a calendar
// recurrence engine (C6) with a timing wheel and worker pool (C7/C4):
// register one-shot, fixed-interval, or calendar-anchored jobs through
// the fluent Timer/Ticker/Alarm builders (C8), and they run on a bounded
// pool of goroutines when their computed instant comes due.
//
// This module is a from-scratch Go rendering of the scheduling engine in
// ticker-cxx (https://github.com/hedzr/ticker-cxx): the wait-signal
// primitive, shutdown token, blocking queue, worker pool, job
// abstraction, calendar engine, timing wheel and fluent builders all
// have a direct counterpart there, reworked into idiomatic Go —
// generics and channels in place of templates and condition-variable
// wrappers, structural interfaces in place of CRTP.
package ticker

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/kosuga/ticker/config"
	"github.com/kosuga/ticker/internal/chrono"
	"github.com/kosuga/ticker/internal/health"
	"github.com/kosuga/ticker/internal/shutdown"
	"github.com/kosuga/ticker/internal/wheel"
	"github.com/kosuga/ticker/internal/workerpool"
)

// Scheduler owns a wheel (C7), a runner loop, and a worker pool (C4).
// Jobs are registered through Timer, Ticker and Alarm and dispatched on
// the pool when they come due.
type Scheduler struct {
	wheel  *wheel.Wheel
	runner *wheel.Runner
	pool   *workerpool.Pool
	token  *shutdown.Token
	clk    clock.Clock
	loc    chrono.Location
}

// Option configures a Scheduler at construction time.
type Option func(*options)

type options struct {
	clk         clock.Clock
	workerCount int
	largerGap   time.Duration
	wastage     time.Duration
	pastGrace   time.Duration
	utc         bool
}

// WithClock overrides the scheduler's clock. Tests use this to inject
// github.com/benbjohnson/clock's mock clock instead of wall time.
func WithClock(clk clock.Clock) Option {
	return func(o *options) { o.clk = clk }
}

// WithWorkerCount sets the worker pool size (C4). 0 or negative means
// one worker per logical CPU.
func WithWorkerCount(n int) Option {
	return func(o *options) { o.workerCount = n }
}

// WithUTC switches the calendar engine (C6) to UTC instead of local
// time (§4.6's GMT flag).
func WithUTC(utc bool) Option {
	return func(o *options) { o.utc = utc }
}

// WithLargerGap overrides how long the runner sleeps when the wheel is
// idle or has no near-term bucket (§4.7).
func WithLargerGap(d time.Duration) Option {
	return func(o *options) { o.largerGap = d }
}

// WithWastage overrides the pre-compensation subtracted from every
// computed sleep, to offset scheduling overhead.
func WithWastage(d time.Duration) Option {
	return func(o *options) { o.wastage = d }
}

// WithPastWheelGrace overrides how long drained buckets are retained
// before being pruned (§3).
func WithPastWheelGrace(d time.Duration) Option {
	return func(o *options) { o.pastGrace = d }
}

// FromConfig translates a loaded config.Config into the Options a host
// binary would otherwise have to wire by hand.
func FromConfig(cfg *config.Config) []Option {
	return []Option{
		WithWorkerCount(cfg.WorkerCount),
		WithUTC(cfg.GMT),
		WithLargerGap(cfg.LargerGap()),
		WithWastage(cfg.Wastage()),
		WithPastWheelGrace(cfg.PastWheelGrace()),
	}
}

// New constructs a Scheduler and starts its runner loop and worker pool.
// ctx is passed to every job callback the worker pool runs; cancelling
// it stops neither the pool nor the runner — call Stop for an orderly
// shutdown.
func New(ctx context.Context, opts ...Option) *Scheduler {
	o := options{
		clk:         clock.New(),
		workerCount: 0,
		largerGap:   3 * time.Second,
		pastGrace:   5 * time.Second,
	}
	for _, opt := range opts {
		opt(&o)
	}

	w := wheel.New()
	token := shutdown.New()
	pool := workerpool.New(ctx, o.workerCount)
	runner := wheel.NewRunner(w, o.clk, pool, token, o.largerGap, o.wastage, o.pastGrace)
	runner.Start()

	return &Scheduler{
		wheel:  w,
		runner: runner,
		pool:   pool,
		token:  token,
		clk:    o.clk,
		loc:    chrono.Location{UTC: o.utc},
	}
}

// Stop signals the runner and worker pool to drain and exit, and blocks
// until both have stopped.
func (s *Scheduler) Stop() {
	s.runner.Stop()
	s.pool.Join()
}

// Pinger exposes the runner for wiring into internal/health.Checker.
func (s *Scheduler) Pinger() health.Pinger {
	return s.runner
}

// Cancel removes job from the wheel if it hasn't fired yet (§4.7's
// remove_task, §5: "there is no per-job cancellation handle in the
// core... removing a not-yet-fired job requires remove_task(instant,
// job)" — the scheduler tracks each pending job's current instant
// itself, so callers only need the job, not its instant). Reports
// whether job was still pending. A no-op while job is not pending: a
// one-shot that has already dispatched, or a job never added. A
// recurring job is pending again once the runner has re-added it.
func (s *Scheduler) Cancel(job Job) bool {
	wj, ok := job.(wheel.Job)
	if !ok {
		return false
	}
	return s.runner.Cancel(wj)
}

// now returns the scheduler's current time, through its clock.
func (s *Scheduler) now() time.Time {
	return s.clk.Now()
}
