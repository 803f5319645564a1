package wheel

import (
	"context"
	"errors"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/kosuga/ticker/internal/execid"
	"github.com/kosuga/ticker/internal/future"
	"github.com/kosuga/ticker/internal/metrics"
	"github.com/kosuga/ticker/internal/shutdown"
	"github.com/kosuga/ticker/internal/waitsignal"
)

// Pool is the subset of the worker pool (C4) the runner needs to
// dispatch a job's callback off the wheel's own goroutine.
type Pool interface {
	Submit(task func(ctx context.Context)) *future.Future
}

// Runner drives the wheel's wake-scan-dispatch loop (C7). Ported from
// ticker-core.hh's runner_loop: wait for the next due instant (or
// shutdown), drain it, hand its jobs to the pool, reschedule recurring
// ones, and compute how long to sleep before the next wake-up.
type Runner struct {
	wheel *Wheel
	clk   clock.Clock
	pool  Pool
	token *shutdown.Token

	largerGap time.Duration
	wastage   time.Duration
	pastGrace time.Duration

	started *waitsignal.BoolLatch
	ended   *waitsignal.BoolLatch
}

// NewRunner builds a Runner. largerGap bounds how long the loop sleeps
// when the wheel is empty or has no near-term bucket (§4.7); wastage is
// subtracted from every computed sleep to pre-compensate for scheduling
// overhead; pastGrace bounds how long drained buckets are kept before
// being pruned.
func NewRunner(w *Wheel, clk clock.Clock, pool Pool, token *shutdown.Token, largerGap, wastage, pastGrace time.Duration) *Runner {
	return &Runner{
		wheel:     w,
		clk:       clk,
		pool:      pool,
		token:     token,
		largerGap: largerGap,
		wastage:   wastage,
		pastGrace: pastGrace,
		started:   waitsignal.NewBoolLatch(),
		ended:     waitsignal.NewBoolLatch(),
	}
}

// AddTask inserts job into the wheel at tp.
func (r *Runner) AddTask(tp time.Time, job Job) {
	r.wheel.Add(tp, job)
}

// RemoveTask drops job from tp's bucket, if it's still there.
func (r *Runner) RemoveTask(tp time.Time, job Job) {
	r.wheel.Remove(tp, job)
}

// Cancel drops job from wherever it's currently pending, by identity
// (§4.7's remove_task, §5's "removing a not-yet-fired job"). Reports
// whether it was still pending. A no-op while job is not pending: a
// one-shot that has already been dispatched, or a job never added.
func (r *Runner) Cancel(job Job) bool {
	return r.wheel.Cancel(job)
}

// Start spins up the runner's loop goroutine and blocks until it's
// ready to process wake-ups.
func (r *Runner) Start() {
	go r.loop()
	r.started.Wait()
}

// Stop signals the runner to exit, blocks until its loop has ended, and
// clears the past wheel (§5: jobs still executing on the pool are
// allowed to finish; the past wheel's job references are dropped once
// the runner itself has stopped touching them).
func (r *Runner) Stop() {
	r.token.Cancel()
	r.ended.Wait()
	r.wheel.ClearPast()
}

// Ping satisfies internal/health.Pinger: the runner is healthy once
// started and until it's ended.
func (r *Runner) Ping(_ context.Context) error {
	if !r.started.IsRaised() {
		return errors.New("runner not started")
	}
	if r.ended.IsRaised() {
		return errors.New("runner stopped")
	}
	return nil
}

func (r *Runner) loop() {
	d := 10 * time.Nanosecond
	timer := r.clk.Timer(d)
	r.started.Raise()

	for {
		select {
		case <-r.token.Done():
			timer.Stop()
			r.ended.Raise()
			return
		case <-timer.C:
		}

		d = r.largerGap
		metrics.RunnerLoopIterationsTotal.Inc()

		now := r.clk.Now()
		r.wheel.PrunePast(now.Add(-r.pastGrace))

		picked, jobs, next, hasNext, found := r.wheel.findNext(now)
		metrics.WheelSize.Set(float64(r.wheel.Size()))
		metrics.PastWheelSize.Set(float64(r.wheel.PastSize()))

		if found {
			if hasNext {
				d = gapMinusWastage(next.Sub(picked), r.wastage)
			}

			var recurred []Job
			for _, j := range jobs {
				j := j
				switch {
				case j.IntervalMode():
					r.pool.Submit(func(ctx context.Context) {
						r.runAndRecord(ctx, j)
						r.wheel.Add(j.NextFire(r.clk.Now()), j)
					})
				case j.Recurs():
					r.pool.Submit(func(ctx context.Context) { r.runAndRecord(ctx, j) })
					recurred = append(recurred, j)
				default:
					r.pool.Submit(func(ctx context.Context) { r.runAndRecord(ctx, j) })
				}
			}

			for _, j := range recurred {
				now := r.clk.Now()
				tp := j.NextFire(now)
				r.wheel.Add(tp, j)
				d = gapMinusWastage(tp.Sub(now), r.wastage)
			}
		}

		metrics.RunnerSleepSeconds.Observe(d.Seconds())
		timer = r.clk.Timer(d)
	}
}

func (r *Runner) runAndRecord(ctx context.Context, j Job) {
	metrics.JobsDispatchedTotal.WithLabelValues(j.Kind()).Inc()
	ctx = execid.WithExecID(ctx, execid.New())
	start := r.clk.Now()
	defer func() {
		metrics.JobExecutionDuration.Observe(r.clk.Now().Sub(start).Seconds())
		if rec := recover(); rec != nil {
			metrics.JobExecutionErrorsTotal.Inc()
		}
	}()
	j.Run(ctx)
}

func gapMinusWastage(gap, wastage time.Duration) time.Duration {
	if gap > wastage {
		return gap - wastage
	}
	return 0
}
