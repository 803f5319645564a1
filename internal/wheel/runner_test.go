package wheel_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/kosuga/ticker/internal/future"
	"github.com/kosuga/ticker/internal/shutdown"
	"github.com/kosuga/ticker/internal/wheel"
)

// syncPool runs every submitted task inline on the caller's goroutine,
// standing in for the real worker pool in runner tests.
type syncPool struct {
	mu  sync.Mutex
	ran int
}

func (p *syncPool) Submit(task func(ctx context.Context)) *future.Future {
	p.mu.Lock()
	p.ran++
	p.mu.Unlock()
	task(context.Background())
	fut := future.New()
	fut.Complete(nil)
	return fut
}

func (p *syncPool) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ran
}

type runOnceJob struct {
	mu   sync.Mutex
	done chan struct{}
	ran  bool
}

func newRunOnceJob() *runOnceJob {
	return &runOnceJob{done: make(chan struct{})}
}

func (j *runOnceJob) NextFire(now time.Time) time.Time { return now }
func (j *runOnceJob) Recurs() bool                     { return false }
func (j *runOnceJob) IntervalMode() bool               { return false }
func (j *runOnceJob) Kind() string                     { return "oneshot" }
func (j *runOnceJob) Run(context.Context) {
	j.mu.Lock()
	j.ran = true
	j.mu.Unlock()
	close(j.done)
}

func TestRunner_FiresOneShotJobAtItsInstant(t *testing.T) {
	mock := clock.NewMock()
	w := wheel.New()
	pool := &syncPool{}
	token := shutdown.New()
	r := wheel.NewRunner(w, mock, pool, token, 3*time.Second, 0, 5*time.Second)
	r.Start()
	defer r.Stop()

	job := newRunOnceJob()
	r.AddTask(mock.Now().Add(time.Minute), job)

	mock.Add(time.Minute + time.Millisecond)

	select {
	case <-job.done:
	case <-time.After(time.Second):
		t.Fatal("one-shot job never ran")
	}
}

type countingRecurJob struct {
	mu    sync.Mutex
	dur   time.Duration
	count int
	fired chan struct{}
}

func newCountingRecurJob(dur time.Duration) *countingRecurJob {
	return &countingRecurJob{dur: dur, fired: make(chan struct{}, 16)}
}

func (j *countingRecurJob) NextFire(now time.Time) time.Time { return now.Add(j.dur) }
func (j *countingRecurJob) Recurs() bool                     { return true }
func (j *countingRecurJob) IntervalMode() bool               { return false }
func (j *countingRecurJob) Kind() string                     { return "every" }
func (j *countingRecurJob) Run(context.Context) {
	j.mu.Lock()
	j.count++
	j.mu.Unlock()
	j.fired <- struct{}{}
}

func TestRunner_RecurringJobReschedulesItself(t *testing.T) {
	mock := clock.NewMock()
	w := wheel.New()
	pool := &syncPool{}
	token := shutdown.New()
	r := wheel.NewRunner(w, mock, pool, token, 3*time.Second, 0, time.Hour)
	r.Start()
	defer r.Stop()

	job := newCountingRecurJob(time.Minute)
	r.AddTask(mock.Now().Add(time.Minute), job)

	for i := 0; i < 3; i++ {
		mock.Add(time.Minute + time.Millisecond)
		select {
		case <-job.fired:
		case <-time.After(time.Second):
			t.Fatalf("recurring job did not fire on iteration %d", i)
		}
	}

	job.mu.Lock()
	count := job.count
	job.mu.Unlock()
	if count != 3 {
		t.Fatalf("got %d firings, want 3", count)
	}
}

func TestRunner_PingReflectsLifecycle(t *testing.T) {
	mock := clock.NewMock()
	w := wheel.New()
	pool := &syncPool{}
	token := shutdown.New()
	r := wheel.NewRunner(w, mock, pool, token, 3*time.Second, 0, time.Hour)

	if err := r.Ping(context.Background()); err == nil {
		t.Fatal("expected an error before Start")
	}

	r.Start()
	if err := r.Ping(context.Background()); err != nil {
		t.Fatalf("expected no error once started, got %v", err)
	}

	r.Stop()
	if err := r.Ping(context.Background()); err == nil {
		t.Fatal("expected an error after Stop")
	}
}
