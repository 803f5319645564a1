// Package workerpool implements the scheduler's fixed-size worker pool
// (C4): a set of goroutines consuming from a shared blocking queue
// (C3), with a startup ready-barrier and load counters. Grounded
// on ticker-cxx's thread_pool/thread_pool_lite
// (original_source/include/ticker_cxx/ticker-pool.hh) and on the
// teacher's goroutine-per-batch + WaitGroup dispatch idiom.
package workerpool

import (
	"context"
	"runtime"
	"sync"

	"go.uber.org/atomic"

	"github.com/kosuga/ticker/internal/future"
	"github.com/kosuga/ticker/internal/metrics"
	"github.com/kosuga/ticker/internal/taskqueue"
	"github.com/kosuga/ticker/internal/waitsignal"
)

// entry pairs a submitted task with the Future its caller is holding.
type entry struct {
	task func(ctx context.Context)
	fut  *future.Future
}

// Pool is a fixed-size worker pool consuming tasks from a shared queue.
type Pool struct {
	queue  *taskqueue.Queue[entry]
	active *waitsignal.Counter
	total  *atomic.Int64
	ready  sync.WaitGroup
	done   sync.WaitGroup
}

// New creates and starts a pool of size workers, all consuming from the
// same task queue and running with ctx. It blocks until every worker
// goroutine has started (the ready-barrier), so Submit never races
// startup. size <= 0 means one worker per logical CPU.
func New(ctx context.Context, size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	p := &Pool{
		queue:  taskqueue.New[entry](),
		active: waitsignal.NewCounter(0),
		total:  atomic.NewInt64(int64(size)),
	}
	metrics.PoolTotalWorkers.Set(float64(size))

	p.ready.Add(size)
	p.done.Add(size)
	for i := 0; i < size; i++ {
		go p.worker(ctx)
	}
	p.ready.Wait()
	return p
}

func (p *Pool) worker(ctx context.Context) {
	defer p.done.Done()
	p.ready.Done()
	for {
		e, ok := p.queue.Pop()
		if !ok {
			return
		}
		p.active.Add(1)
		metrics.PoolActiveWorkers.Set(float64(p.active.Get()))
		p.run(ctx, e)
		p.active.Add(-1)
		metrics.PoolActiveWorkers.Set(float64(p.active.Get()))
	}
}

// run invokes e's task and completes its future, recovering a panic
// ("a user callback raises", §7) so the worker keeps serving subsequent
// tasks instead of dying with it.
func (p *Pool) run(ctx context.Context, e entry) {
	defer func() {
		e.fut.Complete(future.RecoverToError(recover()))
	}()
	e.task(ctx)
}

// Submit enqueues task for the next free worker and returns a Future
// observing its outcome (§4.4). Safe to call concurrently.
func (p *Pool) Submit(task func(ctx context.Context)) *future.Future {
	fut := future.New()
	p.queue.Push(entry{task: task, fut: fut})
	return fut
}

// Active returns how many workers are currently executing a task.
func (p *Pool) Active() int64 {
	return int64(p.active.Get())
}

// Total returns the pool's fixed size.
func (p *Pool) Total() int64 {
	return p.total.Load()
}

// Join aborts the queue (§4.3's clear: pending tasks are dropped, not
// run), waits for whatever task is already in flight on each worker to
// finish (the active-task count, C1's "counter up-to-N" primitive,
// reaching zero), and blocks until every worker goroutine has returned.
func (p *Pool) Join() {
	p.queue.Close()
	p.active.WaitUntilZero()
	p.done.Wait()
}
