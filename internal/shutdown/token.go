// Package shutdown implements the scheduler's cooperative shutdown
// signal (C2), built on the BoolLatch primitive from internal/waitsignal
// (C1) — grounded on ticker-cxx's killer_info/timer_killer in
// original_source/include/ticker_cxx/ticker-pool.hh, which is itself a
// one-shot latch the runner and pool both watch to know when to stop.
package shutdown

import (
	"sync"

	"github.com/kosuga/ticker/internal/waitsignal"
)

// Token is a one-shot, idempotent shutdown signal watched by the
// runner.
type Token struct {
	latch *waitsignal.BoolLatch
	once  sync.Once
	done  chan struct{}
}

// New returns a fresh, uncancelled token.
func New() *Token {
	return &Token{
		latch: waitsignal.NewBoolLatch(),
		done:  make(chan struct{}),
	}
}

// Cancel raises the token. Safe to call more than once or concurrently.
func (t *Token) Cancel() {
	t.latch.Raise()
	t.once.Do(func() { close(t.done) })
}

// Cancelled reports whether Cancel has been called.
func (t *Token) Cancelled() bool {
	return t.latch.IsRaised()
}

// Wait blocks until the token is cancelled.
func (t *Token) Wait() {
	t.latch.Wait()
}

// Done returns a channel closed once the token is cancelled, for use
// alongside timers in a select statement.
func (t *Token) Done() <-chan struct{} {
	return t.done
}
