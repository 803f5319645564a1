// Package waitsignal is the scheduler's condition-variable primitive
// (C1), generalized from ticker-cxx's conditional_wait<T> template
// (original_source/include/ticker_cxx/ticker-pool.hh): a value guarded by
// a predicate that goroutines can block on until some other goroutine
// makes the predicate true.
package waitsignal

import "sync"

// ConditionalWait guards a value of type T with a condition variable.
// Callers block in Wait until a predicate over the current value holds.
type ConditionalWait[T any] struct {
	mu    sync.Mutex
	cond  *sync.Cond
	value T
}

// New creates a ConditionalWait holding the given initial value.
func New[T any](initial T) *ConditionalWait[T] {
	w := &ConditionalWait[T]{value: initial}
	w.cond = sync.NewCond(&w.mu)
	return w
}

// Wait blocks until predicate(value) is true, then returns that value.
func (w *ConditionalWait[T]) Wait(predicate func(T) bool) T {
	w.mu.Lock()
	defer w.mu.Unlock()
	for !predicate(w.value) {
		w.cond.Wait()
	}
	return w.value
}

// Set assigns a new value and wakes every blocked waiter so they can
// re-check their predicate.
func (w *ConditionalWait[T]) Set(v T) {
	w.mu.Lock()
	w.value = v
	w.mu.Unlock()
	w.cond.Broadcast()
}

// Update atomically transforms the guarded value and wakes waiters.
func (w *ConditionalWait[T]) Update(fn func(T) T) {
	w.mu.Lock()
	w.value = fn(w.value)
	w.mu.Unlock()
	w.cond.Broadcast()
}

// Get returns the current value without blocking.
func (w *ConditionalWait[T]) Get() T {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.value
}
