package waitsignal

// Counter is an integer specialization of ConditionalWait, mirroring
// conditional_wait<int> in ticker-pool.hh — used where goroutines need
// to block until a count of in-flight work reaches some threshold.
// internal/workerpool.Pool uses one for its active-task count: each
// worker bumps it around running a task, and Join waits for it to
// reach zero before declaring the pool drained.
type Counter struct {
	w *ConditionalWait[int]
}

// NewCounter returns a Counter starting at initial.
func NewCounter(initial int) *Counter {
	return &Counter{w: New(initial)}
}

// Add adds delta to the counter (delta may be negative) and wakes
// waiters.
func (c *Counter) Add(delta int) {
	c.w.Update(func(v int) int { return v + delta })
}

// WaitUntil blocks until predicate(value) holds, returning that value.
func (c *Counter) WaitUntil(predicate func(int) bool) int {
	return c.w.Wait(predicate)
}

// WaitUntilZero blocks until the counter reaches zero.
func (c *Counter) WaitUntilZero() {
	c.w.Wait(func(v int) bool { return v == 0 })
}

// Get returns the current value without blocking.
func (c *Counter) Get() int {
	return c.w.Get()
}
