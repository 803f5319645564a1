package waitsignal

// BoolLatch is a one-shot boolean signal specialized from
// ConditionalWait, mirroring conditional_wait<bool> in ticker-pool.hh.
// Raise flips it true and wakes every blocked Wait; Wait returns
// immediately once it's already been raised.
type BoolLatch struct {
	w *ConditionalWait[bool]
}

// NewBoolLatch returns an un-raised latch.
func NewBoolLatch() *BoolLatch {
	return &BoolLatch{w: New(false)}
}

// Raise flips the latch true. Idempotent.
func (l *BoolLatch) Raise() {
	l.w.Set(true)
}

// Wait blocks until the latch has been raised.
func (l *BoolLatch) Wait() {
	l.w.Wait(func(v bool) bool { return v })
}

// IsRaised reports the latch's state without blocking.
func (l *BoolLatch) IsRaised() bool {
	return l.w.Get()
}
