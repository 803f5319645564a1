// Package wheel implements the scheduler's ordered job table and its
// dispatch loop (C7): a time-bucketed map of pending jobs, and a runner
// that wakes when the earliest bucket comes due, hands its jobs to a
// worker pool, and reschedules recurring ones.
//
// Ported from ticker-cxx's timer class in
// original_source/include/ticker_cxx/ticker-core.hh (the _twl member and
// its runner_loop/find_next/add_task methods). The underlying map is
// emirpasic/gods' red-black-tree treemap, since Go's standard library has
// no sorted map the way C++'s std::map is one.
package wheel

import (
	"context"
	"sync"
	"time"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// Job is anything the runner loop can dispatch. The concrete job kinds
// (one-shot, every, periodical) live in the root ticker package and
// satisfy this interface structurally — wheel has no dependency on them.
type Job interface {
	// NextFire computes the job's next scheduled instant given the
	// instant it's being evaluated at.
	NextFire(now time.Time) time.Time
	// Recurs reports whether the job is re-added to the wheel after it
	// fires.
	Recurs() bool
	// IntervalMode reports whether NextFire should be computed from the
	// job's actual completion time (fixed-delay) instead of from the
	// tick that dispatched it (fixed-rate). Only meaningful if Recurs().
	IntervalMode() bool
	// Run invokes the job's callback.
	Run(ctx context.Context)
	// Kind labels the job for metrics (e.g. "one_shot", "every", "periodical").
	Kind() string
}

// Wheel is the ordered time-bucketed job table (§3). Grounded on
// ticker-core.hh's _twl (a std::map<time_point, vector<shared_ptr<Job>>>).
type Wheel struct {
	mu   sync.Mutex
	tree *treemap.Map   // time.Time -> []Job, due buckets
	past *treemap.Map   // time.Time -> []Job, drained buckets kept for a grace window
	at   map[Job]time.Time // job -> the bucket key it's currently pending under, for Cancel
}

// New returns an empty wheel.
func New() *Wheel {
	return &Wheel{
		tree: treemap.NewWith(utils.TimeComparator),
		past: treemap.NewWith(utils.TimeComparator),
		at:   make(map[Job]time.Time),
	}
}

// Add inserts job into the bucket for tp, creating the bucket if needed.
func (w *Wheel) Add(tp time.Time, job Job) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.at[job] = tp
	existing, found := w.tree.Get(tp)
	if !found {
		w.tree.Put(tp, []Job{job})
		return
	}
	w.tree.Put(tp, append(existing.([]Job), job))
}

// Remove drops job from tp's bucket, if present.
func (w *Wheel) Remove(tp time.Time, job Job) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.remove(tp, job)
}

// Cancel drops job from whichever bucket it's currently pending under,
// looked up by identity (§4.7's remove_task, addressed by job instead
// of by (instant, job) since the wheel already tracks each pending
// job's current instant). Reports whether job was found and removed.
func (w *Wheel) Cancel(job Job) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	tp, ok := w.at[job]
	if !ok {
		return false
	}
	w.remove(tp, job)
	return true
}

// remove is Remove's body, called with mu already held.
func (w *Wheel) remove(tp time.Time, job Job) {
	delete(w.at, job)
	existing, found := w.tree.Get(tp)
	if !found {
		return
	}
	jobs := existing.([]Job)
	for i, j := range jobs {
		if j == job {
			jobs = append(jobs[:i:i], jobs[i+1:]...)
			break
		}
	}
	if len(jobs) == 0 {
		w.tree.Remove(tp)
	} else {
		w.tree.Put(tp, jobs)
	}
}

// Size returns the number of distinct due time-point buckets.
func (w *Wheel) Size() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tree.Size()
}

// PastSize returns the number of drained buckets retained in the past
// wheel.
func (w *Wheel) PastSize() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.past.Size()
}

// ClearPast drops every bucket the past wheel is retaining. Called on
// shutdown (§5: "the past wheel is cleared").
func (w *Wheel) ClearPast() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.past.Clear()
}

// PrunePast drops past-wheel buckets whose instant is before cutoff.
func (w *Wheel) PrunePast(cutoff time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, k := range w.past.Keys() {
		if k.(time.Time).Before(cutoff) {
			w.past.Remove(k)
		}
	}
}

// findNext locates the latest due bucket as of now, drains it, and
// reports the instant of the next remaining bucket (if any).
//
// Ported verbatim from ticker-core.hh's find_next + the erase call in
// runner_loop: find_next walks the wheel in ascending order and tracks
// only the LAST key it saw that's still <= now, then runner_loop erases
// everything up to and including that key in one shot. If the runner
// fell behind and more than one bucket is already due, every older due
// bucket is dropped silently — its jobs never fire, they're just
// discarded along with the one that does. This is a known quirk of the
// engine find_next is ported from, kept intentionally rather than fixed:
// fixing it would change the dispatch order contract jobs are written
// against. Callers that can't tolerate a missed tick under load should
// use a wider gap between their own scheduled instants.
func (w *Wheel) findNext(now time.Time) (picked time.Time, jobs []Job, next time.Time, hasNext, found bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	keys := w.tree.Keys()
	lastDueIdx := -1
	for i, k := range keys {
		if !k.(time.Time).After(now) {
			lastDueIdx = i
			continue
		}
		break
	}
	if lastDueIdx == -1 {
		return time.Time{}, nil, time.Time{}, false, false
	}

	picked = keys[lastDueIdx].(time.Time)
	val, _ := w.tree.Get(picked)
	jobs = val.([]Job)

	for i := 0; i <= lastDueIdx; i++ {
		if dropped, ok := w.tree.Get(keys[i]); ok {
			for _, j := range dropped.([]Job) {
				delete(w.at, j)
			}
		}
		w.tree.Remove(keys[i])
	}

	if lastDueIdx+1 < len(keys) {
		next = keys[lastDueIdx+1].(time.Time)
		hasNext = true
	}

	w.past.Put(picked, jobs)
	return picked, jobs, next, hasNext, true
}
