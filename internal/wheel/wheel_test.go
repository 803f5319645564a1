package wheel_test

import (
	"context"
	"testing"
	"time"

	"github.com/kosuga/ticker/internal/wheel"
)

type fakeJob struct {
	kind     string
	recur    bool
	interval bool
	runs     int
}

func (j *fakeJob) NextFire(now time.Time) time.Time { return now.Add(time.Minute) }
func (j *fakeJob) Recurs() bool                     { return j.recur }
func (j *fakeJob) IntervalMode() bool               { return j.interval }
func (j *fakeJob) Run(context.Context)              { j.runs++ }
func (j *fakeJob) Kind() string                     { return j.kind }

func TestWheel_AddCreatesBucket(t *testing.T) {
	w := wheel.New()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	j := &fakeJob{kind: "x"}
	w.Add(base, j)

	if got := w.Size(); got != 1 {
		t.Fatalf("got size %d, want 1", got)
	}
}

// The find-next drain quirk itself (only the latest due bucket survives
// a drain, older due buckets are dropped silently) is pinned as a
// white-box test in findnext_internal_test.go, since it exercises the
// unexported findNext directly.

func TestWheel_RemoveFromMultiJobBucket(t *testing.T) {
	w := wheel.New()
	tp := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := &fakeJob{kind: "a"}
	b := &fakeJob{kind: "b"}
	w.Add(tp, a)
	w.Add(tp, b)

	w.Remove(tp, a)
	if got := w.Size(); got != 1 {
		t.Fatalf("got size %d, want 1 (bucket should survive with b still in it)", got)
	}
}

func TestWheel_PrunePastOnEmptyPastWheel(t *testing.T) {
	w := wheel.New()
	// PastSize starts at zero; nothing to prune yet.
	if got := w.PastSize(); got != 0 {
		t.Fatalf("got past size %d, want 0", got)
	}
	w.PrunePast(time.Now())
	if got := w.PastSize(); got != 0 {
		t.Fatalf("got past size %d after pruning an empty past wheel, want 0", got)
	}
}
