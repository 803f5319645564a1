package wheel

import (
	"context"
	"testing"
	"time"
)

type stubJob struct{ name string }

func (j *stubJob) NextFire(now time.Time) time.Time { return now }
func (j *stubJob) Recurs() bool                     { return false }
func (j *stubJob) IntervalMode() bool               { return false }
func (j *stubJob) Run(context.Context)              {}
func (j *stubJob) Kind() string                     { return j.name }

// White-box pin of the ported quirk: when the runner falls behind and
// several buckets are already due, findNext only returns (and drains)
// the LATEST due bucket. The older due bucket's job is erased from the
// wheel along with it, but never appears in the returned jobs slice —
// it's silently dropped, not deferred.
func TestFindNext_DropsOlderDueBucketsSilently(t *testing.T) {
	w := New()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	older := &stubJob{name: "older"}
	newer := &stubJob{name: "newer"}
	future := &stubJob{name: "future"}

	w.Add(base, older)
	w.Add(base.Add(time.Second), newer)
	w.Add(base.Add(time.Hour), future)

	now := base.Add(2 * time.Second)
	picked, jobs, next, hasNext, found := w.findNext(now)

	if !found {
		t.Fatal("expected a due bucket to be found")
	}
	if !picked.Equal(base.Add(time.Second)) {
		t.Fatalf("picked %s, want the newer due bucket %s", picked, base.Add(time.Second))
	}
	if len(jobs) != 1 || jobs[0].(*stubJob) != newer {
		t.Fatalf("got jobs %v, want just the newer job", jobs)
	}
	if !hasNext || !next.Equal(base.Add(time.Hour)) {
		t.Fatalf("got next=%s hasNext=%v, want the future bucket", next, hasNext)
	}

	// The older bucket and the picked bucket are both gone from the
	// wheel now; only the future bucket remains.
	if got := w.Size(); got != 1 {
		t.Fatalf("got size %d after drain, want 1 (older's bucket silently dropped)", got)
	}

	// older's job never ran and isn't retrievable — it was discarded,
	// not deferred to a later call.
	_, jobsAgain, _, _, foundAgain := w.findNext(now)
	if foundAgain {
		t.Fatalf("did not expect another due bucket, got jobs=%v", jobsAgain)
	}
}

func TestFindNext_NoneDueYet(t *testing.T) {
	w := New()
	future := time.Now().Add(time.Hour)
	w.Add(future, &stubJob{name: "future"})

	_, _, _, _, found := w.findNext(time.Now())
	if found {
		t.Fatal("did not expect a due bucket")
	}
}
