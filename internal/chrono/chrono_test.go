package chrono_test

import (
	"testing"
	"time"

	"github.com/kosuga/ticker/internal/chrono"
)

func TestResolveAt_BareClockRollsForwardWhenAlreadyPast(t *testing.T) {
	loc := chrono.Location{}
	now := time.Date(2021, time.August, 5, 15, 0, 0, 0, time.Local)

	got, err := loc.ResolveAt("09:00:00", now)
	if err != nil {
		t.Fatalf("ResolveAt: %v", err)
	}

	want := time.Date(2021, time.August, 6, 9, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestResolveAt_BareClockFiresTodayWhenStillAhead(t *testing.T) {
	loc := chrono.Location{}
	now := time.Date(2021, time.August, 5, 8, 0, 0, 0, time.Local)

	got, err := loc.ResolveAt("09:00:00", now)
	if err != nil {
		t.Fatalf("ResolveAt: %v", err)
	}

	want := time.Date(2021, time.August, 5, 9, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestResolveAt_FullTimestampBothSeparatorStyles(t *testing.T) {
	loc := chrono.Location{}
	now := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.Local)

	dash, err := loc.ResolveAt("2021-08-05 09:00:00", now)
	if err != nil {
		t.Fatalf("dash form: %v", err)
	}
	slash, err := loc.ResolveAt("2021/08/05 09:00:00", now)
	if err != nil {
		t.Fatalf("slash form: %v", err)
	}
	if !dash.Equal(slash) {
		t.Fatalf("dash form %s and slash form %s disagree", dash, slash)
	}
}

func TestResolveAt_UnrecognizedFormatFails(t *testing.T) {
	loc := chrono.Location{}
	if _, err := loc.ResolveAt("not a time", time.Now()); err == nil {
		t.Fatal("expected an error for an unparseable string")
	}
}

func TestCompareDatePart(t *testing.T) {
	a := time.Date(2021, time.August, 5, 23, 59, 0, 0, time.UTC)
	b := time.Date(2021, time.August, 5, 0, 1, 0, 0, time.UTC)
	if chrono.CompareDatePart(a, b) != 0 {
		t.Fatal("expected same-day instants to compare equal at day granularity")
	}

	c := time.Date(2021, time.August, 6, 0, 0, 0, 0, time.UTC)
	if chrono.CompareDatePart(a, c) >= 0 {
		t.Fatal("expected earlier date to compare less than later date")
	}
}
