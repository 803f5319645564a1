package calendar_test

import (
	"testing"
	"time"

	"github.com/kosuga/ticker/internal/calendar"
)

func parse(t *testing.T, s string) time.Time {
	t.Helper()
	tm, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return tm
}

func sameDate(t *testing.T, got time.Time, want string) {
	t.Helper()
	w := parse(t, want)
	if got.Year() != w.Year() || got.Month() != w.Month() || got.Day() != w.Day() {
		t.Fatalf("got %s, want date %s", got.Format("2006-01-02"), want)
	}
}

// Scenarios S1-S4 and S6: day 3/-15/-15/-15/-7/8 offsets against Month,
// Year, FirstThirdOfMonth and MiddleThirdOfMonth anchors. S5
// (LastThirdOfMonth) is TestNext_LastThirdOfMonth below.
func TestNext_PinnedScenarios(t *testing.T) {
	cases := []struct {
		name      string
		spec      calendar.Spec
		reference string
		want      string
	}{
		{"S1 day 3 every month", calendar.Spec{Anchor: calendar.Month, Offset: 3, Ordinal: 1}, "2021-08-05", "2021-09-03"},
		{"S2a day -15 every month, before target", calendar.Spec{Anchor: calendar.Month, Offset: -15, Ordinal: 1}, "2021-08-05", "2021-08-17"},
		{"S2b day -15 every month, on target", calendar.Spec{Anchor: calendar.Month, Offset: -15, Ordinal: 1}, "2021-08-17", "2021-09-17"},
		{"S3 day -15 every year", calendar.Spec{Anchor: calendar.Year, Offset: -15, Ordinal: 1}, "2021-08-05", "2021-12-17"},
		{"S4 first third of month, day -7", calendar.Spec{Anchor: calendar.FirstThirdOfMonth, Offset: -7, Ordinal: 1}, "2021-08-05", "2021-09-04"},
		{"S6 middle third of month, day 8", calendar.Spec{Anchor: calendar.MiddleThirdOfMonth, Offset: 8, Ordinal: 1}, "2021-08-15", "2021-08-18"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ref := parse(t, c.reference)
			got := calendar.Next(c.spec, ref, time.Time{}, time.Local)
			sameDate(t, got, c.want)
		})
	}
}

func TestNext_LastThirdOfMonth(t *testing.T) {
	spec := calendar.Spec{Anchor: calendar.LastThirdOfMonth, Offset: -9, Ordinal: 1}
	ref := parse(t, "2021-08-25")
	got := calendar.Next(spec, ref, ref, time.Local)
	sameDate(t, got, "2021-09-23")
}

// Next must never return an instant before lastFire (§4.6's idempotence
// invariant): re-evaluating with an earlier reference than the last
// fire just echoes the last fire back.
func TestNext_IdempotentAgainstEarlierReference(t *testing.T) {
	spec := calendar.Spec{Anchor: calendar.Month, Offset: 3, Ordinal: 1}
	lastFire := parse(t, "2021-09-03")
	earlierRef := parse(t, "2021-08-20")

	got := calendar.Next(spec, earlierRef, lastFire, time.Local)
	if !got.Equal(lastFire) {
		t.Fatalf("got %s, want lastFire %s unchanged", got, lastFire)
	}
}

// The Week anchor's day-delta formula compares with > rather than >=, a
// deliberately preserved quirk of the engine this was ported from: when
// the reference instant falls exactly on the requested weekday, Next
// still advances a full week rather than firing immediately.
func TestNext_WeekAnchorSameWeekdayQuirk(t *testing.T) {
	// 2021-08-05 is a Thursday (weekday 4).
	ref := parse(t, "2021-08-05")
	spec := calendar.Spec{Anchor: calendar.Week, Offset: 4, Ordinal: 1}

	got := calendar.Next(spec, ref, time.Time{}, time.Local)

	// bd.Weekday(4) > offset(4) is false, so dayDelta = offset - weekday
	// + 7 = 7: a full week later, not the same day.
	sameDate(t, got, "2021-08-12")
}

func TestNext_DayInYearAdvancesPastRequestedDay(t *testing.T) {
	spec := calendar.Spec{Anchor: calendar.DayInYear, Offset: 10, Ordinal: 1}
	ref := parse(t, "2021-08-05")

	got := calendar.Next(spec, ref, time.Time{}, time.Local)

	if got.Year() < ref.Year() {
		t.Fatalf("got year %d before reference year %d", got.Year(), ref.Year())
	}
}
