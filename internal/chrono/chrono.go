// Package chrono holds the small time-parsing and formatting helpers the
// scheduler's builders and logs need (§6 chrono helper contract). The
// calendar engine's own date arithmetic lives in internal/calendar — this
// package only covers what's shared outside it: parsing user-supplied
// clock strings and formatting time values for logs.
package chrono

import (
	"fmt"
	"time"
)

// Location pins whether calendar math in this scheduler instance runs in
// UTC or local time (§4.6's GMT flag), fixed for the scheduler's lifetime.
type Location struct {
	UTC bool
}

// Loc returns the time.Location this instance computes in.
func (l Location) Loc() *time.Location {
	if l.UTC {
		return time.UTC
	}
	return time.Local
}

var parseLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"15:04:05",
	"15:04",
}

// ParseDatetime parses a user-supplied date/time string against a fixed
// set of layouts (full timestamp, bare date, or bare clock-of-day); the
// builders use ResolveAt instead. Bare clock-of-day values are anchored to the zero date
// (year 0, month 1, day 1); callers combining them with "today" should
// overlay year/month/day themselves.
func (l Location) ParseDatetime(s string) (time.Time, error) {
	if t, ok := l.TryParseBy(s, parseLayouts...); ok {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("chrono: cannot parse %q as a date or time", s)
}

// TryParseBy attempts each layout in order, returning the first that
// parses successfully.
func (l Location) TryParseBy(s string, layouts ...string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, l.Loc()); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// atStringLayouts are the full-timestamp patterns TimerBuilder.AtString
// accepts (§4.8), in either separator style. ResolveAt handles the bare
// clock-of-day form separately.
var atStringLayouts = []string{
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
}

// ResolveAt parses s against the patterns a timer's at(string) accepts
// (§4.8): "HH:MM:SS", "YYYY-MM-DD HH:MM:SS", or "YYYY/MM/DD HH:MM:SS". A
// bare clock-of-day is anchored to now's calendar date. Whatever pattern
// matches, if the resolved instant is not after now it rolls forward 24h
// (§8 property 10: a time already past today fires tomorrow). Returns an
// error — the Configuration error of §7 — if no pattern matches.
func (l Location) ResolveAt(s string, now time.Time) (time.Time, error) {
	loc := l.Loc()
	for _, layout := range atStringLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return rollIfPast(t, now), nil
		}
	}
	if t, err := time.ParseInLocation("15:04:05", s, loc); err == nil {
		anchored := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
		return rollIfPast(anchored, now), nil
	}
	return time.Time{}, fmt.Errorf("chrono: %q matches none of HH:MM:SS, YYYY-MM-DD HH:MM:SS, YYYY/MM/DD HH:MM:SS", s)
}

func rollIfPast(t, now time.Time) time.Time {
	if !t.After(now) {
		return t.AddDate(0, 0, 1)
	}
	return t
}

// CompareDatePart compares two instants at day granularity only (year,
// month, day), ignoring time-of-day and location. Returns -1, 0 or 1.
func CompareDatePart(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	switch {
	case ay != by:
		return sign(ay - by)
	case am != bm:
		return sign(int(am) - int(bm))
	default:
		return sign(ad - bd)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// FormatTimePoint renders a time value the way log lines and debug
// output do throughout the scheduler.
func FormatTimePoint(t time.Time) string {
	return t.Format(time.RFC3339)
}

// FormatDuration renders a duration the way log lines do.
func FormatDuration(d time.Duration) string {
	return d.String()
}
