// Package calendar implements the periodical job's recurrence engine:
// given a rule (Spec) and the last-known reference and fire instants, it
// computes the next calendar-aligned instant the job should run at.
//
// The arithmetic here is ported from ticker-cxx's periodical-job switch
// statement (see original_source/include/ticker_cxx/ticker-periodical-job.hh
// in the retrieval pack this module was built from), anchor by anchor.
// Two quirks of that source are preserved on purpose rather than fixed —
// see the Week case and the doc comment of findNext in internal/wheel for
// the other —
// because the spec this engine implements calls them out as pinned
// behavior, not accidents.
package calendar

import "time"

// brokenDown mirrors the handful of struct-tm fields the original engine
// switches on. yearDay is 0-based (days since Jan 1, tm_yday convention),
// not Go's 1-based Time.YearDay(); weekday is 0 (Sunday) through 6.
type brokenDown struct {
	Year, Month, Day int
	Hour, Min, Sec   int
	Weekday          int
	YearDay          int
}

func breakDown(t time.Time) brokenDown {
	return brokenDown{
		Year: t.Year(), Month: int(t.Month()), Day: t.Day(),
		Hour: t.Hour(), Min: t.Minute(), Sec: t.Second(),
		Weekday: int(t.Weekday()),
		YearDay: t.YearDay() - 1,
	}
}

// Next computes the next instant a periodical job anchored by spec should
// fire at, given the instant it's being evaluated at (reference, usually
// "now") and the instant it last fired at (lastFire, the zero Time if it
// has never fired). loc pins whether the arithmetic runs in UTC or local
// time (§4.6).
//
// Per §4.6's idempotence invariant, if reference is before lastFire the
// result is lastFire unchanged — a job is never told to rewind.
func Next(spec Spec, reference, lastFire time.Time, loc *time.Location) time.Time {
	if !lastFire.IsZero() && reference.Before(lastFire) {
		return lastFire
	}

	ref := reference.In(loc)
	bd := breakDown(ref)
	offset := spec.Offset
	ordinal := spec.Ordinal
	if ordinal == 0 {
		ordinal = 1
	}

	var result time.Time

	switch {
	case spec.Anchor.monthly():
		delta := ordinal * spec.Anchor.stride()
		switch {
		case offset > 0:
			mon := bd.Month
			if bd.Day >= offset {
				mon += delta
			}
			result = time.Date(bd.Year, time.Month(mon), offset, bd.Hour, bd.Min, bd.Sec, 0, loc)
		case spec.Anchor < Year:
			result = lastDayAtThisMonth(bd, -offset, delta, loc)
		default:
			result = lastDayAtThisYear(bd, -offset, loc)
		}
		if !result.After(ref) {
			result = result.AddDate(0, 1, 0)
		}

	case spec.Anchor == FirstThirdOfMonth:
		delta := ordinal
		day := offset
		if offset <= 0 {
			day = 11 + offset
		}
		mon := bd.Month
		if bd.Day >= day {
			mon += delta
		}
		result = time.Date(bd.Year, time.Month(mon), day, bd.Hour, bd.Min, bd.Sec, 0, loc)

	case spec.Anchor == MiddleThirdOfMonth:
		delta := ordinal
		day := offset
		if offset > 0 {
			day = 10 + offset
		} else {
			day = 21 + offset
		}
		mon := bd.Month
		if bd.Day >= day {
			mon += delta
		}
		result = time.Date(bd.Year, time.Month(mon), day, bd.Hour, bd.Min, bd.Sec, 0, loc)

	case spec.Anchor == LastThirdOfMonth:
		delta := ordinal
		if offset > 0 {
			day := 20 + offset
			mon := bd.Month
			if bd.Day >= day {
				mon += delta
			}
			result = time.Date(bd.Year, time.Month(mon), day, bd.Hour, bd.Min, bd.Sec, 0, loc)
		} else {
			ofs := -offset
			tmp := lastDayAtThisMonth(bd, ofs, delta-1, loc)
			if tmp.Day() >= ofs {
				result = lastDayAtThisMonth(bd, ofs, delta, loc)
			} else {
				result = time.Date(tmp.Year(), tmp.Month(), tmp.Day()-ofs, tmp.Hour(), tmp.Minute(), tmp.Second(), 0, loc)
			}
		}
		if !lastFire.IsZero() && result.Before(lastFire) {
			result = result.AddDate(0, 1, 0)
		}

	case spec.Anchor == DayInYear:
		var t time.Time
		ofs := offset
		if offset > 0 {
			t = ref
		} else {
			ofs = -offset
			t = lastDayAtThisYear(bd, ofs, loc)
			bd = breakDown(t)
		}
		if bd.YearDay > ofs {
			t = t.AddDate(0, 0, ofs-bd.Weekday)
		} else {
			t = t.AddDate(0, 0, ordinal+bd.YearDay+1-bd.Weekday)
		}
		result = t

	case spec.Anchor == WeekInMonth:
		if offset > 0 {
			result = weekInPeriod(time.Date(bd.Year, time.Month(bd.Month), 1, bd.Hour, bd.Min, bd.Sec, 0, loc), offset, ordinal)
		} else {
			tmp := lastDayAtThisMonth(bd, -offset, 1, loc)
			result = weekBeforePeriodEnd(tmp, -offset, ordinal)
		}

	case spec.Anchor == WeekInYear:
		if offset > 0 {
			result = weekInPeriod(time.Date(bd.Year, time.January, 1, bd.Hour, bd.Min, bd.Sec, 0, loc), offset, ordinal)
		} else {
			tmp := lastDayAtThisYear(bd, -offset, loc)
			result = weekBeforePeriodEnd(tmp, -offset, ordinal)
		}

	case spec.Anchor == Week:
		var dayDelta int
		if offset > 0 {
			if bd.Weekday > offset {
				dayDelta = bd.Weekday - offset
			} else {
				dayDelta = offset - bd.Weekday + 7
			}
		} else {
			ofs := 7 + offset
			if bd.Weekday > ofs {
				dayDelta = bd.Weekday - ofs
			} else {
				dayDelta = ofs - bd.Weekday + 7
			}
		}
		result = ref.AddDate(0, 0, dayDelta)

	default:
		result = ref
	}

	return result
}

// lastDayAtThisMonth returns the offsetFromEnd-th-to-last day of the
// month that is monthsAhead months ahead of bd's month, counting bd's own
// month as 1 (so monthsAhead=1 means "this month", not "next month").
// offsetFromEnd=1 is the last day of that month, 2 the second-to-last,
// and so on.
func lastDayAtThisMonth(bd brokenDown, offsetFromEnd, monthsAhead int, loc *time.Location) time.Time {
	first := time.Date(bd.Year, time.Month(bd.Month+monthsAhead), 1, bd.Hour, bd.Min, bd.Sec, 0, loc)
	lastDay := first.AddDate(0, 0, -1)
	return lastDay.AddDate(0, 0, -(offsetFromEnd - 1))
}

// lastDayAtThisYear returns the offsetFromEnd-th-to-last day of bd's
// year: offsetFromEnd=1 is December 31st.
func lastDayAtThisYear(bd brokenDown, offsetFromEnd int, loc *time.Location) time.Time {
	dec31 := time.Date(bd.Year+1, time.January, 1, bd.Hour, bd.Min, bd.Sec, 0, loc).AddDate(0, 0, -1)
	return dec31.AddDate(0, 0, -(offsetFromEnd - 1))
}

// weekInPeriod finds the first day after periodStart whose weekday is
// ordinal (0=Sunday); a periodStart already on that weekday yields the
// following week's. It then advances offset-1 further weeks (offset=0
// treated as 1, i.e. the first occurrence).
func weekInPeriod(periodStart time.Time, offset, ordinal int) time.Time {
	remaining := offset
	if remaining == 0 {
		remaining = 1
	}
	startWeekday := int(periodStart.Weekday())
	var t time.Time
	if startWeekday < ordinal {
		t = periodStart.AddDate(0, 0, ordinal-startWeekday)
	} else {
		t = periodStart.AddDate(0, 0, ordinal+7-startWeekday)
	}
	remaining--
	if remaining > 0 {
		t = t.AddDate(0, 0, remaining*7)
	}
	return t
}

// weekBeforePeriodEnd mirrors weekInPeriod's arithmetic but counts
// backward from periodEnd instead of forward. Callers pass the
// offset-th-to-last day of the month/year as periodEnd (the last day
// when offset is 1).
func weekBeforePeriodEnd(periodEnd time.Time, offset, ordinal int) time.Time {
	remaining := offset
	endWeekday := int(periodEnd.Weekday())
	t := periodEnd
	if endWeekday < ordinal {
		t = t.AddDate(0, 0, -(ordinal - endWeekday))
	} else {
		t = t.AddDate(0, 0, -(ordinal + 7 - endWeekday))
	}
	remaining--
	if remaining > 0 {
		t = t.AddDate(0, 0, -(remaining * 7))
	}
	return t
}
