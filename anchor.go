package ticker

import "github.com/kosuga/ticker/internal/calendar"

// Anchor names the calendar rule a periodical job recurs on (§3). The
// monthly family (Month through Year) doubles its numeric value as a
// month stride — Month=1, TwoMonth=2, ..., Year=12 — so Ordinal*Anchor
// gives the number of months a single recurrence step advances by.
type Anchor = calendar.Anchor

// The monthly family.
const (
	Month       = calendar.Month
	TwoMonth    = calendar.TwoMonth
	Quarter     = calendar.Quarter
	FourMonth   = calendar.FourMonth
	FiveMonth   = calendar.FiveMonth
	SixMonth    = calendar.SixMonth
	SevenMonth  = calendar.SevenMonth
	EightMonth  = calendar.EightMonth
	NineMonth   = calendar.NineMonth
	TenMonth    = calendar.TenMonth
	ElevenMonth = calendar.ElevenMonth
	Year        = calendar.Year
)

// The sub-month and week-aligned anchors.
const (
	FirstThirdOfMonth  = calendar.FirstThirdOfMonth
	MiddleThirdOfMonth = calendar.MiddleThirdOfMonth
	LastThirdOfMonth   = calendar.LastThirdOfMonth
	DayInYear          = calendar.DayInYear
	WeekInMonth        = calendar.WeekInMonth
	WeekInYear         = calendar.WeekInYear
	Week               = calendar.Week
)
