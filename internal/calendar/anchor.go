package calendar

// Anchor names the recurrence rule a periodical job advances by (§3, §4.6).
// For the monthly family (Month through Year) the numeric value is the
// month stride; the non-monthly anchors after it don't carry stride
// semantics and only use their identity in the switch in Next.
type Anchor int

const (
	// None is the zero value; Next treats it as a no-op (returns the
	// reference instant unchanged). Builders never construct it directly.
	None Anchor = iota
	Month
	TwoMonth
	Quarter
	FourMonth
	FiveMonth
	SixMonth
	SevenMonth
	EightMonth
	NineMonth
	TenMonth
	ElevenMonth
	Year
	FirstThirdOfMonth
	MiddleThirdOfMonth
	LastThirdOfMonth
	DayInYear
	WeekInMonth
	WeekInYear
	Week
)

// monthly reports whether a belongs to the Month..Year family, where the
// anchor's integer value doubles as a month stride.
func (a Anchor) monthly() bool {
	return a >= Month && a <= Year
}

// stride returns the month-count a single ordinal step advances by, for
// the monthly anchor family. Only meaningful when a.monthly().
func (a Anchor) stride() int {
	return int(a)
}
