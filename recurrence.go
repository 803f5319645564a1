package ticker

import "github.com/kosuga/ticker/internal/calendar"

// RecurrenceSpec describes a single calendar-anchored recurrence rule
// (§3): a periodical job advances Ordinal steps of Anchor, landing on
// day/weekday Offset within each step. Times records how many firings
// the caller intends but is never consulted by the runner (§9); jobs
// that need a firing cap track their own hit count and cancel
// themselves once it's reached.
type RecurrenceSpec = calendar.Spec
