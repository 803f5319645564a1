package calendar

// Spec describes a single calendar-anchored recurrence rule (§3): advance
// by Ordinal steps of Anchor, landing on day/weekday Offset within each
// step. Times bounds how many times the rule is meant to fire; the
// engine itself never consults it (§9) — callers that want a firing cap
// enforce it themselves by counting hits.
type Spec struct {
	Anchor  Anchor
	Offset  int
	Ordinal int
	Times   int
}
