package availability

import "time"

// BusyInterval is a half-open busy period [Start, End) reported by a
// calendar. Intervals from different calendars may overlap.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Timeline is an ordered, non-overlapping sequence of busy intervals, as
// produced by Merge. For adjacent intervals i and i+1: i.End <= i+1.Start.
type Timeline []BusyInterval

// Window is the half-open search range [From, To) for free slots.
type Window struct {
	From time.Time
	To   time.Time
}

// WorkingHours restricts free slots to a daily working window. Hours are
// local to the timestamps being evaluated; the policy applies per calendar
// day and never spans midnight.
type WorkingHours struct {
	StartHour int // 0..23
	EndHour   int // 0..23, > StartHour
}

// FreeSlot is an available block of exactly the requested duration.
// GapMinutes records the length of the whole surrounding gap, which may
// exceed End-Start, for downstream ranking.
type FreeSlot struct {
	Start      time.Time
	End        time.Time
	GapMinutes int
}
