package availability

import "time"

// DefaultSlotLimit bounds slot results for a 7-day horizon when the caller
// passes limit <= 0.
const DefaultSlotLimit = 10

// FindSlots walks a merged timeline and returns free slots of exactly the
// requested duration inside the window, in chronological order, truncated
// to limit.
//
// A candidate gap qualifies only when it starts and ends on the same
// calendar day with both hours inside the working window; gaps crossing
// midnight or the working boundary are rejected whole, not split. Callers
// wanting multi-day coverage should query one day at a time.
func FindSlots(tl Timeline, duration time.Duration, window Window, policy WorkingHours, limit int) []FreeSlot {
	if limit <= 0 {
		limit = DefaultSlotLimit
	}
	if duration <= 0 || !window.From.Before(window.To) {
		return nil
	}

	var slots []FreeSlot
	cursor := window.From

	for _, busy := range tl {
		if len(slots) >= limit {
			return slots
		}
		if busy.Start.After(cursor) {
			gapEnd := busy.Start
			if gapEnd.After(window.To) {
				gapEnd = window.To
			}
			if slot, ok := qualify(cursor, gapEnd, duration, policy); ok {
				slots = append(slots, slot)
			}
		}
		if busy.End.After(cursor) {
			cursor = busy.End
		}
	}

	// Tail gap after the last busy interval.
	if len(slots) < limit && window.To.After(cursor) {
		if slot, ok := qualify(cursor, window.To, duration, policy); ok {
			slots = append(slots, slot)
		}
	}

	return slots
}

// qualify applies the working-hours and duration rules to one gap.
func qualify(gapStart, gapEnd time.Time, duration time.Duration, policy WorkingHours) (FreeSlot, bool) {
	if gapEnd.Sub(gapStart) < duration {
		return FreeSlot{}, false
	}
	if !sameDay(gapStart, gapEnd) {
		return FreeSlot{}, false
	}
	if gapStart.Hour() < policy.StartHour || gapEnd.Hour() > policy.EndHour {
		return FreeSlot{}, false
	}

	return FreeSlot{
		Start:      gapStart,
		End:        gapStart.Add(duration),
		GapMinutes: int(gapEnd.Sub(gapStart) / time.Minute),
	}, true
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
