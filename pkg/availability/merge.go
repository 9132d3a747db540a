package availability

import (
	"fmt"
	"sort"
)

// Merge normalizes raw busy reports from any number of calendars into a
// single ordered, non-overlapping timeline. Input may be unsorted and may
// contain duplicates or overlaps. Merging an already-merged timeline is a
// no-op.
func Merge(raw []BusyInterval) (Timeline, error) {
	for _, iv := range raw {
		if !iv.Start.Before(iv.End) {
			return nil, fmt.Errorf("%w: [%s, %s)", ErrInvalidInterval,
				iv.Start.Format("2006-01-02T15:04:05"), iv.End.Format("2006-01-02T15:04:05"))
		}
	}

	if len(raw) == 0 {
		return Timeline{}, nil
	}

	sorted := make([]BusyInterval, len(raw))
	copy(sorted, raw)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start.Equal(sorted[j].Start) {
			return sorted[i].End.Before(sorted[j].End)
		}
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := make(Timeline, 0, len(sorted))
	current := sorted[0]
	for _, iv := range sorted[1:] {
		if !iv.Start.After(current.End) {
			// Overlapping or touching: extend the running interval.
			if iv.End.After(current.End) {
				current.End = iv.End
			}
			continue
		}
		merged = append(merged, current)
		current = iv
	}
	merged = append(merged, current)

	return merged, nil
}
