package scheduler

import (
	"time"

	"cognito-assistant/internal/model"
)

// routingRule is one entry of the ordered routing cascade. The first rule
// that matches decides the bucket.
type routingRule struct {
	Name  string
	Match func(p model.Priority, deadline *time.Time, now time.Time) (model.Bucket, bool)
}

// routingRules is evaluated top to bottom. Critical priority wins over any
// deadline; after that the deadline decides; priority is the tie-breaker
// only when no deadline exists.
var routingRules = []routingRule{
	{
		Name: "critical-priority",
		Match: func(p model.Priority, _ *time.Time, _ time.Time) (model.Bucket, bool) {
			return model.BucketToday, p == model.PriorityCritical
		},
	},
	{
		Name: "deadline-today",
		Match: func(_ model.Priority, d *time.Time, now time.Time) (model.Bucket, bool) {
			return model.BucketToday, d != nil && !d.After(EndOfDay(now))
		},
	},
	{
		Name: "deadline-tomorrow",
		Match: func(_ model.Priority, d *time.Time, now time.Time) (model.Bucket, bool) {
			return model.BucketTomorrow, d != nil && !d.After(EndOfDay(now.AddDate(0, 0, 1)))
		},
	},
	{
		Name: "deadline-this-week",
		Match: func(_ model.Priority, d *time.Time, now time.Time) (model.Bucket, bool) {
			return model.BucketThisWeek, d != nil && !d.After(EndOfDay(now.AddDate(0, 0, 7)))
		},
	},
	{
		Name: "deadline-later",
		Match: func(_ model.Priority, d *time.Time, _ time.Time) (model.Bucket, bool) {
			return model.BucketLater, d != nil
		},
	},
	{
		Name: "high-priority-no-deadline",
		Match: func(p model.Priority, d *time.Time, _ time.Time) (model.Bucket, bool) {
			return model.BucketThisWeek, d == nil && p == model.PriorityHigh
		},
	},
}

// ResolveBucket assigns a task to a work-list bucket from its priority and
// parsed deadline. Pure: the same inputs always yield the same bucket.
// A nil deadline means none was inferred or it could not be parsed.
func ResolveBucket(p model.Priority, deadline *time.Time, now time.Time) model.Bucket {
	for _, rule := range routingRules {
		if bucket, ok := rule.Match(p, deadline, now); ok {
			return bucket
		}
	}
	return model.BucketLater
}

// EndOfDay returns 23:59:59 on t's calendar date, in t's own location.
// Callers are responsible for now and deadline sharing a time zone.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
