package scheduler

import (
	"testing"
	"time"

	"cognito-assistant/internal/model"
)

// now is Monday 2026-01-12 10:00 UTC for all routing tests.
var now = time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC)

func deadline(t time.Time) *time.Time { return &t }

func TestResolveBucket(t *testing.T) {
	tests := []struct {
		name     string
		priority model.Priority
		deadline *time.Time
		want     model.Bucket
	}{
		{
			name:     "critical wins over distant deadline",
			priority: model.PriorityCritical,
			deadline: deadline(now.AddDate(0, 0, 10)),
			want:     model.BucketToday,
		},
		{
			name:     "critical without deadline",
			priority: model.PriorityCritical,
			want:     model.BucketToday,
		},
		{
			name:     "deadline later today",
			priority: model.PriorityNormal,
			deadline: deadline(time.Date(2026, 1, 12, 17, 0, 0, 0, time.UTC)),
			want:     model.BucketToday,
		},
		{
			name:     "overdue deadline routes to today",
			priority: model.PriorityLow,
			deadline: deadline(now.AddDate(0, 0, -2)),
			want:     model.BucketToday,
		},
		{
			name:     "deadline end of today boundary",
			priority: model.PriorityNormal,
			deadline: deadline(time.Date(2026, 1, 12, 23, 59, 59, 0, time.UTC)),
			want:     model.BucketToday,
		},
		{
			name:     "deadline tomorrow",
			priority: model.PriorityNormal,
			deadline: deadline(time.Date(2026, 1, 13, 9, 0, 0, 0, time.UTC)),
			want:     model.BucketTomorrow,
		},
		{
			name:     "deadline within the week",
			priority: model.PriorityNormal,
			deadline: deadline(time.Date(2026, 1, 16, 12, 0, 0, 0, time.UTC)),
			want:     model.BucketThisWeek,
		},
		{
			name:     "deadline exactly seven days out",
			priority: model.PriorityNormal,
			deadline: deadline(time.Date(2026, 1, 19, 23, 59, 59, 0, time.UTC)),
			want:     model.BucketThisWeek,
		},
		{
			name:     "deadline beyond the week",
			priority: model.PriorityHigh,
			deadline: deadline(time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC)),
			want:     model.BucketLater,
		},
		{
			name:     "high priority without deadline",
			priority: model.PriorityHigh,
			want:     model.BucketThisWeek,
		},
		{
			name:     "normal priority without deadline",
			priority: model.PriorityNormal,
			want:     model.BucketLater,
		},
		{
			name:     "low priority without deadline",
			priority: model.PriorityLow,
			want:     model.BucketLater,
		},
		{
			name:     "unknown priority without deadline",
			priority: model.Priority("urgent-ish"),
			want:     model.BucketLater,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveBucket(tt.priority, tt.deadline, now)
			if got != tt.want {
				t.Errorf("ResolveBucket(%s, %v) = %s, want %s", tt.priority, tt.deadline, got, tt.want)
			}
		})
	}
}

func TestResolveBucket_Pure(t *testing.T) {
	d := deadline(time.Date(2026, 1, 14, 9, 0, 0, 0, time.UTC))
	first := ResolveBucket(model.PriorityNormal, d, now)
	for i := 0; i < 5; i++ {
		if got := ResolveBucket(model.PriorityNormal, d, now); got != first {
			t.Fatalf("routing is not deterministic: %s then %s", first, got)
		}
	}
}

func TestEndOfDay(t *testing.T) {
	loc, err := time.LoadLocation("Australia/Melbourne")
	if err != nil {
		t.Fatal(err)
	}
	in := time.Date(2026, 1, 12, 3, 4, 5, 0, loc)
	got := EndOfDay(in)
	want := time.Date(2026, 1, 12, 23, 59, 59, 0, loc)
	if !got.Equal(want) {
		t.Errorf("EndOfDay(%v) = %v, want %v", in, got, want)
	}
	if got.Location() != loc {
		t.Errorf("EndOfDay changed location to %v", got.Location())
	}
}
