package scheduler

import (
	"time"

	"cognito-assistant/internal/model"
	"cognito-assistant/pkg/availability"
)

// RoutingDecision is the outcome of routing one task: the bucket it belongs
// to and, when a calendar slot could be found, the time block it should
// occupy. ScheduledSlot is nil when no slot fits the horizon; the bucket is
// always set.
type RoutingDecision struct {
	Bucket        model.Bucket
	ScheduledSlot *availability.FreeSlot
}

// SlotQueryInput asks for free slots of a given duration inside a window.
type SlotQueryInput struct {
	DurationMinutes int
	From            time.Time
	To              time.Time
	Limit           int
}

// ExecuteInput controls one run of the execution pipeline.
type ExecuteInput struct {
	DryRun      bool
	UseCalendar bool
}

// TaskResult records what happened to a single task during Execute.
type TaskResult struct {
	TaskID         string
	Subject        string
	Bucket         model.Bucket
	CardURL        string
	ScheduledStart *time.Time
	ScheduledEnd   *time.Time
	Err            string
}

// ExecuteOutput summarizes one pipeline run.
type ExecuteOutput struct {
	Processed       int
	CardsCreated    int
	EventsScheduled int
	Failed          int
	Results         []TaskResult
}
