package repository

import (
	"context"
	"time"

	"cognito-assistant/internal/model"
)

// QueueRepository persists inbox-queue tasks and their execution state.
type QueueRepository interface {
	// List returns queue tasks matching the options, newest first.
	List(ctx context.Context, opt ListOptions) ([]model.Task, error)

	// Insert adds a new task to the queue.
	Insert(ctx context.Context, task model.Task) error

	// MarkExecuted records the created board card and flips the execution
	// status.
	MarkExecuted(ctx context.Context, taskID string, opt MarkExecutedOptions) error

	// UpdateSchedule records the calendar event and the chosen time block.
	UpdateSchedule(ctx context.Context, taskID string, opt UpdateScheduleOptions) error
}

// MarkExecutedOptions carries the board-card outcome for a task.
type MarkExecutedOptions struct {
	CardID  string
	CardURL string
	Status  string // model.ExecutionScheduled or model.ExecutionFailed
}

// UpdateScheduleOptions carries the calendar outcome for a task.
type UpdateScheduleOptions struct {
	EventID string
	Start   time.Time
	End     time.Time
}
