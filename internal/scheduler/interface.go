package scheduler

import (
	"context"
	"time"

	"cognito-assistant/internal/model"
	"cognito-assistant/pkg/availability"
	"cognito-assistant/pkg/gcalendar"
	"cognito-assistant/pkg/trello"
)

// UseCase is the scheduler domain contract.
type UseCase interface {
	// Route assigns a bucket from priority and deadline. Side-effect free.
	Route(ctx context.Context, task model.Task, now time.Time) model.Bucket

	// Schedule routes the task and, when it needs a time block, attaches
	// the earliest free slot from the given busy-timeline snapshot.
	Schedule(ctx context.Context, task model.Task, timeline availability.Timeline, now time.Time) RoutingDecision

	// FreeSlots fetches busy data from the calendars, merges it, and
	// returns free slots for the requested window.
	FreeSlots(ctx context.Context, input SlotQueryInput) ([]availability.FreeSlot, error)

	// Execute runs the pipeline: pending tasks -> board cards -> calendar
	// time blocks -> queue updates.
	Execute(ctx context.Context, input ExecuteInput) (ExecuteOutput, error)
}

// CalendarProvider is the slice of the Google Calendar client the scheduler
// needs. Declared here so use cases can be tested against fakes.
type CalendarProvider interface {
	FreeBusy(ctx context.Context, req gcalendar.FreeBusyRequest) ([]gcalendar.BusyPeriod, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// BoardProvider maps buckets to board lists and creates cards. The concrete
// implementation is the Trello client; the scheduler only sees list IDs.
type BoardProvider interface {
	EnsureBoard(ctx context.Context) (trello.Board, error)
	CreateCard(ctx context.Context, req trello.CreateCardRequest) (*trello.Card, error)
}
