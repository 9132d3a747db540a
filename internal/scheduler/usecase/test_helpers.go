package usecase

import (
	"context"

	"cognito-assistant/internal/model"
	"cognito-assistant/internal/scheduler/repository"
	"cognito-assistant/pkg/gcalendar"
	"cognito-assistant/pkg/trello"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock calendar provider for testing
type mockCalendar struct {
	busy        []gcalendar.BusyPeriod
	busyErr     error
	created     []gcalendar.CreateEventRequest
	createErr   error
	freeBusyReq *gcalendar.FreeBusyRequest
}

func (m *mockCalendar) FreeBusy(ctx context.Context, req gcalendar.FreeBusyRequest) ([]gcalendar.BusyPeriod, error) {
	m.freeBusyReq = &req
	return m.busy, m.busyErr
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{
		ID:        "event-1",
		Summary:   req.Summary,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}

// Mock board provider for testing
type mockBoard struct {
	board     trello.Board
	ensureErr error
	cards     []trello.CreateCardRequest
	createErr error
}

func newMockBoard() *mockBoard {
	return &mockBoard{
		board: trello.Board{
			ID:   "board-1",
			Name: "Cognito Task Queue",
			Lists: map[string]string{
				trello.ListKeyToday:     "list-today",
				trello.ListKeyTomorrow:  "list-tomorrow",
				trello.ListKeyThisWeek:  "list-this-week",
				trello.ListKeyLater:     "list-later",
				trello.ListKeyCompleted: "list-completed",
			},
		},
	}
}

func (m *mockBoard) EnsureBoard(ctx context.Context) (trello.Board, error) {
	if m.ensureErr != nil {
		return trello.Board{}, m.ensureErr
	}
	return m.board, nil
}

func (m *mockBoard) CreateCard(ctx context.Context, req trello.CreateCardRequest) (*trello.Card, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.cards = append(m.cards, req)
	return &trello.Card{ID: "card-1", URL: "https://trello.test/c/card-1"}, nil
}

// Mock queue repository for testing
type mockQueueRepo struct {
	tasks     []model.Task
	listErr   error
	executed  map[string]repository.MarkExecutedOptions
	schedules map[string]repository.UpdateScheduleOptions
	markErr   error
}

func newMockQueueRepo(tasks ...model.Task) *mockQueueRepo {
	return &mockQueueRepo{
		tasks:     tasks,
		executed:  map[string]repository.MarkExecutedOptions{},
		schedules: map[string]repository.UpdateScheduleOptions{},
	}
}

func (m *mockQueueRepo) List(ctx context.Context, opt repository.ListOptions) ([]model.Task, error) {
	return m.tasks, m.listErr
}

func (m *mockQueueRepo) Insert(ctx context.Context, task model.Task) error {
	m.tasks = append(m.tasks, task)
	return nil
}

func (m *mockQueueRepo) MarkExecuted(ctx context.Context, taskID string, opt repository.MarkExecutedOptions) error {
	if m.markErr != nil {
		return m.markErr
	}
	m.executed[taskID] = opt
	return nil
}

func (m *mockQueueRepo) UpdateSchedule(ctx context.Context, taskID string, opt repository.UpdateScheduleOptions) error {
	m.schedules[taskID] = opt
	return nil
}
