package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cognito-assistant/internal/model"
	"cognito-assistant/internal/scheduler"
	"cognito-assistant/pkg/datemath"
	"cognito-assistant/pkg/gcalendar"
)

func newExecuteFixture(t *testing.T, calendar scheduler.CalendarProvider, board *mockBoard, repo *mockQueueRepo) *implUseCase {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatal(err)
	}
	return New(&mockLogger{}, calendar, board, repo, parser, Config{Timezone: "UTC"})
}

func TestExecute_CreatesCardsAndMarksTasks(t *testing.T) {
	board := newMockBoard()
	repo := newMockQueueRepo(
		model.Task{ID: "t1", Subject: "Review discharge summary", Domain: "Clinical", Priority: model.PriorityCritical},
		model.Task{ID: "t2", Subject: "Renew library card", Domain: "Home", Priority: model.PriorityLow},
	)
	uc := newExecuteFixture(t, nil, board, repo)

	out, err := uc.Execute(context.Background(), scheduler.ExecuteInput{})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if out.Processed != 2 || out.CardsCreated != 2 || out.Failed != 0 {
		t.Errorf("unexpected counts: %+v", out)
	}
	if len(board.cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(board.cards))
	}
	if board.cards[0].ListID != "list-today" {
		t.Errorf("critical task should land in today list, got %s", board.cards[0].ListID)
	}
	if board.cards[1].ListID != "list-later" {
		t.Errorf("low-priority task should land in later list, got %s", board.cards[1].ListID)
	}
	if !strings.HasPrefix(board.cards[0].Name, "🔴 [Critical]") {
		t.Errorf("unexpected card title %q", board.cards[0].Name)
	}
	if board.cards[0].LabelColor != "red" {
		t.Errorf("clinical label should be red, got %s", board.cards[0].LabelColor)
	}

	for _, id := range []string{"t1", "t2"} {
		opt, ok := repo.executed[id]
		if !ok {
			t.Errorf("task %s was not marked executed", id)
			continue
		}
		if opt.Status != model.ExecutionScheduled || opt.CardURL == "" {
			t.Errorf("task %s marked with %+v", id, opt)
		}
	}
}

func TestExecute_DryRun(t *testing.T) {
	board := newMockBoard()
	repo := newMockQueueRepo(
		model.Task{ID: "t1", Subject: "Draft ethics application", Priority: model.PriorityHigh},
	)
	uc := newExecuteFixture(t, nil, board, repo)

	out, err := uc.Execute(context.Background(), scheduler.ExecuteInput{DryRun: true})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if out.Processed != 1 || out.CardsCreated != 0 {
		t.Errorf("dry run should not create cards: %+v", out)
	}
	if len(board.cards) != 0 || len(repo.executed) != 0 {
		t.Errorf("dry run touched external state: cards=%d executed=%d", len(board.cards), len(repo.executed))
	}
	if out.Results[0].Bucket != model.BucketThisWeek {
		t.Errorf("dry run should still report routing, got %s", out.Results[0].Bucket)
	}
}

func TestExecute_CardFailureIsRecorded(t *testing.T) {
	board := newMockBoard()
	board.createErr = errors.New("trello down")
	repo := newMockQueueRepo(
		model.Task{ID: "t1", Subject: "Pay registration", Priority: model.PriorityNormal},
	)
	uc := newExecuteFixture(t, nil, board, repo)

	out, err := uc.Execute(context.Background(), scheduler.ExecuteInput{})
	if err != nil {
		t.Fatalf("a failing task must not abort the run: %v", err)
	}

	if out.Failed != 1 || out.CardsCreated != 0 {
		t.Errorf("unexpected counts: %+v", out)
	}
	if opt := repo.executed["t1"]; opt.Status != model.ExecutionFailed {
		t.Errorf("expected failed status recorded, got %+v", opt)
	}
	if out.Results[0].Err == "" {
		t.Error("expected error captured on the task result")
	}
}

func TestExecute_EmptyQueue(t *testing.T) {
	uc := newExecuteFixture(t, nil, newMockBoard(), newMockQueueRepo())

	out, err := uc.Execute(context.Background(), scheduler.ExecuteInput{})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if out.Processed != 0 || len(out.Results) != 0 {
		t.Errorf("expected empty output, got %+v", out)
	}
}

func TestExecute_ListFailure(t *testing.T) {
	repo := newMockQueueRepo()
	repo.listErr = errors.New("db gone")
	uc := newExecuteFixture(t, nil, newMockBoard(), repo)

	if _, err := uc.Execute(context.Background(), scheduler.ExecuteInput{}); err == nil {
		t.Fatal("expected error when the queue cannot be listed")
	}
}

func TestExecute_SchedulesTimeBlock(t *testing.T) {
	// Busy blocks tomorrow leave one free hour, 10:00 to 11:00 UTC. The gap
	// from now until tomorrow morning crosses midnight and never qualifies,
	// so the slot choice is stable regardless of when the test runs.
	y, m, d := time.Now().UTC().AddDate(0, 0, 1).Date()
	cal := &mockCalendar{busy: []gcalendar.BusyPeriod{
		{Start: time.Date(y, m, d, 9, 0, 0, 0, time.UTC), End: time.Date(y, m, d, 10, 0, 0, 0, time.UTC)},
		{Start: time.Date(y, m, d, 11, 0, 0, 0, time.UTC), End: time.Date(y, m, d, 17, 0, 0, 0, time.UTC)},
	}}
	board := newMockBoard()
	repo := newMockQueueRepo(
		model.Task{ID: "t1", Subject: "Write referral letter", Domain: "Clinical", Priority: model.PriorityHigh, EstimatedMinutes: 30},
	)
	uc := newExecuteFixture(t, cal, board, repo)

	out, err := uc.Execute(context.Background(), scheduler.ExecuteInput{UseCalendar: true})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if out.EventsScheduled != 1 {
		t.Fatalf("expected 1 event scheduled, got %d", out.EventsScheduled)
	}
	if len(cal.created) != 1 {
		t.Fatalf("expected 1 calendar event, got %d", len(cal.created))
	}
	if !strings.HasPrefix(cal.created[0].Summary, "🔒") {
		t.Errorf("time block summary should carry the lock marker, got %q", cal.created[0].Summary)
	}
	wantStart := time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
	if !cal.created[0].StartTime.Equal(wantStart) {
		t.Errorf("event start = %v, want %v", cal.created[0].StartTime, wantStart)
	}

	sched, ok := repo.schedules["t1"]
	if !ok {
		t.Fatal("schedule was not recorded on the queue row")
	}
	if !sched.Start.Equal(wantStart) || sched.EventID != "event-1" {
		t.Errorf("unexpected schedule record %+v", sched)
	}
	if out.Results[0].ScheduledStart == nil {
		t.Error("result should carry the scheduled start")
	}
}

func TestExecute_FreeBusyFailureDegradesToCardsOnly(t *testing.T) {
	cal := &mockCalendar{busyErr: errors.New("calendar api down")}
	board := newMockBoard()
	repo := newMockQueueRepo(
		model.Task{ID: "t1", Subject: "Sort photos", Domain: "Hobby", Priority: model.PriorityLow, EstimatedMinutes: 60},
	)
	uc := newExecuteFixture(t, cal, board, repo)

	out, err := uc.Execute(context.Background(), scheduler.ExecuteInput{UseCalendar: true})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if out.CardsCreated != 1 {
		t.Errorf("card should still be created, got %d", out.CardsCreated)
	}
	if out.EventsScheduled != 0 || len(cal.created) != 0 {
		t.Errorf("no events should be booked without a busy snapshot: %+v", out)
	}
}
