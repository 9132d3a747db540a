package usecase

import (
	"context"
	"fmt"
	"time"

	"cognito-assistant/internal/model"
	"cognito-assistant/internal/scheduler"
	"cognito-assistant/internal/scheduler/repository"
	"cognito-assistant/pkg/availability"
	"cognito-assistant/pkg/gcalendar"
	"cognito-assistant/pkg/trello"
)

// Execute runs the pipeline over approved, not-yet-executed queue tasks:
// route each to a board list, create its card, and when calendar scheduling
// is on, book a time block in the first free slot. One failing task is
// recorded and skipped; it never aborts the run.
func (uc *implUseCase) Execute(ctx context.Context, input scheduler.ExecuteInput) (scheduler.ExecuteOutput, error) {
	now := time.Now().In(uc.dateMath.Location())

	tasks, err := uc.repo.List(ctx, repository.ListOptions{
		Status:          model.StatusApproved,
		ExecutionStatus: model.ExecutionPending,
	})
	if err != nil {
		return scheduler.ExecuteOutput{}, fmt.Errorf("failed to list pending tasks: %w", err)
	}
	if len(tasks) == 0 {
		uc.l.Infof(ctx, "Execute: no approved tasks pending execution")
		return scheduler.ExecuteOutput{}, nil
	}

	uc.l.Infof(ctx, "Execute: processing %d tasks dry_run=%v use_calendar=%v", len(tasks), input.DryRun, input.UseCalendar)

	var board trello.Board
	if !input.DryRun {
		if uc.board == nil {
			return scheduler.ExecuteOutput{}, fmt.Errorf("board client not configured")
		}
		board, err = uc.board.EnsureBoard(ctx)
		if err != nil {
			return scheduler.ExecuteOutput{}, fmt.Errorf("failed to prepare board: %w", err)
		}
	}

	// Calendar booking needs a trustworthy busy snapshot. Without one we
	// degrade to cards-only rather than booking over unseen meetings.
	useCalendar := input.UseCalendar && !input.DryRun
	var timeline availability.Timeline
	if useCalendar {
		if uc.calendar == nil {
			uc.l.Warnf(ctx, "Execute: calendar scheduling requested but no calendar client configured")
			useCalendar = false
		} else if timeline, err = uc.fetchTimeline(ctx, now); err != nil {
			uc.l.Warnf(ctx, "Execute: free/busy unavailable, degrading to cards-only: %v", err)
			useCalendar = false
		}
	}

	out := scheduler.ExecuteOutput{}
	for _, t := range tasks {
		result := uc.executeOne(ctx, t, board, &timeline, now, input.DryRun, useCalendar)

		out.Processed++
		if result.Err != "" {
			out.Failed++
		}
		if result.CardURL != "" {
			out.CardsCreated++
		}
		if result.ScheduledStart != nil {
			out.EventsScheduled++
		}
		out.Results = append(out.Results, result)
	}

	uc.l.Infof(ctx, "Execute: done processed=%d cards=%d events=%d failed=%d",
		out.Processed, out.CardsCreated, out.EventsScheduled, out.Failed)
	return out, nil
}

// executeOne handles a single task. The timeline pointer lets a booked slot
// block the same time for the rest of the run.
func (uc *implUseCase) executeOne(ctx context.Context, t model.Task, board trello.Board, timeline *availability.Timeline, now time.Time, dryRun, useCalendar bool) scheduler.TaskResult {
	result := scheduler.TaskResult{
		TaskID:  t.ID,
		Subject: t.Subject,
		Bucket:  uc.Route(ctx, t, now),
	}

	if dryRun {
		uc.l.Infof(ctx, "Execute: [dry-run] task %s -> %s", t.ID, result.Bucket)
		return result
	}

	card, err := uc.createCard(ctx, t, board, result.Bucket, now)
	if err != nil {
		uc.l.Warnf(ctx, "Execute: card creation failed for task %s: %v", t.ID, err)
		result.Err = err.Error()
		if markErr := uc.repo.MarkExecuted(ctx, t.ID, repository.MarkExecutedOptions{
			Status: model.ExecutionFailed,
		}); markErr != nil {
			uc.l.Errorf(ctx, "Execute: failed to record failure for task %s: %v", t.ID, markErr)
		}
		return result
	}
	result.CardURL = card.URL

	if err := uc.repo.MarkExecuted(ctx, t.ID, repository.MarkExecutedOptions{
		CardID:  card.ID,
		CardURL: card.URL,
		Status:  model.ExecutionScheduled,
	}); err != nil {
		uc.l.Errorf(ctx, "Execute: failed to mark task %s executed: %v", t.ID, err)
		result.Err = err.Error()
		return result
	}

	if useCalendar && t.EstimatedMinutes > 0 {
		t.TrelloCardURL = card.URL // event description links back to the card
		result.ScheduledStart, result.ScheduledEnd = uc.tryScheduleTimeBlock(ctx, t, timeline, now)
	}

	return result
}

// createCard builds and creates the board card for the task's bucket.
func (uc *implUseCase) createCard(ctx context.Context, t model.Task, board trello.Board, bucket model.Bucket, now time.Time) (*trello.Card, error) {
	listID, ok := board.Lists[string(bucket)]
	if !ok {
		return nil, fmt.Errorf("board has no list for bucket %q", bucket)
	}

	due := ""
	if d := uc.parseDeadline(ctx, t, now); d != nil {
		due = d.Format(time.RFC3339)
	}

	return uc.board.CreateCard(ctx, trello.CreateCardRequest{
		ListID:     listID,
		BoardID:    board.ID,
		Name:       buildCardTitle(t),
		Desc:       buildCardDescription(t),
		Due:        due,
		LabelName:  t.Domain,
		LabelColor: trello.DomainColors[t.Domain],
	})
}

// tryScheduleTimeBlock books the earliest free slot for the task and records
// it on the queue row. All failures are non-fatal: the card already exists,
// the time block is best-effort.
func (uc *implUseCase) tryScheduleTimeBlock(ctx context.Context, t model.Task, timeline *availability.Timeline, now time.Time) (*time.Time, *time.Time) {
	decision := uc.Schedule(ctx, t, *timeline, now)
	if decision.ScheduledSlot == nil {
		uc.l.Warnf(ctx, "Execute: no free slot for task %s (%dm), card created without time block", t.ID, t.EstimatedMinutes)
		return nil, nil
	}
	slot := decision.ScheduledSlot

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.cfg.CalendarID,
		Summary:     fmt.Sprintf("🔒 %s", t.Subject),
		Description: buildEventDescription(t),
		StartTime:   slot.Start,
		EndTime:     slot.End,
		Timezone:    uc.cfg.Timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "Execute: calendar event creation failed for task %s (non-fatal): %v", t.ID, err)
		return nil, nil
	}

	if err := uc.repo.UpdateSchedule(ctx, t.ID, repository.UpdateScheduleOptions{
		EventID: event.ID,
		Start:   slot.Start,
		End:     slot.End,
	}); err != nil {
		uc.l.Errorf(ctx, "Execute: failed to record schedule for task %s: %v", t.ID, err)
	}

	// Block the booked slot so later tasks in this run pick a different one.
	merged, mergeErr := availability.Merge(append(*timeline, availability.BusyInterval{Start: slot.Start, End: slot.End}))
	if mergeErr == nil {
		*timeline = merged
	}

	start, end := slot.Start, slot.End
	return &start, &end
}

// fetchTimeline pulls the merged busy timeline for the scheduling horizon.
func (uc *implUseCase) fetchTimeline(ctx context.Context, now time.Time) (availability.Timeline, error) {
	periods, err := uc.calendar.FreeBusy(ctx, gcalendar.FreeBusyRequest{
		TimeMin:     now,
		TimeMax:     now.AddDate(0, 0, uc.cfg.HorizonDays),
		CalendarIDs: uc.cfg.CalendarIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query free/busy: %w", err)
	}

	timeline, err := availability.Merge(busyTimeline(periods))
	if err != nil {
		return nil, fmt.Errorf("failed to merge busy intervals: %w", err)
	}
	return timeline, nil
}
