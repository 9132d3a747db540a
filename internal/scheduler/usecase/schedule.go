package usecase

import (
	"context"
	"fmt"
	"time"

	"cognito-assistant/internal/model"
	"cognito-assistant/internal/scheduler"
	"cognito-assistant/pkg/availability"
	"cognito-assistant/pkg/gcalendar"
)

// Route assigns a task to a bucket from its priority and inferred deadline.
// An unparsable deadline downgrades routing to priority-only.
func (uc *implUseCase) Route(ctx context.Context, task model.Task, now time.Time) model.Bucket {
	deadline := uc.parseDeadline(ctx, task, now)
	return scheduler.ResolveBucket(task.Priority, deadline, now)
}

// Schedule routes the task and, when it has an estimated duration, attaches
// the earliest free slot from the busy-timeline snapshot. The decision always
// carries a bucket; ScheduledSlot stays nil when no slot fits the horizon.
func (uc *implUseCase) Schedule(ctx context.Context, task model.Task, timeline availability.Timeline, now time.Time) scheduler.RoutingDecision {
	decision := scheduler.RoutingDecision{
		Bucket: uc.Route(ctx, task, now),
	}

	if task.EstimatedMinutes <= 0 {
		return decision
	}

	window := availability.Window{
		From: now,
		To:   now.AddDate(0, 0, uc.cfg.HorizonDays),
	}
	duration := time.Duration(task.EstimatedMinutes) * time.Minute

	slots := availability.FindSlots(timeline, duration, window, uc.cfg.WorkingHours, 1)
	if len(slots) == 0 {
		uc.l.Debugf(ctx, "Schedule: no %dm slot within %d days for task %s", task.EstimatedMinutes, uc.cfg.HorizonDays, task.ID)
		return decision
	}

	decision.ScheduledSlot = &slots[0]
	return decision
}

// FreeSlots fetches busy data from the configured calendars, merges it into
// one timeline, and extracts free slots for the requested window.
func (uc *implUseCase) FreeSlots(ctx context.Context, input scheduler.SlotQueryInput) ([]availability.FreeSlot, error) {
	if input.DurationMinutes <= 0 {
		return nil, scheduler.ErrInvalidDuration
	}
	if !input.From.Before(input.To) {
		return nil, scheduler.ErrInvalidWindow
	}
	if uc.calendar == nil {
		// No calendar configured means an empty timeline: everything free.
		return availability.FindSlots(nil,
			time.Duration(input.DurationMinutes)*time.Minute,
			availability.Window{From: input.From, To: input.To},
			uc.cfg.WorkingHours, input.Limit), nil
	}

	periods, err := uc.calendar.FreeBusy(ctx, gcalendar.FreeBusyRequest{
		TimeMin:     input.From,
		TimeMax:     input.To,
		CalendarIDs: uc.cfg.CalendarIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query free/busy: %w", err)
	}

	timeline, err := availability.Merge(busyTimeline(periods))
	if err != nil {
		return nil, fmt.Errorf("failed to merge busy intervals: %w", err)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = uc.cfg.SlotLimit
	}

	return availability.FindSlots(timeline,
		time.Duration(input.DurationMinutes)*time.Minute,
		availability.Window{From: input.From, To: input.To},
		uc.cfg.WorkingHours, limit), nil
}

// busyTimeline converts calendar busy periods to the availability domain.
func busyTimeline(periods []gcalendar.BusyPeriod) availability.Timeline {
	tl := make(availability.Timeline, 0, len(periods))
	for _, p := range periods {
		tl = append(tl, availability.BusyInterval{Start: p.Start, End: p.End})
	}
	return tl
}
