package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"cognito-assistant/internal/model"
	"cognito-assistant/internal/recurring"
	"cognito-assistant/internal/recurring/repository"
)

// Generate materializes every active template due within the lookahead
// window. A template with a broken schedule or a failed insert is skipped;
// it never aborts the run.
func (uc *implUseCase) Generate(ctx context.Context, now time.Time) (recurring.GenerateOutput, error) {
	horizon := now.AddDate(0, 0, uc.lookahead)

	templates, err := uc.templates.ListDue(ctx, horizon)
	if err != nil {
		return recurring.GenerateOutput{}, fmt.Errorf("failed to list due templates: %w", err)
	}

	out := recurring.GenerateOutput{TemplatesDue: len(templates)}
	if len(templates) == 0 {
		uc.l.Debugf(ctx, "Generate: no templates due before %s", horizon.Format(time.RFC3339))
		return out, nil
	}

	uc.l.Infof(ctx, "Generate: %d templates due within %d days", len(templates), uc.lookahead)

	for _, tpl := range templates {
		next, err := nextDue(tpl.Schedule, tpl.NextDueAt, now)
		if err != nil {
			uc.l.Warnf(ctx, "Generate: template %s has bad schedule %q, skipping: %v", tpl.ID, tpl.Schedule, err)
			out.Skipped++
			continue
		}

		task := taskFromTemplate(tpl, now)
		if err := uc.queue.Insert(ctx, task); err != nil {
			uc.l.Errorf(ctx, "Generate: failed to enqueue task for template %s: %v", tpl.ID, err)
			out.Skipped++
			continue
		}

		if err := uc.templates.MarkGenerated(ctx, tpl.ID, repository.MarkGeneratedOptions{
			NextDueAt:   next,
			GeneratedAt: now,
		}); err != nil {
			// Task exists but the template did not advance; the next run will
			// generate a duplicate. Loud log so it gets noticed.
			uc.l.Errorf(ctx, "Generate: failed to advance template %s, duplicate likely on next run: %v", tpl.ID, err)
		}

		out.Generated++
		out.Tasks = append(out.Tasks, recurring.GeneratedTask{
			TemplateID: tpl.ID,
			TaskID:     task.ID,
			Title:      tpl.Title,
		})
		uc.l.Infof(ctx, "Generate: created task %s from template %q, next due %s", task.ID, tpl.Title, next.Format(time.RFC3339))
	}

	return out, nil
}

// nextDue advances the cron schedule past now, starting from the template's
// current due time so overdue templates do not drift.
func nextDue(schedule string, from, now time.Time) (time.Time, error) {
	sched, err := cron.ParseStandard(schedule)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", recurring.ErrInvalidSchedule, err)
	}

	next := sched.Next(from)
	for !next.After(now) {
		next = sched.Next(next)
	}
	return next, nil
}

// taskFromTemplate builds the queue task a template stamps out. Generated
// tasks are pre-approved: they skip human triage and go straight to the
// execution pipeline.
func taskFromTemplate(tpl model.RecurringTemplate, now time.Time) model.Task {
	return model.Task{
		ID:               uuid.New().String(),
		Subject:          tpl.Title,
		Sender:           "recurring",
		Domain:           tpl.Domain,
		Summary:          tpl.Summary,
		SuggestedAction:  tpl.SuggestedAction,
		Priority:         tpl.Priority,
		Deadline:         tpl.NextDueAt.Format("2006-01-02"),
		DeadlineSource:   "recurring",
		EstimatedMinutes: tpl.EstimatedMinutes,
		Status:           model.StatusApproved,
		ExecutionStatus:  model.ExecutionPending,
		CreatedAt:        now,
	}
}
