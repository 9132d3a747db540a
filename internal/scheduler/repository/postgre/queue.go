package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"cognito-assistant/internal/model"
	repo "cognito-assistant/internal/scheduler/repository"
)

const queueColumns = `id, subject, real_sender, ai_domain, ai_summary, ai_suggested_action,
	ai_priority, ai_inferred_deadline, ai_deadline_source, ai_estimated_minutes,
	status, execution_status, trello_card_id, trello_card_url,
	calendar_event_id, scheduled_start, scheduled_end, created_at`

// List returns queue tasks matching the options, newest first.
func (r *implRepository) List(ctx context.Context, opt repo.ListOptions) ([]model.Task, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM inbox_queue %s`, queueColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("List"), scanErr)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// Insert adds a new task to the queue.
func (r *implRepository) Insert(ctx context.Context, task model.Task) error {
	const query = `
		INSERT INTO inbox_queue (
			id, subject, real_sender, ai_domain, ai_summary, ai_suggested_action,
			ai_priority, ai_inferred_deadline, ai_deadline_source, ai_estimated_minutes,
			status, execution_status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.Subject, task.Sender, task.Domain, task.Summary, task.SuggestedAction,
		task.Priority, task.Deadline, task.DeadlineSource, task.EstimatedMinutes,
		task.Status, task.ExecutionStatus, task.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Insert"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// MarkExecuted records the created board card and flips execution status.
func (r *implRepository) MarkExecuted(ctx context.Context, taskID string, opt repo.MarkExecutedOptions) error {
	const query = `
		UPDATE inbox_queue
		SET execution_status = $2, trello_card_id = $3, trello_card_url = $4, executed_at = NOW()
		WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, taskID, opt.Status, opt.CardID, opt.CardURL); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkExecuted"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// UpdateSchedule records the calendar event and the chosen time block.
func (r *implRepository) UpdateSchedule(ctx context.Context, taskID string, opt repo.UpdateScheduleOptions) error {
	const query = `
		UPDATE inbox_queue
		SET calendar_event_id = $2, scheduled_start = $3, scheduled_end = $4
		WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, taskID, opt.EventID, opt.Start, opt.End); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateSchedule"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// scanTask maps one inbox_queue row, folding NULLs to zero values.
func scanTask(rows *sql.Rows) (model.Task, error) {
	var (
		task           model.Task
		sender         sql.NullString
		domain         sql.NullString
		summary        sql.NullString
		action         sql.NullString
		deadline       sql.NullString
		deadlineSource sql.NullString
		estimated      sql.NullInt64
		cardID         sql.NullString
		cardURL        sql.NullString
		eventID        sql.NullString
		schedStart     sql.NullTime
		schedEnd       sql.NullTime
	)

	err := rows.Scan(
		&task.ID, &task.Subject, &sender, &domain, &summary, &action,
		&task.Priority, &deadline, &deadlineSource, &estimated,
		&task.Status, &task.ExecutionStatus, &cardID, &cardURL,
		&eventID, &schedStart, &schedEnd, &task.CreatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	task.Sender = sender.String
	task.Domain = domain.String
	task.Summary = summary.String
	task.SuggestedAction = action.String
	task.Deadline = deadline.String
	task.DeadlineSource = deadlineSource.String
	task.EstimatedMinutes = int(estimated.Int64)
	task.TrelloCardID = cardID.String
	task.TrelloCardURL = cardURL.String
	task.CalendarEventID = eventID.String
	if schedStart.Valid {
		task.ScheduledStart = &schedStart.Time
	}
	if schedEnd.Valid {
		task.ScheduledEnd = &schedEnd.Time
	}
	return task, nil
}
