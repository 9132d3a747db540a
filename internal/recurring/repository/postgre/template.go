package postgre

import (
	"context"
	"database/sql"
	"time"

	"cognito-assistant/internal/model"
	repo "cognito-assistant/internal/recurring/repository"
)

const templateColumns = `id, title, summary, suggested_action, domain, priority,
	estimated_minutes, schedule, next_due_at, is_active, last_generated_at`

// ListDue returns active templates due at or before the given instant,
// oldest due first.
func (r *implRepository) ListDue(ctx context.Context, before time.Time) ([]model.RecurringTemplate, error) {
	const query = `
		SELECT ` + templateColumns + `
		FROM recurring_tasks
		WHERE is_active = TRUE AND next_due_at <= $1
		ORDER BY next_due_at ASC`

	rows, err := r.db.QueryContext(ctx, query, before)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDue"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var templates []model.RecurringTemplate
	for rows.Next() {
		tpl, scanErr := scanTemplate(rows)
		if scanErr != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListDue"), scanErr)
			return nil, repo.ErrFailedToList
		}
		templates = append(templates, tpl)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListDue"), err)
		return nil, repo.ErrFailedToList
	}
	return templates, nil
}

// MarkGenerated advances the template after a task was created from it.
func (r *implRepository) MarkGenerated(ctx context.Context, templateID string, opt repo.MarkGeneratedOptions) error {
	const query = `
		UPDATE recurring_tasks
		SET next_due_at = $2, last_generated_at = $3
		WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, templateID, opt.NextDueAt, opt.GeneratedAt); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkGenerated"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// scanTemplate maps one recurring_tasks row, folding NULLs to zero values.
func scanTemplate(rows *sql.Rows) (model.RecurringTemplate, error) {
	var (
		tpl       model.RecurringTemplate
		summary   sql.NullString
		action    sql.NullString
		domain    sql.NullString
		estimated sql.NullInt64
		lastGen   sql.NullTime
	)

	err := rows.Scan(
		&tpl.ID, &tpl.Title, &summary, &action, &domain, &tpl.Priority,
		&estimated, &tpl.Schedule, &tpl.NextDueAt, &tpl.IsActive, &lastGen,
	)
	if err != nil {
		return model.RecurringTemplate{}, err
	}

	tpl.Summary = summary.String
	tpl.SuggestedAction = action.String
	tpl.Domain = domain.String
	tpl.EstimatedMinutes = int(estimated.Int64)
	if lastGen.Valid {
		tpl.LastGeneratedAt = &lastGen.Time
	}
	return tpl, nil
}
