package repository

import (
	"context"
	"time"

	"cognito-assistant/internal/model"
)

// TemplateRepository persists recurring task templates.
type TemplateRepository interface {
	// ListDue returns active templates whose next due time is at or before
	// the given instant.
	ListDue(ctx context.Context, before time.Time) ([]model.RecurringTemplate, error)

	// MarkGenerated advances the template after a task was created from it.
	MarkGenerated(ctx context.Context, templateID string, opt MarkGeneratedOptions) error
}

// MarkGeneratedOptions carries the post-generation template state.
type MarkGeneratedOptions struct {
	NextDueAt   time.Time
	GeneratedAt time.Time
}
