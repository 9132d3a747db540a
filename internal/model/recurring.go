package model

import "time"

// RecurringTemplate generates inbox-queue tasks on a cron schedule.
type RecurringTemplate struct {
	ID               string
	Title            string
	Summary          string
	SuggestedAction  string
	Domain           string
	Priority         Priority
	EstimatedMinutes int

	Schedule  string // standard 5-field cron expression
	NextDueAt time.Time
	IsActive  bool

	LastGeneratedAt *time.Time
}
