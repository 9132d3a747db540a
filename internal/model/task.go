package model

import "time"

// Priority is the triage priority assigned during ingestion.
type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityNormal   Priority = "Normal"
	PriorityLow      Priority = "Low"
)

// Bucket is the work-list destination for a routed task, ordered from most
// to least urgent. Completed is terminal and only ever reached by a human
// moving the card; the router never assigns it.
type Bucket string

const (
	BucketToday     Bucket = "today"
	BucketTomorrow  Bucket = "tomorrow"
	BucketThisWeek  Bucket = "this_week"
	BucketLater     Bucket = "later"
	BucketCompleted Bucket = "completed"
)

// Task statuses on the inbox queue.
const (
	StatusApproved = "approved"

	ExecutionPending   = "pending"
	ExecutionScheduled = "scheduled"
	ExecutionFailed    = "failed"
)

// Task is one inbox-queue item: a triaged piece of work awaiting a board
// card and, optionally, a calendar time block.
type Task struct {
	ID              string
	Subject         string
	Sender          string
	Domain          string // Clinical, Research, Admin, Home, Hobby
	Summary         string
	SuggestedAction string

	Priority         Priority
	Deadline         string // ISO-8601 string as stored at ingestion; empty when none inferred
	DeadlineSource   string
	EstimatedMinutes int

	Status          string
	ExecutionStatus string

	TrelloCardID  string
	TrelloCardURL string

	CalendarEventID string
	ScheduledStart  *time.Time
	ScheduledEnd    *time.Time

	CreatedAt time.Time
}
