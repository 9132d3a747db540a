package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cognito-assistant/internal/model"
)

var priorityEmoji = map[model.Priority]string{
	model.PriorityCritical: "🔴",
	model.PriorityHigh:     "🟠",
	model.PriorityNormal:   "🟡",
	model.PriorityLow:      "🔵",
}

// parseDeadline resolves the task's stored deadline string to an absolute
// time. Returns nil when no deadline exists or the string cannot be parsed;
// the caller falls back to priority-only routing.
func (uc *implUseCase) parseDeadline(ctx context.Context, t model.Task, now time.Time) *time.Time {
	if strings.TrimSpace(t.Deadline) == "" {
		return nil
	}

	d, err := uc.dateMath.ParseDeadline(t.Deadline, now)
	if err != nil {
		uc.l.Warnf(ctx, "task %s has unparsable deadline %q: %v", t.ID, t.Deadline, err)
		return nil
	}
	return &d
}

// buildCardTitle formats the card name with the priority marker.
func buildCardTitle(t model.Task) string {
	emoji, ok := priorityEmoji[t.Priority]
	if !ok {
		emoji = "⚪"
	}
	return fmt.Sprintf("%s [%s] %s", emoji, t.Priority, t.Subject)
}

// buildCardDescription renders the card body as markdown.
func buildCardDescription(t model.Task) string {
	var b strings.Builder

	b.WriteString("## Task Summary\n")
	b.WriteString(t.Summary)
	b.WriteString("\n\n")

	if t.SuggestedAction != "" {
		fmt.Fprintf(&b, "**Suggested Action:** %s\n\n", t.SuggestedAction)
	}

	fmt.Fprintf(&b, "**From:** %s\n", t.Sender)
	fmt.Fprintf(&b, "**Domain:** %s\n", t.Domain)
	fmt.Fprintf(&b, "**Priority:** %s\n", t.Priority)
	if t.EstimatedMinutes > 0 {
		fmt.Fprintf(&b, "**Estimated Time:** %d min\n", t.EstimatedMinutes)
	}
	if t.Deadline != "" {
		source := t.DeadlineSource
		if source == "" {
			source = "inferred"
		}
		fmt.Fprintf(&b, "**Deadline:** %s (%s)\n", t.Deadline, source)
	}

	b.WriteString("\n---\n*Created by Cognito from inbox triage*")
	return b.String()
}

// buildEventDescription renders the calendar event body.
func buildEventDescription(t model.Task) string {
	var b strings.Builder

	b.WriteString(t.Summary)
	if t.SuggestedAction != "" {
		fmt.Fprintf(&b, "\n\nSuggested action: %s", t.SuggestedAction)
	}
	if t.TrelloCardURL != "" {
		fmt.Fprintf(&b, "\n\n📋 Card: %s", t.TrelloCardURL)
	}
	return b.String()
}
