package http

import (
	"fmt"
	"time"

	"cognito-assistant/internal/model"
	"cognito-assistant/internal/scheduler"
	"cognito-assistant/pkg/availability"
)

// --- Request DTOs ---

type executeReq struct {
	DryRun      bool `json:"dry_run"`
	UseCalendar bool `json:"use_calendar"`
}

func (r executeReq) toInput() scheduler.ExecuteInput {
	return scheduler.ExecuteInput{
		DryRun:      r.DryRun,
		UseCalendar: r.UseCalendar,
	}
}

type slotsReq struct {
	DurationMinutes int    `form:"duration_minutes" binding:"required,min=1"`
	From            string `form:"from"`
	To              string `form:"to"`
	Limit           int    `form:"limit"`

	from time.Time
	to   time.Time
}

// validate parses the window bounds. An empty window defaults to the next
// seven days.
func (r *slotsReq) validate() error {
	now := time.Now()

	r.from = now
	if r.From != "" {
		t, err := time.Parse(time.RFC3339, r.From)
		if err != nil {
			return fmt.Errorf("invalid from: %w", err)
		}
		r.from = t
	}

	r.to = r.from.AddDate(0, 0, 7)
	if r.To != "" {
		t, err := time.Parse(time.RFC3339, r.To)
		if err != nil {
			return fmt.Errorf("invalid to: %w", err)
		}
		r.to = t
	}

	return nil
}

func (r slotsReq) toInput() scheduler.SlotQueryInput {
	return scheduler.SlotQueryInput{
		DurationMinutes: r.DurationMinutes,
		From:            r.from,
		To:              r.to,
		Limit:           r.Limit,
	}
}

type routeReq struct {
	Subject          string `json:"subject"`
	Priority         string `json:"priority" binding:"required,oneof=Critical High Normal Low"`
	Deadline         string `json:"deadline"`
	EstimatedMinutes int    `json:"estimated_minutes" binding:"min=0"`
}

func (r routeReq) toTask() model.Task {
	return model.Task{
		Subject:          r.Subject,
		Priority:         model.Priority(r.Priority),
		Deadline:         r.Deadline,
		EstimatedMinutes: r.EstimatedMinutes,
	}
}

// --- Response DTOs ---

type taskResultResp struct {
	TaskID         string `json:"task_id"`
	Subject        string `json:"subject"`
	Bucket         string `json:"bucket"`
	CardURL        string `json:"card_url,omitempty"`
	ScheduledStart string `json:"scheduled_start,omitempty"`
	ScheduledEnd   string `json:"scheduled_end,omitempty"`
	Error          string `json:"error,omitempty"`
}

type executeResp struct {
	Processed       int              `json:"processed"`
	CardsCreated    int              `json:"cards_created"`
	EventsScheduled int              `json:"events_scheduled"`
	Failed          int              `json:"failed"`
	Results         []taskResultResp `json:"results"`
}

func (h *handler) newExecuteResp(out scheduler.ExecuteOutput) executeResp {
	resp := executeResp{
		Processed:       out.Processed,
		CardsCreated:    out.CardsCreated,
		EventsScheduled: out.EventsScheduled,
		Failed:          out.Failed,
		Results:         make([]taskResultResp, 0, len(out.Results)),
	}
	for _, r := range out.Results {
		item := taskResultResp{
			TaskID:  r.TaskID,
			Subject: r.Subject,
			Bucket:  string(r.Bucket),
			CardURL: r.CardURL,
			Error:   r.Err,
		}
		if r.ScheduledStart != nil {
			item.ScheduledStart = r.ScheduledStart.Format(time.RFC3339)
		}
		if r.ScheduledEnd != nil {
			item.ScheduledEnd = r.ScheduledEnd.Format(time.RFC3339)
		}
		resp.Results = append(resp.Results, item)
	}
	return resp
}

type slotResp struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	GapMinutes int    `json:"gap_minutes"`
}

type slotsResp struct {
	Slots []slotResp `json:"slots"`
	Count int        `json:"count"`
}

func (h *handler) newSlotsResp(slots []availability.FreeSlot) slotsResp {
	resp := slotsResp{Slots: make([]slotResp, 0, len(slots)), Count: len(slots)}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, slotResp{
			Start:      s.Start.Format(time.RFC3339),
			End:        s.End.Format(time.RFC3339),
			GapMinutes: s.GapMinutes,
		})
	}
	return resp
}

type routeResp struct {
	Bucket string `json:"bucket"`
}
