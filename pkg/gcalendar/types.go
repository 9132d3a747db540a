package gcalendar

import "time"

// CreateEventRequest is the input for creating a calendar time block.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Australia/Melbourne"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}

// FreeBusyRequest queries busy periods across one or more calendars.
// Empty CalendarIDs defaults to the primary calendar.
type FreeBusyRequest struct {
	TimeMin     time.Time
	TimeMax     time.Time
	CalendarIDs []string
}

// BusyPeriod is one busy interval reported by freebusy.query.
type BusyPeriod struct {
	Start time.Time
	End   time.Time
}

// CalendarInfo describes one calendar visible to the authenticated user,
// including subscribed calendars from other accounts.
type CalendarInfo struct {
	ID         string
	Summary    string
	Primary    bool
	AccessRole string
}
