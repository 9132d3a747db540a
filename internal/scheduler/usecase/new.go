package usecase

import (
	"cognito-assistant/internal/scheduler"
	"cognito-assistant/internal/scheduler/repository"
	"cognito-assistant/pkg/availability"
	"cognito-assistant/pkg/datemath"
	pkgLog "cognito-assistant/pkg/log"
)

// Config carries the scheduling policy knobs.
type Config struct {
	Timezone     string
	WorkingHours availability.WorkingHours
	HorizonDays  int
	SlotLimit    int
	// CalendarIDs are the calendars polled for busy data. Empty means
	// primary only.
	CalendarIDs []string
	// CalendarID is where time-block events are created.
	CalendarID string
}

type implUseCase struct {
	l        pkgLog.Logger
	calendar scheduler.CalendarProvider
	board    scheduler.BoardProvider
	repo     repository.QueueRepository
	dateMath *datemath.Parser
	cfg      Config
}

// New creates a new scheduler UseCase instance. The calendar provider may be
// nil, in which case time-block scheduling is skipped.
func New(
	l pkgLog.Logger,
	calendar scheduler.CalendarProvider,
	board scheduler.BoardProvider,
	repo repository.QueueRepository,
	dateMath *datemath.Parser,
	cfg Config,
) *implUseCase {
	if cfg.HorizonDays <= 0 {
		cfg.HorizonDays = 7
	}
	if cfg.SlotLimit <= 0 {
		cfg.SlotLimit = availability.DefaultSlotLimit
	}
	if cfg.WorkingHours.StartHour == 0 && cfg.WorkingHours.EndHour == 0 {
		cfg.WorkingHours = availability.WorkingHours{StartHour: 9, EndHour: 17}
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}
	return &implUseCase{
		l:        l,
		calendar: calendar,
		board:    board,
		repo:     repo,
		dateMath: dateMath,
		cfg:      cfg,
	}
}
