package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cognito-assistant/config"
	"cognito-assistant/config/postgre"
	_ "cognito-assistant/docs" // Swagger docs
	"cognito-assistant/internal/httpserver"
	"cognito-assistant/internal/middleware"
	"cognito-assistant/internal/scheduler"
	schedulerHTTP "cognito-assistant/internal/scheduler/delivery/http"
	schedulerPostgre "cognito-assistant/internal/scheduler/repository/postgre"
	"cognito-assistant/internal/scheduler/usecase"
	"cognito-assistant/pkg/availability"
	"cognito-assistant/pkg/datemath"
	"cognito-assistant/pkg/gcalendar"
	"cognito-assistant/pkg/log"
	"cognito-assistant/pkg/trello"
)

// @title       Cognito Scheduler API
// @description Availability resolver and task router: merges calendar busy data, finds free slots, and routes inbox tasks to board lists and time blocks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Cognito scheduler API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to postgres: ", err)
		return
	}
	defer postgre.Disconnect(db)

	// 4. DateMath parser
	dateMathParser, dtErr := datemath.NewParser(cfg.Scheduling.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Scheduling.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 5. Google Calendar client (optional)
	var calendarProvider scheduler.CalendarProvider
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			logger.Info(ctx, "✅ Google Calendar initialized")
			calendarProvider = calendarClient
		}
	}

	// 6. Trello board client
	var boardProvider scheduler.BoardProvider
	if cfg.Trello.APIKey != "" && cfg.Trello.Token != "" {
		boardProvider = trello.NewClient("", cfg.Trello.APIKey, cfg.Trello.Token, cfg.Trello.BoardName)
		logger.Infof(ctx, "Trello board: %s", cfg.Trello.BoardName)
	} else {
		logger.Warn(ctx, "Trello credentials missing, execution pipeline will fail until configured")
	}

	// 7. Scheduler domain
	queueRepo := schedulerPostgre.New(db, logger)
	schedulerUC := usecase.New(logger, calendarProvider, boardProvider, queueRepo, dateMathParser, usecase.Config{
		Timezone: cfg.Scheduling.Timezone,
		WorkingHours: availability.WorkingHours{
			StartHour: cfg.Scheduling.WorkingHoursStart,
			EndHour:   cfg.Scheduling.WorkingHoursEnd,
		},
		HorizonDays: cfg.Scheduling.HorizonDays,
		SlotLimit:   cfg.Scheduling.SlotLimit,
		CalendarIDs: cfg.GoogleCalendar.CalendarIDs,
		CalendarID:  cfg.GoogleCalendar.CalendarID,
	})
	schedulerHandler := schedulerHTTP.New(logger, schedulerUC)

	// 8. HTTP Server
	mw := middleware.New(logger, cfg.HTTPServer.RateLimitPerMin)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		SchedulerHandler: schedulerHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
