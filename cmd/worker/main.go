package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"cognito-assistant/config"
	"cognito-assistant/config/postgre"
	recurringPostgre "cognito-assistant/internal/recurring/repository/postgre"
	recurringUC "cognito-assistant/internal/recurring/usecase"
	"cognito-assistant/internal/scheduler"
	schedulerPostgre "cognito-assistant/internal/scheduler/repository/postgre"
	schedulerUC "cognito-assistant/internal/scheduler/usecase"
	"cognito-assistant/pkg/availability"
	"cognito-assistant/pkg/datemath"
	"cognito-assistant/pkg/gcalendar"
	"cognito-assistant/pkg/log"
	"cognito-assistant/pkg/trello"
)

// The worker runs the two scheduled passes: recurring template generation
// and the execution pipeline. The API stays request-driven; everything
// time-driven lives here.
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

	logger.Info(ctx, "Starting Cognito worker...")

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

	// 5. Integrations
	var calendarProvider scheduler.CalendarProvider
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarProvider = calendarClient
		}
	}

	var boardProvider scheduler.BoardProvider
	if cfg.Trello.APIKey != "" && cfg.Trello.Token != "" {
		boardProvider = trello.NewClient("", cfg.Trello.APIKey, cfg.Trello.Token, cfg.Trello.BoardName)
	} else {
		logger.Warn(ctx, "Trello credentials missing, execution passes will fail until configured")
	}

	// 6. Domains
	queueRepo := schedulerPostgre.New(db, logger)
	executeUC := schedulerUC.New(logger, calendarProvider, boardProvider, queueRepo, dateMathParser, schedulerUC.Config{
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

	templateRepo := recurringPostgre.New(db, logger)
	generateUC := recurringUC.New(logger, templateRepo, queueRepo, cfg.Recurring.LookaheadDays)

	// 7. Cron schedule
	c := cron.New()

	if _, err := c.AddFunc(cfg.Recurring.Cron, func() {
		now := time.Now().In(dateMathParser.Location())
		out, genErr := generateUC.Generate(ctx, now)
		if genErr != nil {
			logger.Errorf(ctx, "Recurring generation failed: %v", genErr)
			return
		}
		logger.Infof(ctx, "Recurring generation: due=%d generated=%d skipped=%d",
			out.TemplatesDue, out.Generated, out.Skipped)
	}); err != nil {
		logger.Error(ctx, "Invalid recurring.cron expression: ", err)
		return
	}

	if _, err := c.AddFunc(cfg.Recurring.ExecuteCron, func() {
		out, execErr := executeUC.Execute(ctx, scheduler.ExecuteInput{UseCalendar: calendarProvider != nil})
		if execErr != nil {
			logger.Errorf(ctx, "Execution pass failed: %v", execErr)
			return
		}
		if out.Processed > 0 {
			logger.Infof(ctx, "Execution pass: processed=%d cards=%d events=%d failed=%d",
				out.Processed, out.CardsCreated, out.EventsScheduled, out.Failed)
		}
	}); err != nil {
		logger.Error(ctx, "Invalid recurring.execute_cron expression: ", err)
		return
	}

	c.Start()
	logger.Infof(ctx, "Worker running: generation %q, execution %q", cfg.Recurring.Cron, cfg.Recurring.ExecuteCron)

	<-ctx.Done()

	// Let a mid-flight job finish before exiting.
	stopCtx := c.Stop()
	<-stopCtx.Done()
	logger.Info(ctx, "Worker stopped gracefully")
}
