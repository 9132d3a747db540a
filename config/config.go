package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"cognito-assistant/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig

	// Integrations
	Trello         TrelloConfig
	GoogleCalendar GoogleCalendarConfig

	// Scheduling policy
	Scheduling SchedulingConfig
	Recurring  RecurringConfig
}

type EnvironmentConfig struct {
	Name model.Environment
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type TrelloConfig struct {
	APIKey    string
	Token     string
	BoardName string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	// CalendarID is where time-block events are created.
	CalendarID string
	// CalendarIDs are the calendars polled for busy data.
	CalendarIDs []string
}

type SchedulingConfig struct {
	Timezone          string
	WorkingHoursStart int
	WorkingHoursEnd   int
	HorizonDays       int
	SlotLimit         int
}

type RecurringConfig struct {
	LookaheadDays int
	// Cron is the worker schedule for the generation pass.
	Cron string
	// ExecuteCron is the worker schedule for the execution pipeline.
	ExecuteCron string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = model.Environment(viper.GetString("environment.name"))
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	if pgPassword := viper.GetString("postgres_password"); pgPassword != "" {
		cfg.Postgres.Password = pgPassword
	}

	// Trello
	cfg.Trello.APIKey = viper.GetString("trello.api_key")
	cfg.Trello.Token = viper.GetString("trello.token")
	cfg.Trello.BoardName = viper.GetString("trello.board_name")
	if trelloKey := viper.GetString("trello_api_key"); trelloKey != "" {
		cfg.Trello.APIKey = trelloKey
	}
	if trelloToken := viper.GetString("trello_token"); trelloToken != "" {
		cfg.Trello.Token = trelloToken
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Split calendar IDs since viper might not parse array seamlessly from env
	var calendarIDs []string
	if rawIDs := viper.GetString("google_calendar.calendar_ids"); rawIDs != "" {
		for _, id := range strings.Split(rawIDs, ",") {
			id = strings.TrimSpace(id)
			if id != "" {
				calendarIDs = append(calendarIDs, id)
			}
		}
	}
	cfg.GoogleCalendar.CalendarIDs = calendarIDs

	// Scheduling policy
	cfg.Scheduling.Timezone = viper.GetString("scheduling.timezone")
	cfg.Scheduling.WorkingHoursStart = viper.GetInt("scheduling.working_hours_start")
	cfg.Scheduling.WorkingHoursEnd = viper.GetInt("scheduling.working_hours_end")
	cfg.Scheduling.HorizonDays = viper.GetInt("scheduling.horizon_days")
	cfg.Scheduling.SlotLimit = viper.GetInt("scheduling.slot_limit")

	if cfg.Scheduling.WorkingHoursStart >= cfg.Scheduling.WorkingHoursEnd {
		return nil, fmt.Errorf("scheduling.working_hours_start must be before scheduling.working_hours_end")
	}

	// Recurring generation
	cfg.Recurring.LookaheadDays = viper.GetInt("recurring.lookahead_days")
	cfg.Recurring.Cron = viper.GetString("recurring.cron")
	cfg.Recurring.ExecuteCron = viper.GetString("recurring.execute_cron")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 60)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.dbname", "cognito")
	viper.SetDefault("postgres.sslmode", "disable")

	viper.SetDefault("trello.board_name", "Cognito Task Queue")

	viper.SetDefault("scheduling.timezone", "Australia/Melbourne")
	viper.SetDefault("scheduling.working_hours_start", 9)
	viper.SetDefault("scheduling.working_hours_end", 17)
	viper.SetDefault("scheduling.horizon_days", 7)
	viper.SetDefault("scheduling.slot_limit", 10)

	viper.SetDefault("recurring.lookahead_days", 3)
	viper.SetDefault("recurring.cron", "0 6 * * *")         // daily 06:00
	viper.SetDefault("recurring.execute_cron", "0 * * * *") // hourly
}
