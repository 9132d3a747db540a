package postgre

import (
	"database/sql"
	"fmt"

	"cognito-assistant/internal/scheduler/repository"
	"cognito-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed QueueRepository over the inbox_queue table.
func New(db *sql.DB, l log.Logger) repository.QueueRepository {
	if db == nil {
		panic("scheduler/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("scheduler/repository/postgre.%s", method)
}
