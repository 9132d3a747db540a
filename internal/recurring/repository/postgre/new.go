package postgre

import (
	"database/sql"
	"fmt"

	"cognito-assistant/internal/recurring/repository"
	"cognito-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed TemplateRepository over the
// recurring_tasks table.
func New(db *sql.DB, l log.Logger) repository.TemplateRepository {
	if db == nil {
		panic("recurring/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("recurring/repository/postgre.%s", method)
}
