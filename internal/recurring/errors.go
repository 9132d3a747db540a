package recurring

import "errors"

// Domain-specific errors for the recurring package.
var (
	ErrInvalidSchedule = errors.New("invalid cron schedule expression")
)
