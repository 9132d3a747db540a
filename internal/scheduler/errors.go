package scheduler

import "errors"

// Domain-specific errors for the scheduler package. Missing slots and
// unparsable deadlines are not errors here: both degrade with a warning
// (nil slot, priority-only routing).
var (
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrInvalidWindow   = errors.New("window start must be before window end")
)
