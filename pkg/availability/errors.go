package availability

import "errors"

// ErrInvalidInterval reports a busy interval with start >= end. Callers are
// expected to sanitize provider data before merging; a malformed interval
// fails the whole merge rather than being dropped silently.
var ErrInvalidInterval = errors.New("invalid busy interval: start must be before end")
