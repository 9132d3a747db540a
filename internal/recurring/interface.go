package recurring

import (
	"context"
	"time"
)

// UseCase generates inbox-queue tasks from recurring templates.
type UseCase interface {
	// Generate materializes every active template due within the lookahead
	// window and advances its next-due timestamp.
	Generate(ctx context.Context, now time.Time) (GenerateOutput, error)
}
