package usecase

import (
	"cognito-assistant/internal/recurring/repository"
	schedulerRepo "cognito-assistant/internal/scheduler/repository"
	pkgLog "cognito-assistant/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	templates repository.TemplateRepository
	queue     schedulerRepo.QueueRepository
	lookahead int // days
}

// New creates a new recurring UseCase instance. lookaheadDays is how far
// ahead of now a template may be due and still be generated.
func New(
	l pkgLog.Logger,
	templates repository.TemplateRepository,
	queue schedulerRepo.QueueRepository,
	lookaheadDays int,
) *implUseCase {
	if lookaheadDays <= 0 {
		lookaheadDays = 3
	}
	return &implUseCase{
		l:         l,
		templates: templates,
		queue:     queue,
		lookahead: lookaheadDays,
	}
}
