package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"cognito-assistant/internal/scheduler"
	"cognito-assistant/pkg/response"
)

// respondError translates domain errors into HTTP responses. Validation
// errors surface to the client; everything else is reported as internal.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scheduler.ErrInvalidDuration),
		errors.Is(err, scheduler.ErrInvalidWindow):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
