package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"cognito-assistant/pkg/response"
)

// Execute godoc
// @Summary     Run the execution pipeline
// @Description Routes approved queue tasks to board lists and, optionally, calendar time blocks.
// @Tags        Scheduler
// @Accept      json
// @Produce     json
// @Param       body body executeReq false "Pipeline options"
// @Success     200 {object} executeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/scheduler/execute [POST]
func (h *handler) Execute(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExecuteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Execute(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Execute: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newExecuteResp(output))
}

// Slots godoc
// @Summary     List free slots
// @Description Returns free slots of the requested duration inside the window, working hours only.
// @Tags        Scheduler
// @Accept      json
// @Produce     json
// @Param       duration_minutes query int    true  "Slot duration in minutes"
// @Param       from             query string false "Window start (RFC3339, default: now)"
// @Param       to               query string false "Window end (RFC3339, default: from + 7 days)"
// @Param       limit            query int    false "Max slots (default: 10)"
// @Success     200 {object} slotsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/scheduler/slots [GET]
func (h *handler) Slots(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSlotsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	slots, err := h.uc.FreeSlots(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.FreeSlots: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSlotsResp(slots))
}

// Route godoc
// @Summary     Preview task routing
// @Description Returns the bucket a task with the given priority and deadline would land in. No side effects.
// @Tags        Scheduler
// @Accept      json
// @Produce     json
// @Param       body body routeReq true "Task attributes"
// @Success     200 {object} routeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/scheduler/route [POST]
func (h *handler) Route(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRouteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	bucket := h.uc.Route(ctx, req.toTask(), time.Now())

	response.OK(c, routeResp{Bucket: string(bucket)})
}
