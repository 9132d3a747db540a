package http

import (
	"github.com/gin-gonic/gin"

	"cognito-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/execute", mw.RateLimit(), h.Execute)
	rg.GET("/slots", mw.RateLimit(), h.Slots)
	rg.POST("/route", mw.RateLimit(), h.Route)
}
