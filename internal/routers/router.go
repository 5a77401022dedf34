package routers

import (
	"github.com/gin-gonic/gin"

	"github.com/darlopvil/trabajo-L4-G7/internal/handlers"
	"github.com/darlopvil/trabajo-L4-G7/internal/middleware"
	"github.com/darlopvil/trabajo-L4-G7/internal/observability"
)

// NewRouter registers all endpoints and applies per-endpoint instrumentation.
func NewRouter(m *observability.Metrics, h *handlers.Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", h.Health)

	r.GET("/trial", middleware.Instrument(m, "trial", h.RunTrial))
	r.GET("/trials", middleware.Instrument(m, "trials", h.ListTrials))

	return r
}
