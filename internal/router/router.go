package router

import (
	"github.com/gin-gonic/gin"

	"signsheet/internal/config"
	"signsheet/internal/handler"
	"signsheet/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	sheetH *handler.SheetHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	if cfg.Log.RequestLogging() {
		r.Use(middleware.Logger())
	}
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	sheets := v1.Group("/sheets")
	sheets.POST("/parse", sheetH.Parse)
	sheets.POST("/parse-pages", sheetH.ParsePages)
	sheets.POST("/review", sheetH.Review)
	sheets.POST("/check-date", sheetH.CheckDate)

	times := v1.Group("/times")
	times.POST("/adjust", sheetH.AdjustTimes)

	return r
}
