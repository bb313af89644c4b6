package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/attendly/attendly-backend/internal/config"
	"github.com/attendly/attendly-backend/internal/handler"
	"github.com/attendly/attendly-backend/internal/middleware"
	"github.com/attendly/attendly-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Student    *handler.StudentHandler
	Attendance *handler.AttendanceHandler
	Export     *handler.ExportHandler
	Dashboard  *handler.DashboardHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check and Prometheus metrics.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Rate limiter for the write-heavy marking endpoint (60 per minute per IP).
	markLimiter := middleware.NewRateLimiter(60, time.Minute)

	api := router.Group("/api/v1")
	{
		api.GET("/dashboard", handlers.Dashboard.GetDashboard)

		api.GET("/students", handlers.Student.ListStudents)
		api.POST("/students", handlers.Student.RegisterStudent)
		api.DELETE("/students/:id", handlers.Student.DeleteStudent)
		api.GET("/students/:id/summary", handlers.Attendance.StudentSummary)

		api.POST("/attendance", markLimiter.Middleware(), handlers.Attendance.MarkAttendance)
		api.GET("/attendance", handlers.Attendance.ListAttendance)
		api.GET("/attendance/stats", handlers.Attendance.GetStats)
		api.GET("/attendance/export", handlers.Export.ExportAttendance)
	}

	return router
}
