package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/attendly/attendly-backend/internal/config"
	"github.com/attendly/attendly-backend/internal/database"
	"github.com/attendly/attendly-backend/internal/handler"
	"github.com/attendly/attendly-backend/internal/logger"
	"github.com/attendly/attendly-backend/internal/repository"
	"github.com/attendly/attendly-backend/internal/router"
	"github.com/attendly/attendly-backend/internal/service"
	"github.com/attendly/attendly-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.Setup("info", "pretty")
		bootLog.Fatal().Err(err).Msg("Invalid configuration")
	}

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Attendly Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Ensure Schema ─────────────────────────────────────────────────
	// Repository calls must not be served when this fails.
	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure database schema")
	}

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	studentRepo := repository.NewStudentRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	studentService := service.NewStudentService(studentRepo, log)
	attendanceService := service.NewAttendanceService(attendanceRepo, studentRepo, rdb, cfg.StatsCacheTTL, log)
	exportService := service.NewExportService(attendanceRepo, log)
	dashboardService := service.NewDashboardService(studentService, attendanceService)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Student:    handler.NewStudentHandler(studentService, attendanceService),
		Attendance: handler.NewAttendanceHandler(attendanceService),
		Export:     handler.NewExportHandler(exportService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
