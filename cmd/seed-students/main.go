package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/attendly-backend/internal/config"
	"github.com/attendly/attendly-backend/internal/database"
	"github.com/attendly/attendly-backend/internal/logger"
	"github.com/attendly/attendly-backend/internal/model"
	"github.com/attendly/attendly-backend/internal/repository"
	"github.com/attendly/attendly-backend/internal/service"
)

// Seeds a small demo roster so the admin tool has data to show.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		return
	}
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure database schema")
	}

	studentRepo := repository.NewStudentRepository(pool)
	studentService := service.NewStudentService(studentRepo, log)

	seed := []struct {
		id         string
		name       string
		department model.Department
	}{
		{"STU001", "Alice Johnson", model.DepartmentComputerScience},
		{"STU002", "Bob Martinez", model.DepartmentEngineering},
		{"STU003", "Carol White", model.DepartmentBusiness},
		{"STU004", "David Kim", model.DepartmentArts},
		{"STU005", "Eva Brown", model.DepartmentComputerScience},
		{"STU006", "Frank Miller", model.DepartmentEngineering},
		{"STU007", "Grace Lee", model.DepartmentBusiness},
		{"STU008", "Henry Davis", model.DepartmentArts},
		{"STU009", "Isabel Garcia", model.DepartmentComputerScience},
		{"STU010", "Jack Wilson", model.DepartmentEngineering},
	}

	fmt.Printf("=== Seeding %d Students ===\n", len(seed))

	successCount := 0
	for _, s := range seed {
		_, err := studentService.Register(ctx, s.id, s.name, s.department)
		switch {
		case errors.Is(err, repository.ErrDuplicateStudentID):
			fmt.Printf("Skipping %s (%s): already registered\n", s.id, s.name)
		case err != nil:
			fmt.Printf("Error registering %s (%s): %v\n", s.id, s.name, err)
		default:
			successCount++
		}
	}

	fmt.Printf("\nSeed completed! Successfully added %d/%d students.\n", successCount, len(seed))
}
