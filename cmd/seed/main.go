package main

import (
	"context"
	"fmt"
	"time"

	"github.com/govjobs/govjobs-backend/internal/config"
	"github.com/govjobs/govjobs-backend/internal/database"
	"github.com/govjobs/govjobs-backend/internal/logger"
	"github.com/govjobs/govjobs-backend/internal/repository"
	"github.com/govjobs/govjobs-backend/internal/service"
)

// seed prepares a fresh database: schema, default categories and the
// ADMIN_USERNAME account. Safe to run repeatedly.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if cfg.AdminPassword == "" {
		log.Fatal().Msg("ADMIN_PASSWORD must be set to seed the admin account")
	}

	if err := database.MigrateUp(cfg.DatabaseURL, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply migrations")
	}

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	categoryService := service.NewCategoryService(repository.NewCategoryRepository(pool), log)
	adminService := service.NewAdminService(repository.NewAdminRepository(pool), service.NewAuthService(cfg), log)

	fmt.Println("=== Seeding Database ===")

	created, err := adminService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed admin")
	}
	if created {
		fmt.Printf("Admin '%s' created\n", cfg.AdminUsername)
	} else {
		fmt.Printf("Admin '%s' already exists (skipped)\n", cfg.AdminUsername)
	}

	n, err := categoryService.SeedDefaults(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed categories")
	}
	fmt.Printf("Categories seeded: %d new of %d\n", n, len(service.DefaultCategories))
	fmt.Println("Database initialization complete")
}
