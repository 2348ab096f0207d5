package main

import (
	"context"
	"log"
	"os"

	"qrlogger/internal/adapters/httpapi"
	"qrlogger/internal/application"
	"qrlogger/internal/config"
	"qrlogger/internal/infrastructure/database"
	"qrlogger/internal/infrastructure/i18n"
	"qrlogger/internal/infrastructure/sqlite"
	"qrlogger/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	ctx := context.Background()

	var (
		eventRepo       output.EventRepository
		participantRepo output.ParticipantRepository
		activityRepo    output.ActivityRepository
		checkinRepo     output.CheckinRepository
	)

	switch cfg.DBDriver {
	case config.DriverPostgres:
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatalf("migration error: %v", err)
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("database error: %v", err)
		}
		defer pool.Close()
		eventRepo = database.NewEventRepository(pool)
		participantRepo = database.NewParticipantRepository(pool)
		activityRepo = database.NewActivityRepository(pool)
		checkinRepo = database.NewCheckinRepository(pool)
	case config.DriverSQLite:
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("database error: %v", err)
		}
		defer store.Close()
		log.Printf("SQLite database opened at %s.", cfg.SQLitePath)
		eventRepo = sqlite.NewEventRepository(store)
		participantRepo = sqlite.NewParticipantRepository(store)
		activityRepo = sqlite.NewActivityRepository(store)
		checkinRepo = sqlite.NewCheckinRepository(store)
	}

	translator := i18n.NewTranslator(cfg.DefaultLocale)

	eventService := application.NewEventService(eventRepo)
	participantService := application.NewParticipantService(participantRepo, eventRepo)
	activityService := application.NewActivityService(activityRepo, eventRepo)
	checkinService := application.NewCheckinService(participantRepo, activityRepo, checkinRepo, nil)

	handler := httpapi.NewHandler(checkinService, participantService, activityService, eventService, translator)
	if err := handler.Router().Run(cfg.ListenAddr); err != nil {
		log.Printf("server error: %v", err)
		os.Exit(1)
	}
}
