package main

import (
	"context"
	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	cfg.App.Rooms = roomCount(os.Args[1:], cfg.App.Rooms)

	app, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize front desk")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.CLI.Serve(ctx); err != nil {
		log.Error().Err(err).Msg("Front desk stopped unexpectedly")
	}

	shutdown(cfg, app)
}

// shutdown flushes pending spans and booking events within the grace period.
func shutdown(cfg *config.Config, app *di.App) {
	gracePeriod := time.Duration(cfg.Server.Shutdown.GracePeriodSeconds) * time.Second

	log.Info().Int64("seconds", cfg.Server.Shutdown.GracePeriodSeconds).Msg("Entering grace period.")

	ctx, cancel := context.WithTimeout(context.Background(), gracePeriod)
	defer cancel()

	if err := app.Kafka.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to flush booking events")
	}

	if err := app.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
