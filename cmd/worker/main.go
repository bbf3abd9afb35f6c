package main

import (
	"context"
	"errors"
	"os/signal"
	"pgsystem/config"
	"pgsystem/infras/otel"
	"pgsystem/internal/workers/audit"
	"pgsystem/shared/event"
	"pgsystem/shared/logger"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	subscriber, err := event.NewSubscriber(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create event subscriber")
	}

	defer func() {
		if err := subscriber.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close event subscriber")
		}
	}()

	tracer := otel.New(cfg)

	defer func() {
		if err := tracer.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to flush traces")
		}
	}()

	err = audit.New(subscriber, tracer).Run(ctx, cfg.Events.Topic)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("Audit worker stopped")

		return
	}

	log.Info().Msg("Audit worker stopped")
}
