package main

import (
	"context"
	"os/signal"
	"pgsystem/config"
	"pgsystem/di"
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

	inserted, err := di.InitializeSeeder().Upsert(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed room catalog")
	}

	log.Info().Int64("inserted", inserted).Msg("Room catalog is up to date")
}
