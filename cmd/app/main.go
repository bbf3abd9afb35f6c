package main

import (
	"context"
	"pgsystem/config"
	"pgsystem/di"
	"pgsystem/helper"
	"pgsystem/shared/logger"
	"time"

	"github.com/rs/zerolog/log"
)

const seedTimeout = 30 * time.Second

// @title PG System API
// @version 1.0
// @description Room booking API.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	app := di.InitializeApp()

	if cfg.App.Catalog.SeedOnStart {
		ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)

		if _, err := app.Seeder.SeedIfEmpty(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to seed room catalog")
		}

		cancel()
	}

	app.HTTP.Serve()
}
