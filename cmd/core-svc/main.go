package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"pawshare/internal/dbmysql"
	"pawshare/internal/wire"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using system environment variables")
	}

	app, err := wire.InitializeApplication()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}
	logger := app.Logger

	if err := dbmysql.AutoMigrate(app.DB); err != nil {
		logger.Fatal().Err(err).Msg("Failed to migrate database")
	}
	logger.Info().Msg("Database migration completed")
	logger.Info().Msg("Core services ready")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down")
	app.Runner.Shutdown()

	if sqlDB, err := app.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close database")
		}
	}
	logger.Info().Msg("Shutdown complete")
}
