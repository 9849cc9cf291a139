package main

import (
	"os"

	"github.com/ecem/goodworks/internal/pkg/logger"
	"github.com/ecem/goodworks/internal/server"
)

// @title GoodWorks API
// @version 1.0
// @description Backend for a community volunteering site: members, works, news and events
// @host localhost:8080
// @BasePath /api

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
