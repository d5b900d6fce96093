package main

import (
	"context"
	"fmt"
	"os"

	"journey-report-service/internal/app"
	"journey-report-service/internal/config"
	httphandler "journey-report-service/internal/http"
	"journey-report-service/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	application, err := app.New(context.Background(), cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to initialise service")
	}
	defer application.Close()

	handler := httphandler.NewWebHandler(application.Reports, appLogger)
	router, err := httphandler.NewWebRouter(handler, cfg.HTTP, cfg.Environment, appLogger)
	if err != nil {
		appLogger.Error().Err(err).Msg("failed to load templates")
		application.Close()
		os.Exit(1)
	}

	addr := application.Addr()
	appLogger.Info().Str("addr", addr).Msg("starting journey report web form")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		application.Close()
		os.Exit(1)
	}
}
