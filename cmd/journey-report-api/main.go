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

	handler := httphandler.NewHandler(application.Reports, appLogger)
	router := httphandler.NewAPIRouter(handler, cfg.HTTP, cfg.Environment, appLogger)

	addr := application.Addr()
	appLogger.Info().Str("addr", addr).Str("mail_provider", cfg.Mail.Provider).Msg("starting journey report api")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		application.Close()
		os.Exit(1)
	}
}
