package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"journey-report-service/internal/app"
	"journey-report-service/internal/config"
	"journey-report-service/internal/logger"
	"journey-report-service/internal/model"
	"journey-report-service/internal/report"
	"journey-report-service/internal/service"
)

// reportRunner is the part of the report service the commands use.
type reportRunner interface {
	DefaultRange() model.DateRange
	Generate(ctx context.Context, rng model.DateRange) (*report.Artifact, error)
	Send(ctx context.Context, rng model.DateRange, req service.EmailRequest) (*report.Artifact, error)
}

// openRunner is replaced in tests.
var openRunner = func(ctx context.Context) (reportRunner, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	application, err := app.New(ctx, cfg, logger.New(cfg.Environment))
	if err != nil {
		return nil, nil, err
	}
	return application.Reports, application.Close, nil
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journey-report",
		Short: "Build vehicle journey workbooks",
		Long: `journey-report reads journey records for a date range and writes an Excel
workbook with one sheet per month, grouped by vehicle and day.

Configuration is read from the environment or app.env, the same as the
HTTP services. When no dates are given the last REPORT_DEFAULT_RANGE_DAYS
days are used.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("start", "", "First day of the range (YYYY-MM-DD)")
	cmd.PersistentFlags().String("end", "", "Last day of the range (YYYY-MM-DD)")

	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewSendCmd())

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rangeFromFlags(cmd *cobra.Command, runner reportRunner) (model.DateRange, error) {
	start, err := cmd.Flags().GetString("start")
	if err != nil {
		return model.DateRange{}, err
	}
	end, err := cmd.Flags().GetString("end")
	if err != nil {
		return model.DateRange{}, err
	}

	switch {
	case start == "" && end == "":
		return runner.DefaultRange(), nil
	case start == "" || end == "":
		return model.DateRange{}, fmt.Errorf("--start and --end must be given together")
	}
	return model.ParseDateRange(start, end)
}
