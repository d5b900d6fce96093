package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"journey-report-service/internal/service"
)

func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the journey workbook to disk",
		Long: `Generate builds the workbook for the selected range and writes it into the
output directory as journey_report_<start>_<end>.xlsx.

Examples:
  # Last 180 days into the current directory
  journey-report generate

  # A single month into reports/
  journey-report generate --start 2024-03-01 --end 2024-03-31 -o reports`,
		Args: cobra.NoArgs,
		RunE: runGenerateCmd,
	}

	cmd.Flags().StringP("output", "o", ".", "Directory the workbook is written to")

	return cmd
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	outputDir, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	runner, closeFn, err := openRunner(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	rng, err := rangeFromFlags(cmd, runner)
	if err != nil {
		return err
	}

	artifact, err := runner.Generate(cmd.Context(), rng)
	if errors.Is(err, service.ErrNoData) {
		fmt.Fprintf(cmd.OutOrStdout(), "No data found between %s and %s.\n", rng.StartLabel(), rng.EndLabel())
		return nil
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(outputDir, artifact.Filename)
	if err := os.WriteFile(path, artifact.Data, 0600); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d journeys, %d sheets)\n", path, artifact.Summary.Journeys, len(artifact.Summary.Months))
	return nil
}
