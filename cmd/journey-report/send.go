package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"journey-report-service/internal/service"
)

const passwordEnv = "JOURNEY_REPORT_SENDER_PASSWORD"

func NewSendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Email the journey workbook",
		Long: `Send builds the workbook for the selected range and mails it as an
attachment through the configured MAIL_PROVIDER.

The sender password can be passed with --password or the
JOURNEY_REPORT_SENDER_PASSWORD environment variable. Without sender flags the
configured MAIL_FROM and SMTP credentials are used.

Examples:
  journey-report send --to fleet@example.com
  journey-report send --start 2024-03-01 --end 2024-03-31 --to fleet@example.com --from me@example.com`,
		Args: cobra.NoArgs,
		RunE: runSendCmd,
	}

	cmd.Flags().String("to", "", "Recipient email address")
	cmd.Flags().String("from", "", "Sender email address")
	cmd.Flags().String("password", "", "Sender password")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runSendCmd(cmd *cobra.Command, _ []string) error {
	to, err := cmd.Flags().GetString("to")
	if err != nil {
		return err
	}
	from, err := cmd.Flags().GetString("from")
	if err != nil {
		return err
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return err
	}
	if password == "" {
		password = os.Getenv(passwordEnv)
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

	artifact, err := runner.Send(cmd.Context(), rng, service.EmailRequest{
		SenderEmail:    from,
		SenderPassword: password,
		RecipientEmail: to,
	})
	if errors.Is(err, service.ErrNoData) {
		fmt.Fprintf(cmd.OutOrStdout(), "No data found between %s and %s.\n", rng.StartLabel(), rng.EndLabel())
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Sent %s to %s\n", artifact.Filename, to)
	return nil
}
