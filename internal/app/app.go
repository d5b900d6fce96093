package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"journey-report-service/internal/config"
	"journey-report-service/internal/db"
	"journey-report-service/internal/mail"
	"journey-report-service/internal/report"
	"journey-report-service/internal/repository"
	"journey-report-service/internal/service"
)

// App holds the wired report service and the resources it owns.
type App struct {
	Config  *config.Config
	Log     zerolog.Logger
	Reports *service.ReportService

	database *gorm.DB
}

func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	loc, err := time.LoadLocation(cfg.Report.Timezone)
	if err != nil {
		return nil, fmt.Errorf("REPORT_TIMEZONE: %w", err)
	}

	sender, err := mail.NewSender(ctx, cfg.Mail)
	if err != nil {
		return nil, fmt.Errorf("mail sender: %w", err)
	}

	database, err := db.New(cfg, log)
	if err != nil {
		return nil, err
	}

	journeyRepo := repository.NewJourneyRepository(database, loc)
	reports := service.NewReportService(journeyRepo, report.NewBuilder(), sender, service.Options{
		DefaultRangeDays: cfg.Report.DefaultRangeDays,
		Location:         loc,
		MailFrom:         cfg.Mail.From,
		MailSubject:      cfg.Mail.Subject,
		MailBody:         cfg.Mail.Body,
	}, log)

	return &App{Config: cfg, Log: log, Reports: reports, database: database}, nil
}

func (a *App) Close() {
	if err := db.Close(a.database); err != nil {
		a.Log.Warn().Err(err).Msg("failed to close database")
	}
}

func (a *App) Addr() string {
	return fmt.Sprintf("%s:%d", a.Config.HTTP.Host, a.Config.HTTP.Port)
}
