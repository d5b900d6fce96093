package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"journey-report-service/internal/mail"
	"journey-report-service/internal/model"
	"journey-report-service/internal/report"
)

var (
	ErrInvalidRange   = errors.New("end_date must not be before start_date")
	ErrInvalidRequest = errors.New("invalid request")
	ErrNoData         = errors.New("no data found for the specified date range")
	ErrDataSource     = errors.New("journey data source failed")
	ErrBuild          = errors.New("report could not be built")
	ErrDelivery       = errors.New("report built but not delivered")
)

type JourneySource interface {
	FetchJourneys(ctx context.Context, rng model.DateRange) ([]model.JourneyRecord, error)
}

type ReportBuilder interface {
	Build(records []model.JourneyRecord, rng model.DateRange) (*report.Artifact, error)
}

type Options struct {
	DefaultRangeDays int
	Location         *time.Location
	MailFrom         string
	MailSubject      string
	MailBody         string
}

type EmailRequest struct {
	SenderEmail    string `json:"sender_email"`
	SenderPassword string `json:"sender_password"`
	RecipientEmail string `json:"recipient_email"`
}

type ReportService struct {
	source  JourneySource
	builder ReportBuilder
	sender  mail.Sender
	opts    Options
	log     zerolog.Logger
	now     func() time.Time
}

func NewReportService(source JourneySource, builder ReportBuilder, sender mail.Sender, opts Options, log zerolog.Logger) *ReportService {
	if opts.DefaultRangeDays <= 0 {
		opts.DefaultRangeDays = 180
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &ReportService{
		source:  source,
		builder: builder,
		sender:  sender,
		opts:    opts,
		log:     log,
		now:     time.Now,
	}
}

func (s *ReportService) DefaultRange() model.DateRange {
	return model.LastDays(s.now().In(s.opts.Location), s.opts.DefaultRangeDays)
}

func (s *ReportService) Generate(ctx context.Context, rng model.DateRange) (*report.Artifact, error) {
	if !rng.Valid() {
		return nil, ErrInvalidRange
	}

	queryStart := time.Now()
	records, err := s.source.FetchJourneys(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataSource, err)
	}
	s.log.Info().
		Str("range", rng.String()).
		Int("records", len(records)).
		Dur("query_time", time.Since(queryStart)).
		Msg("journeys fetched")

	if len(records) == 0 {
		return nil, ErrNoData
	}

	exportStart := time.Now()
	artifact, err := s.builder.Build(records, rng)
	if err != nil {
		if errors.Is(err, report.ErrNoData) {
			return nil, ErrNoData
		}
		return nil, fmt.Errorf("%w: %w", ErrBuild, err)
	}
	s.log.Info().
		Str("file", artifact.Filename).
		Int("bytes", len(artifact.Data)).
		Int("sheets", len(artifact.Summary.Months)).
		Int("journeys", artifact.Summary.Journeys).
		Dur("export_time", time.Since(exportStart)).
		Msg("report built")

	return artifact, nil
}

// Send builds the report and mails it. The artifact is returned together
// with ErrDelivery when only the delivery failed.
func (s *ReportService) Send(ctx context.Context, rng model.DateRange, req EmailRequest) (*report.Artifact, error) {
	if req.RecipientEmail == "" {
		return nil, fmt.Errorf("%w: recipient_email is required", ErrInvalidRequest)
	}

	artifact, err := s.Generate(ctx, rng)
	if err != nil {
		return nil, err
	}

	from := req.SenderEmail
	if from == "" {
		from = s.opts.MailFrom
	}

	msg := mail.Message{
		From:    from,
		To:      []string{req.RecipientEmail},
		Subject: s.opts.MailSubject,
		Body:    s.opts.MailBody,
		Attachment: &mail.Attachment{
			Filename:    artifact.Filename,
			ContentType: artifact.ContentType,
			Data:        artifact.Data,
		},
		Auth: mail.Credentials{Username: req.SenderEmail, Password: req.SenderPassword},
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		return artifact, fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	s.log.Info().Str("file", artifact.Filename).Str("recipient", req.RecipientEmail).Msg("report sent")
	return artifact, nil
}
