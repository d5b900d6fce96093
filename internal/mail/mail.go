package mail

import (
	"context"
	"errors"
	"fmt"

	"journey-report-service/internal/config"
)

var ErrNoRecipient = errors.New("no recipient")

type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Credentials authenticate the SMTP session. API based providers ignore
// them and use their configured keys.
type Credentials struct {
	Username string
	Password string
}

type Message struct {
	From       string
	To         []string
	Subject    string
	Body       string
	Attachment *Attachment
	Auth       Credentials
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

func NewSender(ctx context.Context, cfg config.MailConfig) (Sender, error) {
	switch cfg.Provider {
	case "", config.ProviderSMTP:
		return NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, Credentials{
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
		}), nil
	case config.ProviderSES:
		return NewSESSender(ctx, cfg.AWSRegion)
	case config.ProviderMailgun:
		return NewMailgunSender(cfg.MailgunDomain, cfg.MailgunAPIKey), nil
	case config.ProviderSendGrid:
		return NewSendGridSender(cfg.SendGridAPIKey), nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Provider)
	}
}

func (m Message) validate() error {
	if len(m.To) == 0 {
		return ErrNoRecipient
	}
	for _, to := range m.To {
		if to == "" {
			return ErrNoRecipient
		}
	}
	if m.From == "" {
		return errors.New("no sender address")
	}
	return nil
}
