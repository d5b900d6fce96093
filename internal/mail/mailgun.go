package mail

import (
	"context"
	"fmt"

	"github.com/mailgun/mailgun-go/v4"
)

type MailgunSender struct {
	mg *mailgun.MailgunImpl
}

func NewMailgunSender(domain, apiKey string) *MailgunSender {
	return &MailgunSender{mg: mailgun.NewMailgun(domain, apiKey)}
}

func (s *MailgunSender) Send(ctx context.Context, msg Message) error {
	if err := msg.validate(); err != nil {
		return err
	}

	m := s.mg.NewMessage(msg.From, msg.Subject, msg.Body, msg.To...)
	if att := msg.Attachment; att != nil {
		m.AddBufferAttachment(att.Filename, att.Data)
	}

	if _, _, err := s.mg.Send(ctx, m); err != nil {
		return fmt.Errorf("mailgun send: %w", err)
	}
	return nil
}
