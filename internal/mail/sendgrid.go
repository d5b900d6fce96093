package mail

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendgridAPI interface {
	SendWithContext(ctx context.Context, email *sgmail.SGMailV3) (*rest.Response, error)
}

type SendGridSender struct {
	client sendgridAPI
}

func NewSendGridSender(apiKey string) *SendGridSender {
	return &SendGridSender{client: sendgrid.NewSendClient(apiKey)}
}

func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	if err := msg.validate(); err != nil {
		return err
	}

	resp, err := s.client.SendWithContext(ctx, sendgridMessage(msg))
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

func sendgridMessage(msg Message) *sgmail.SGMailV3 {
	m := sgmail.NewV3MailInit(
		sgmail.NewEmail("", msg.From),
		msg.Subject,
		sgmail.NewEmail("", msg.To[0]),
		sgmail.NewContent("text/plain", msg.Body),
	)
	for _, to := range msg.To[1:] {
		m.Personalizations[0].AddTos(sgmail.NewEmail("", to))
	}

	if att := msg.Attachment; att != nil {
		a := sgmail.NewAttachment()
		a.SetContent(base64.StdEncoding.EncodeToString(att.Data))
		a.SetType(att.ContentType)
		a.SetFilename(att.Filename)
		a.SetDisposition("attachment")
		m.AddAttachment(a)
	}
	return m
}
