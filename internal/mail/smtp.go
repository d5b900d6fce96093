package mail

import (
	"context"

	"github.com/go-gomail/gomail"
)

type SMTPSender struct {
	host     string
	port     int
	defaults Credentials
}

func NewSMTPSender(host string, port int, defaults Credentials) *SMTPSender {
	return &SMTPSender{host: host, port: port, defaults: defaults}
}

// Send logs in with the message credentials when given, falling back to the
// configured account. The sender address defaults to the login user.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	auth := msg.Auth
	if auth.Username == "" {
		auth = s.defaults
	}
	if msg.From == "" {
		msg.From = auth.Username
	}
	if err := msg.validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dialer := gomail.NewDialer(s.host, s.port, auth.Username, auth.Password)
	return dialer.DialAndSend(compose(msg))
}
