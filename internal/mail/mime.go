package mail

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-gomail/gomail"
)

func compose(msg Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if att := msg.Attachment; att != nil {
		data := att.Data
		m.Attach(att.Filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type": {fmt.Sprintf("%s; name=%q", att.ContentType, att.Filename)},
			}),
		)
	}
	return m
}

// rawMIME renders msg as a complete RFC 5322 message.
func rawMIME(msg Message) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := compose(msg).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render mime message: %w", err)
	}
	return buf.Bytes(), nil
}
