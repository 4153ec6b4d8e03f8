package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"registration-service/internal/app/contracts"
	"registration-service/internal/app/drivers/mailer"
	"registration-service/internal/pkg/constvars"
	"registration-service/internal/pkg/dto/requests"
	"strings"
)

type smtpMailer struct {
	Client *mailer.SMTPClient
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPMailer(client *mailer.SMTPClient) contracts.EmailSender {
	return &smtpMailer{
		Client: client,
		send:   smtp.SendMail,
	}
}

func (s *smtpMailer) SendEmail(ctx context.Context, payload *requests.EmailPayload) error {
	htmlBody := payload.HTMLCode
	if payload.Encoded {
		decoded, err := base64.StdEncoding.DecodeString(payload.HTMLCode)
		if err != nil {
			return err
		}
		htmlBody = string(decoded)
	}

	recipients := append(append(append([]string{}, payload.To...), payload.Cc...), payload.Bcc...)
	msg := fmt.Sprintf(constvars.EmailSendHTMLFormat, payload.From, strings.Join(payload.To, ", "), payload.Subject, htmlBody)
	addr := fmt.Sprintf("%s:%d", s.Client.Host, s.Client.Port)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.send(addr, s.Client.Auth, senderAddress(payload.From), recipients, []byte(msg))
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// senderAddress extracts the bare address from "Name <address>".
func senderAddress(from string) string {
	start := strings.LastIndex(from, "<")
	end := strings.LastIndex(from, ">")
	if start >= 0 && end > start {
		return from[start+1 : end]
	}
	return from
}
