package mailer

import (
	"net/smtp"
	"registration-service/internal/app/config"
)

type SMTPClient struct {
	Host     string
	Port     int
	Username string
	Password string
	Auth     smtp.Auth
}

// NewSMTPClient returns nil unless host and credentials are all set.
func NewSMTPClient(driverConfig *config.DriverConfig) *SMTPClient {
	smtpConfig := driverConfig.SMTP
	if smtpConfig.Host == "" || smtpConfig.Username == "" || smtpConfig.Password == "" {
		return nil
	}

	return &SMTPClient{
		Host:     smtpConfig.Host,
		Port:     smtpConfig.Port,
		Username: smtpConfig.Username,
		Password: smtpConfig.Password,
		Auth:     smtp.PlainAuth("", smtpConfig.Username, smtpConfig.Password, smtpConfig.Host),
	}
}
