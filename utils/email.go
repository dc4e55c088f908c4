package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"tropicab/config"
)

// SendEmail delivers a plain-text email through the configured SMTP relay.
func SendEmail(to, subject, body string) error {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" || cfg.SMTPFrom == "" {
		return fmt.Errorf("smtp not configured")
	}

	headers := []string{
		"From: " + cfg.SMTPFrom,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
	}
	msg := strings.Join(headers, "\r\n") + "\r\n\r\n" + body

	addr := cfg.SMTPHost + ":" + cfg.SMTPPort
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}
	if err := smtp.SendMail(addr, auth, cfg.SMTPFrom, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}
