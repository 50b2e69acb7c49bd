package mailer

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/mail.v2"

	"github.com/khoahotran/portfolio-showcase/internal/application/service"
	"github.com/khoahotran/portfolio-showcase/internal/config"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

type sender interface {
	DialAndSend(m ...*mail.Message) error
}

type SMTPMailer struct {
	from   string
	dialer sender
	logger logger.Logger
}

func NewSMTPMailer(cfg config.Config, log logger.Logger) (*SMTPMailer, error) {
	if cfg.SMTP.Host == "" {
		return nil, fmt.Errorf("smtp host has not config")
	}
	d := mail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
	return &SMTPMailer{from: cfg.SMTP.From, dialer: d, logger: log}, nil
}

var _ service.Mailer = (*SMTPMailer)(nil)

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	m.logger.Debug("Sending email", zap.String("to", to), zap.String("subject", subject))
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// LogMailer writes reminders to the log instead of sending them. Used when
// SMTP is not configured.
type LogMailer struct {
	logger logger.Logger
}

func NewLogMailer(log logger.Logger) *LogMailer {
	return &LogMailer{logger: log}
}

func (m *LogMailer) Send(_ context.Context, to, subject, body string) error {
	m.logger.Info("Email (not sent, smtp disabled)",
		zap.String("to", to), zap.String("subject", subject), zap.String("body", body))
	return nil
}
