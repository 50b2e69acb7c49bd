package event

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-showcase/internal/domain/interview"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

// NoopPublisher is used when reminders.transport is "none".
type NoopPublisher struct {
	logger logger.Logger
}

func NewNoopPublisher(log logger.Logger) *NoopPublisher {
	return &NoopPublisher{logger: log}
}

func (p *NoopPublisher) PublishReminder(_ context.Context, r interview.Reminder) error {
	p.logger.Info("Reminder transport disabled, dropping reminder",
		zap.String("interview_id", r.InterviewID), zap.Time("remind_at", r.RemindAt))
	return nil
}

func (p *NoopPublisher) Close() error { return nil }
