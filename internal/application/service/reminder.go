package service

import (
	"context"

	"github.com/khoahotran/portfolio-showcase/internal/domain/interview"
)

// ReminderPublisher hands a reminder to the delivery pipeline. It does not
// wait for delivery.
type ReminderPublisher interface {
	PublishReminder(ctx context.Context, r interview.Reminder) error
	Close() error
}
