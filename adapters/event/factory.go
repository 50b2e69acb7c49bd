package event

import (
	"fmt"

	"github.com/khoahotran/portfolio-showcase/internal/application/service"
	"github.com/khoahotran/portfolio-showcase/internal/config"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

func NewReminderPublisher(cfg config.Config, log logger.Logger) (service.ReminderPublisher, error) {
	switch cfg.Reminders.Transport {
	case config.TransportKafka:
		return NewKafkaProducerClient(cfg, log)
	case config.TransportRabbitMQ:
		return NewRabbitMQPublisher(cfg.RabbitMQ.URL, log)
	case config.TransportNone, "":
		return NewNoopPublisher(log), nil
	default:
		return nil, fmt.Errorf("unknown reminders transport %q", cfg.Reminders.Transport)
	}
}

func NewReminderConsumer(cfg config.Config, log logger.Logger) (ReminderConsumer, error) {
	switch cfg.Reminders.Transport {
	case config.TransportKafka:
		return NewKafkaReminderConsumer(cfg, log)
	case config.TransportRabbitMQ:
		return NewRabbitMQReminderConsumer(cfg.RabbitMQ.URL, log)
	default:
		return nil, fmt.Errorf("reminders transport %q has no consumer", cfg.Reminders.Transport)
	}
}
