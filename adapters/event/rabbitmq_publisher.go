package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-showcase/internal/application/service"
	"github.com/khoahotran/portfolio-showcase/internal/domain/interview"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

type RabbitMQPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  logger.Logger
}

func dialReminderExchange(url string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		ReminderExchange,
		"fanout",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, fmt.Errorf("declare exchange: %w", err)
	}
	return conn, ch, nil
}

func NewRabbitMQPublisher(url string, log logger.Logger) (*RabbitMQPublisher, error) {
	conn, ch, err := dialReminderExchange(url)
	if err != nil {
		return nil, err
	}
	log.Info("Connect RabbitMQ publisher successfully.")
	return &RabbitMQPublisher{conn: conn, channel: ch, logger: log}, nil
}

var _ service.ReminderPublisher = (*RabbitMQPublisher)(nil)

func (p *RabbitMQPublisher) PublishReminder(ctx context.Context, r interview.Reminder) error {
	body, err := json.Marshal(NewReminderEventPayload(r))
	if err != nil {
		return fmt.Errorf("marshal reminder event: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		ReminderExchange,
		"",
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish reminder event: %w", err)
	}

	p.logger.Info("Published reminder event", zap.String("interview_id", r.InterviewID))
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		return err
	}
	return p.conn.Close()
}
