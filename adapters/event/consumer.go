package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-showcase/internal/config"
	"github.com/khoahotran/portfolio-showcase/internal/domain/interview"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

type ReminderHandler func(ctx context.Context, r interview.Reminder) error

// ReminderConsumer blocks in Consume until ctx is cancelled or the transport fails.
type ReminderConsumer interface {
	Consume(ctx context.Context, handle ReminderHandler) error
	Close() error
}

func decodeReminder(body []byte) (interview.Reminder, error) {
	var payload ReminderEventPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return interview.Reminder{}, fmt.Errorf("unmarshal reminder event: %w", err)
	}
	if payload.EventType != ReminderEventScheduled {
		return interview.Reminder{}, fmt.Errorf("unexpected event type %q", payload.EventType)
	}
	return payload.Reminder(), nil
}

type KafkaReminderConsumer struct {
	reader *kafka.Reader
	logger logger.Logger
}

func NewKafkaReminderConsumer(cfg config.Config, log logger.Logger) (*KafkaReminderConsumer, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    TopicInterviewReminders,
		GroupID:  cfg.Kafka.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return &KafkaReminderConsumer{reader: reader, logger: log}, nil
}

func (c *KafkaReminderConsumer) Consume(ctx context.Context, handle ReminderHandler) error {
	c.logger.Info("Listening for reminders", zap.String("topic", TopicInterviewReminders))
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("read message from kafka: %w", err)
		}

		c.logger.Debug("Received message", zap.String("topic", msg.Topic), zap.String("key", string(msg.Key)))

		r, err := decodeReminder(msg.Value)
		if err != nil {
			c.logger.Error("Failed to decode reminder, skipping", err)
			c.commit(ctx, msg)
			continue
		}

		if err := handle(ctx, r); err != nil {
			c.logger.Error("Failed to handle reminder", err, zap.String("interview_id", r.InterviewID))
			continue
		}
		c.commit(ctx, msg)
	}
}

func (c *KafkaReminderConsumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		c.logger.Error("Failed to commit message", err)
	}
}

func (c *KafkaReminderConsumer) Close() error {
	return c.reader.Close()
}

type RabbitMQReminderConsumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  logger.Logger
}

func NewRabbitMQReminderConsumer(url string, log logger.Logger) (*RabbitMQReminderConsumer, error) {
	conn, ch, err := dialReminderExchange(url)
	if err != nil {
		return nil, err
	}

	q, err := ch.QueueDeclare(ReminderQueue, true, false, false, false, nil)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.QueueBind(q.Name, "", ReminderExchange, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	return &RabbitMQReminderConsumer{conn: conn, channel: ch, logger: log}, nil
}

func (c *RabbitMQReminderConsumer) Consume(ctx context.Context, handle ReminderHandler) error {
	msgs, err := c.channel.Consume(ReminderQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("register consumer: %w", err)
	}
	c.logger.Info("Listening for reminders", zap.String("queue", ReminderQueue))

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("rabbitmq delivery channel closed")
			}
			r, err := decodeReminder(d.Body)
			if err != nil {
				c.logger.Error("Failed to decode reminder, dropping", err)
				d.Nack(false, false)
				continue
			}
			if err := handle(ctx, r); err != nil {
				c.logger.Error("Failed to handle reminder", err, zap.String("interview_id", r.InterviewID))
				d.Nack(false, true)
				continue
			}
			d.Ack(false)
		}
	}
}

func (c *RabbitMQReminderConsumer) Close() error {
	if err := c.channel.Close(); err != nil {
		return err
	}
	return c.conn.Close()
}
