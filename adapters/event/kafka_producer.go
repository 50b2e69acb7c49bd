package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-showcase/internal/application/service"
	"github.com/khoahotran/portfolio-showcase/internal/config"
	"github.com/khoahotran/portfolio-showcase/internal/domain/interview"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducerClient struct {
	ReminderWriter messageWriter
	logger         logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	reminderWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicInterviewReminders,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka Producers successfully.", zap.Strings("brokers", brokers))

	return &KafkaProducerClient{ReminderWriter: reminderWriter, logger: log}, nil
}

var _ service.ReminderPublisher = (*KafkaProducerClient)(nil)

func (c *KafkaProducerClient) PublishReminder(ctx context.Context, r interview.Reminder) error {
	body, err := json.Marshal(NewReminderEventPayload(r))
	if err != nil {
		return fmt.Errorf("marshal reminder event: %w", err)
	}

	err = c.ReminderWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(r.InterviewID),
		Value: body,
	})
	if err != nil {
		return fmt.Errorf("publish reminder event: %w", err)
	}

	c.logger.Info("Published reminder event", zap.String("interview_id", r.InterviewID), zap.Time("remind_at", r.RemindAt))
	return nil
}

func (c *KafkaProducerClient) Close() error {
	if c.ReminderWriter != nil {
		if err := c.ReminderWriter.Close(); err != nil {
			return err
		}
	}
	c.logger.Info("Closed Kafka Producers")
	return nil
}
