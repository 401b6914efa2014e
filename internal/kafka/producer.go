package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"payment-gateway/internal/config"
	"payment-gateway/internal/logger"
	"payment-gateway/internal/models"
)

// Producer publishes payment events. In mock mode (no broker available, or
// local development) events are logged and dropped instead of written.
type Producer struct {
	Writer   *kafka.Writer
	Topics   config.TopicConfig
	MockMode bool
	Logger   *logger.Logger
}

func NewProducer(cfg config.KafkaConfig, log *logger.Logger) *Producer {
	if !cfg.Enabled || cfg.MockMode {
		return &Producer{Topics: cfg.Topics, MockMode: true, Logger: log}
	}

	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  cfg.Brokers,
		Balancer: &kafka.LeastBytes{},
	})
	return &Producer{Writer: writer, Topics: cfg.Topics, Logger: log}
}

// Publish writes one message to the given topic.
func (p *Producer) Publish(topic, key string, value []byte) error {
	if p.MockMode {
		if p.Logger != nil {
			p.Logger.LogKafka("MOCK", topic, string(value))
		}
		return nil
	}

	err := p.Writer.WriteMessages(context.Background(), kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("kafka publish to %s: %w", topic, err)
	}
	if p.Logger != nil {
		p.Logger.LogKafka("PUBLISH", topic, key)
	}
	return nil
}

// PublishPaymentEvent routes a payment event to the topic matching its
// status: completed to the success topic, failed to the failed topic, and
// everything else (pending) to the general events topic.
func (p *Producer) PublishPaymentEvent(event models.PaymentEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	topic := p.Topics.PaymentEvents
	switch event.Status {
	case models.StatusCompleted:
		topic = p.Topics.PaymentSuccess
	case models.StatusFailed:
		topic = p.Topics.PaymentFailed
	}

	key := event.TransactionID
	if key == "" {
		key = event.OrderID
	}
	return p.Publish(topic, key, value)
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	if p.Writer == nil {
		return nil
	}
	return p.Writer.Close()
}
