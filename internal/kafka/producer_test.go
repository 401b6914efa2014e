package kafka_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-gateway/internal/config"
	"payment-gateway/internal/kafka"
	"payment-gateway/internal/logger"
	"payment-gateway/internal/models"
)

func mockConfig() config.KafkaConfig {
	cfg := config.Load().Kafka
	cfg.Enabled = false
	cfg.MockMode = true
	return cfg
}

func TestNewProducerDefaultsToMockMode(t *testing.T) {
	producer := kafka.NewProducer(mockConfig(), logger.NewSilentLogger())
	assert.True(t, producer.MockMode)
	assert.Nil(t, producer.Writer)
}

func TestMockPublishSucceedsWithoutBroker(t *testing.T) {
	producer := kafka.NewProducer(mockConfig(), logger.NewSilentLogger())

	err := producer.Publish("payment.events", "txn_abc", []byte(`{"ok":true}`))
	assert.NoError(t, err)
	assert.NoError(t, producer.Close())
}

func TestMockPublishToleratesNilLogger(t *testing.T) {
	producer := kafka.NewProducer(mockConfig(), nil)
	assert.NoError(t, producer.Publish("payment.events", "txn_abc", []byte("{}")))
}

func TestPublishPaymentEvent(t *testing.T) {
	producer := kafka.NewProducer(mockConfig(), logger.NewSilentLogger())

	event := models.PaymentEvent{
		Type:          "payment.completed",
		TransactionID: "txn_abc",
		OrderID:       "order-42",
		Method:        models.MethodUPI,
		Status:        models.StatusCompleted,
		Amount:        250,
		Currency:      "INR",
		Timestamp:     time.Now(),
	}
	require.NoError(t, producer.PublishPaymentEvent(event))

	event.Status = models.StatusFailed
	require.NoError(t, producer.PublishPaymentEvent(event))

	event.Status = models.StatusPending
	event.TransactionID = ""
	require.NoError(t, producer.PublishPaymentEvent(event))
}
