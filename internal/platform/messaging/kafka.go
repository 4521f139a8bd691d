package messaging

import (
	"context"
	"log/slog"

	"github.com/segmentio/kafka-go"
)

// Kafka is the event bus adapter used by the worker outbox relays. All domain
// events share one topic; the event type rides in the message key and headers
// so consumers can filter without decoding payloads.
type Kafka struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewKafka(brokers []string, topic string, logger *slog.Logger) *Kafka {
	if logger == nil {
		logger = slog.Default()
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
	}
	return &Kafka{writer: writer, logger: logger}
}

func (k *Kafka) Publish(ctx context.Context, eventType string, payload []byte) error {
	err := k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(eventType),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	})
	if err != nil {
		k.logger.Error("event publish failed",
			"event", "kafka_publish_failed",
			"module", "internal/platform/messaging",
			"layer", "platform",
			"event_type", eventType,
			"error", err.Error(),
		)
		return err
	}

	k.logger.Info("event published",
		"event", "kafka_publish",
		"module", "internal/platform/messaging",
		"layer", "platform",
		"event_type", eventType,
	)
	return nil
}

// PublishCartEvent satisfies the cart-service publisher port.
func (k *Kafka) PublishCartEvent(ctx context.Context, eventType string, payload []byte) error {
	return k.Publish(ctx, eventType, payload)
}

// PublishRoleChanged satisfies the authorization-service publisher port.
func (k *Kafka) PublishRoleChanged(ctx context.Context, eventType string, payload []byte) error {
	return k.Publish(ctx, eventType, payload)
}

func (k *Kafka) Close() error {
	return k.writer.Close()
}
