package events

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/service"

	"github.com/segmentio/kafka-go"
)

// KafkaEventBus publishes order events to a single topic, keyed by order
// code so per-order messages stay in partition order.
type KafkaEventBus struct {
	writer *kafka.Writer
}

func NewKafkaEventBus(brokers []string, topic string) *KafkaEventBus {
	return &KafkaEventBus{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

func (b *KafkaEventBus) PublishOrderPlaced(ctx context.Context, e service.OrderPlacedEvent) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	value, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return b.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.OrderCode),
		Value: value,
	})
}

func (b *KafkaEventBus) Close() error {
	return b.writer.Close()
}
