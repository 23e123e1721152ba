package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	portssvc "github.com/ObraLedger/construction_finance_app/internal/core/ports/services"
	"github.com/segmentio/kafka-go"
)

// Publisher emits record lifecycle events to Kafka. The topic passed to
// Publish becomes the message key; all events share one stream so consumers
// see creates and deletes in order.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Ensure Publisher implements the portssvc.EventPublisher interface
var _ portssvc.EventPublisher = (*Publisher)(nil)

func (p *Publisher) Publish(ctx context.Context, eventType string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", eventType, err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(eventType),
		Value: data,
	})
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
