// Package events publishes order-status changes to the stream consumed by
// the notification pipeline.
package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/bazaarph/marketplace-api/internal/domain"
)

// Publisher emits order status events.
type Publisher interface {
	PublishStatusChange(ctx context.Context, event domain.OrderStatusEvent) error
	Close() error
}

type kafkaPublisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// NewKafkaPublisher creates a publisher writing to the given brokers and
// topic. Messages are keyed by order id so a consumer sees each order's
// events in sequence.
func NewKafkaPublisher(brokers, topic string, logger *zap.Logger) Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(brokers, ",")...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
	return &kafkaPublisher{writer: writer, logger: logger}
}

func (p *kafkaPublisher) PublishStatusChange(ctx context.Context, event domain.OrderStatusEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: value,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish status event",
			zap.String("order_id", event.OrderID.String()),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops events, used when no
// broker is configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishStatusChange(context.Context, domain.OrderStatusEvent) error {
	return nil
}

func (noopPublisher) Close() error { return nil }
