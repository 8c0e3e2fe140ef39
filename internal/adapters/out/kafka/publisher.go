// Package kafka publishes order lifecycle events to a Kafka topic.
//
// Events are emitted after the owning database transaction commits, so
// consumers never observe a transition that was rolled back. Delivery is
// best effort: publish failures are logged and do not fail the business
// operation that produced the event.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"commerce/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// messageWriter abstracts the Kafka writer for testing.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// NewWriter creates a Kafka writer for the given brokers and topic.
// Brokers are given as a comma separated list; messages with the same
// key land on the same partition, preserving per-order event ordering.
func NewWriter(brokersCSV, topic string) *kafka.Writer {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}

	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: 10 * time.Second,
	}
}

// statusChangedMessage is the wire format of an order status transition.
type statusChangedMessage struct {
	OrderID      string    `json:"order_id"`
	UserID       int64     `json:"user_id"`
	OldStatus    string    `json:"old_status"`
	NewStatus    string    `json:"new_status"`
	CancelReason string    `json:"cancel_reason,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// OrderEventPublisher publishes order status change events to Kafka.
type OrderEventPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewOrderEventPublisher creates a publisher backed by the given writer.
func NewOrderEventPublisher(writer messageWriter, logger *slog.Logger) *OrderEventPublisher {
	return &OrderEventPublisher{
		writer: writer,
		logger: logger.With("component", "order_event_publisher"),
	}
}

// PublishStatusChanged emits a status transition event keyed by order ID.
// Failures are logged and returned; callers are expected to treat them as
// non-fatal because the transition is already committed.
func (p *OrderEventPublisher) PublishStatusChanged(ctx context.Context, event ports.OrderStatusChangedEvent) error {
	payload := statusChangedMessage{
		OrderID:      event.OrderID,
		UserID:       event.UserID,
		OldStatus:    event.OldStatus.String(),
		NewStatus:    event.NewStatus.String(),
		CancelReason: event.CancelReason,
		OccurredAt:   time.Now().UTC(),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to marshal order status event", "order_id", event.OrderID, "error", err)
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
		Time:  time.Now().UTC(),
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, "Failed to publish order status event",
			"order_id", event.OrderID,
			"old_status", payload.OldStatus,
			"new_status", payload.NewStatus,
			"error", err)
		return err
	}

	return nil
}
