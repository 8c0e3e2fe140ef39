package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"

	segmentio "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMessageWriter struct {
	mock.Mock
}

func (m *MockMessageWriter) WriteMessages(ctx context.Context, msgs ...segmentio.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func testEvent() ports.OrderStatusChangedEvent {
	return ports.OrderStatusChangedEvent{
		OrderID:   "0198c0de-0000-7000-8000-000000000001",
		UserID:    7,
		OldStatus: order.Checking,
		NewStatus: order.Verified,
	}
}

func TestOrderEventPublisher_PublishStatusChanged(t *testing.T) {
	t.Run("writes message keyed by order id", func(t *testing.T) {
		writer := new(MockMessageWriter)
		publisher := NewOrderEventPublisher(writer, slog.Default())

		var captured []segmentio.Message
		writer.On("WriteMessages", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).([]segmentio.Message)
			}).
			Return(nil).Once()

		err := publisher.PublishStatusChanged(context.Background(), testEvent())
		require.NoError(t, err)

		require.Len(t, captured, 1)
		assert.Equal(t, "0198c0de-0000-7000-8000-000000000001", string(captured[0].Key))

		var payload statusChangedMessage
		require.NoError(t, json.Unmarshal(captured[0].Value, &payload))
		assert.Equal(t, "0198c0de-0000-7000-8000-000000000001", payload.OrderID)
		assert.Equal(t, int64(7), payload.UserID)
		assert.Equal(t, "checking", payload.OldStatus)
		assert.Equal(t, "verified", payload.NewStatus)
		assert.Empty(t, payload.CancelReason)
		assert.False(t, payload.OccurredAt.IsZero())

		writer.AssertExpectations(t)
	})

	t.Run("includes cancel reason for cancellations", func(t *testing.T) {
		writer := new(MockMessageWriter)
		publisher := NewOrderEventPublisher(writer, slog.Default())

		event := testEvent()
		event.NewStatus = order.Cancelled
		event.CancelReason = "out of stock"

		var captured []segmentio.Message
		writer.On("WriteMessages", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).([]segmentio.Message)
			}).
			Return(nil).Once()

		err := publisher.PublishStatusChanged(context.Background(), event)
		require.NoError(t, err)

		var payload statusChangedMessage
		require.NoError(t, json.Unmarshal(captured[0].Value, &payload))
		assert.Equal(t, "cancelled", payload.NewStatus)
		assert.Equal(t, "out of stock", payload.CancelReason)
	})

	t.Run("returns writer error", func(t *testing.T) {
		writer := new(MockMessageWriter)
		publisher := NewOrderEventPublisher(writer, slog.Default())

		writeErr := errors.New("broker unavailable")
		writer.On("WriteMessages", mock.Anything, mock.Anything).Return(writeErr).Once()

		err := publisher.PublishStatusChanged(context.Background(), testEvent())
		assert.ErrorIs(t, err, writeErr)
	})
}

func TestNewWriter(t *testing.T) {
	writer := NewWriter("localhost:9092, localhost:9093,", "order-status-changed")

	assert.Equal(t, "order-status-changed", writer.Topic)
	assert.Equal(t, "localhost:9092,localhost:9093", writer.Addr.String())
}
