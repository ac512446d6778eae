package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/tessera-live/tessera/internal/domain/event"
	"github.com/tessera-live/tessera/internal/shared/config"
	"github.com/tessera-live/tessera/internal/shared/logger"
)

const paymentConfirmedRoutingKey = "payment.confirmed"

// PaymentConfirmedEvent is emitted after an offline payment was confirmed.
// Consumers drive confirmation mail and export refreshes from it.
type PaymentConfirmedEvent struct {
	EventID        uint   `json:"event_id"`
	EventShortName string `json:"event_short_name"`
	ReservationID  string `json:"reservation_id"`
	Timestamp      int64  `json:"timestamp"`
}

// AMQPPaymentEventBus publishes payment events to a durable AMQP exchange.
// Publishing is best effort: callers log failures and move on, a confirmed
// payment is never rolled back because the broker was unreachable.
type AMQPPaymentEventBus struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   logger.Interface
}

func NewAMQPPaymentEventBus(cfg *config.AMQPConfig, logger logger.Interface) (*AMQPPaymentEventBus, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to amqp broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open amqp channel: %w", err)
	}

	// Durable topic exchange so events survive broker restarts.
	if err := channel.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare amqp exchange: %w", err)
	}

	return &AMQPPaymentEventBus{
		conn:     conn,
		channel:  channel,
		exchange: cfg.Exchange,
		logger:   logger,
	}, nil
}

func (b *AMQPPaymentEventBus) PublishPaymentConfirmed(ctx context.Context, ev *event.Event, reservationID string) error {
	payload := PaymentConfirmedEvent{
		EventID:        ev.ID(),
		EventShortName: ev.ShortName(),
		ReservationID:  reservationID,
		Timestamp:      time.Now().Unix(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payment event: %w", err)
	}

	err = b.channel.PublishWithContext(ctx,
		b.exchange,
		paymentConfirmedRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish payment event: %w", err)
	}

	b.logger.Debugw("payment event published",
		"routing_key", paymentConfirmedRoutingKey,
		"reservation_id", reservationID,
	)
	return nil
}

func (b *AMQPPaymentEventBus) Close() error {
	if err := b.channel.Close(); err != nil {
		b.conn.Close()
		return fmt.Errorf("failed to close amqp channel: %w", err)
	}
	if err := b.conn.Close(); err != nil {
		return fmt.Errorf("failed to close amqp connection: %w", err)
	}
	return nil
}
