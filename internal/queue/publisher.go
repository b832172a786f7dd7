package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	QueueBookingCreated   = "booking.created"
	QueueBookingCancelled = "booking.cancelled"
	QueueBookingExpired   = "booking.expired"
)

// Publisher publishes domain events to RabbitMQ. Publishing is best-effort:
// errors are logged and returned, but callers ignore them so a broker outage
// never fails a booking.
type Publisher struct {
	url string
	log *zap.Logger
}

// NewPublisher returns a Publisher for the given AMQP URL. An empty URL
// yields a disabled publisher; Publish calls become no-ops.
func NewPublisher(url string, log *zap.Logger) *Publisher {
	return &Publisher{
		url: url,
		log: log.With(zap.String("component", "queue_publisher")),
	}
}

func (p *Publisher) Enabled() bool {
	return p != nil && p.url != ""
}

func (p *Publisher) PublishBookingCreated(ctx context.Context, event BookingCreatedEvent) error {
	return p.publish(ctx, QueueBookingCreated, event)
}

func (p *Publisher) PublishBookingCancelled(ctx context.Context, event BookingCancelledEvent) error {
	return p.publish(ctx, QueueBookingCancelled, event)
}

func (p *Publisher) PublishBookingExpired(ctx context.Context, event BookingExpiredEvent) error {
	return p.publish(ctx, QueueBookingExpired, event)
}

func (p *Publisher) publish(ctx context.Context, queueName string, event any) error {
	if !p.Enabled() {
		return nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn("AMQP dial failed", zap.Error(err), zap.String("queue", queueName))
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("AMQP channel open failed", zap.Error(err), zap.String("queue", queueName))
		return err
	}
	defer ch.Close()

	// Idempotent declare; durable so messages survive broker restarts
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		p.log.Warn("AMQP queue declare failed", zap.Error(err), zap.String("queue", queueName))
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error("Failed to marshal event", zap.Error(err), zap.String("queue", queueName))
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		p.log.Warn("AMQP publish failed", zap.Error(err), zap.String("queue", queueName))
		return err
	}

	return nil
}
