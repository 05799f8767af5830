// Package queue publishes domain events to an AMQP broker. Publishing is
// best effort: failures are logged and returned but never abort the
// request that produced the event.
package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const orderCreatedQueue = "order.created"

// OrderCreatedEvent is published after an order commits. It carries
// enough for downstream consumers (logging, analytics) without a
// database round trip.
type OrderCreatedEvent struct {
	OrderID     string           `json:"order_id"`
	UserID      string           `json:"user_id"`
	TicketCount int              `json:"ticket_count"`
	Tickets     []OrderEventSeat `json:"tickets"`
	CreatedAt   string           `json:"created_at"`
}

type OrderEventSeat struct {
	SpaceflightID string `json:"spaceflight_id"`
	Row           int    `json:"row"`
	Seat          int    `json:"seat"`
}

// Publisher dials the broker per publish. A nil Publisher or an empty URL
// disables publishing.
type Publisher struct {
	url string
	log *zap.Logger
}

func NewPublisher(url string, log *zap.Logger) *Publisher {
	if url == "" {
		return nil
	}
	return &Publisher{
		url: url,
		log: log.With(zap.String("component", "queue_publisher")),
	}
}

// PublishOrderCreated sends the event to the order.created queue. The
// queue is declared durable and messages are persistent.
func (p *Publisher) PublishOrderCreated(ctx context.Context, event OrderCreatedEvent) error {
	if p == nil {
		return nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn("Broker dial failed", zap.Error(err))
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("Broker channel open failed", zap.Error(err))
		return err
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(
		orderCreatedQueue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		p.log.Warn("Queue declare failed", zap.Error(err))
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx,
		"",                // default exchange
		orderCreatedQueue, // routing key = queue name
		false,             // mandatory
		false,             // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		p.log.Warn("Publish failed", zap.Error(err), zap.String("order_id", event.OrderID))
		return err
	}

	return nil
}
