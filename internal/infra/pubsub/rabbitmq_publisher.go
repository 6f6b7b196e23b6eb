package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pitstop/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// rabbitMQPublisher publishes events to a durable topic exchange on a
// confirm-mode channel.
type rabbitMQPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	confirms chan amqp.Confirmation
	exchange string
	timeout  time.Duration
	logger   *slog.Logger

	// AMQP channels are not safe for concurrent publishes, and confirms
	// arrive in publish order.
	mu sync.Mutex
}

// NewRabbitMQPublisher dials url and declares exchange.
func NewRabbitMQPublisher(url, exchange string, timeout time.Duration, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "rabbitmq: dial")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "rabbitmq: open channel")
	}

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = conn.Close()

		return nil, errors.Wrapf(err, "rabbitmq: declare exchange %s", exchange)
	}

	if err := ch.Confirm(false); err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "rabbitmq: enable confirms")
	}

	return &rabbitMQPublisher{
		conn:     conn,
		ch:       ch,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
		exchange: exchange,
		timeout:  timeout,
		logger:   logger,
	}, nil
}

func (p *rabbitMQPublisher) PublishWorkshopEvent(ctx context.Context, event *service.WorkshopEvent) error {
	body, err := encodeEvent(event)
	if err != nil {
		return err
	}

	if p.conn.IsClosed() || p.ch.IsClosed() {
		return errors.New("rabbitmq: connection is not open")
	}

	headers := amqp.Table{}
	for k, v := range eventAttributes(event) {
		headers[k] = v
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey(event), false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    event.EventID,
		Timestamp:    event.OccurredAt,
		Headers:      headers,
		Body:         body,
	})
	if err != nil {
		return errors.Wrap(err, "rabbitmq: publish")
	}

	select {
	case confirm := <-p.confirms:
		if !confirm.Ack {
			return errors.New("rabbitmq: publish not acknowledged")
		}
	case <-ctx.Done():
		// Drain the pending confirm so the next publish reads its own.
		select {
		case <-p.confirms:
		case <-time.After(p.timeout):
		}

		return errors.Wrap(ctx.Err(), "rabbitmq: waiting for confirm")
	}

	p.logger.Debug("[RabbitMQ] Workshop event published",
		slog.String("exchange", p.exchange),
		slog.String("routing_key", routingKey(event)),
		slog.String("event_id", event.EventID),
	)

	return nil
}

func (p *rabbitMQPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil && !p.conn.IsClosed() {
		return errors.WithStack(p.conn.Close())
	}

	return nil
}
