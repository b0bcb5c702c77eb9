package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"activity_stream/internal/domain"
)

// ChangeHandler reacts to one directory notification.
type ChangeHandler interface {
	HandleChange(ctx context.Context, change domain.ConnectionChange) error
}

// Consumer subscribes to the broker's connection-change notifications and
// feeds them to the reconciler. Malformed messages are acked and dropped;
// handler failures are requeued once by the broker's redelivery flag.
type Consumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	handler ChangeHandler
	logger  *slog.Logger
}

type Config struct {
	URL      string
	Exchange string
	Queue    string
	BindKey  string
}

func NewConsumer(cfg Config, handler ChangeHandler, logger *slog.Logger) (*Consumer, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.Queue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.BindKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("listening for connection changes",
		"exchange", cfg.Exchange,
		"queue", cfg.Queue,
	)

	return &Consumer{
		conn:    conn,
		channel: ch,
		queue:   q.Name,
		handler: handler,
		logger:  logger,
	}, nil
}

// Start consumes until ctx is cancelled or the channel closes.
func (c *Consumer) Start(ctx context.Context) error {
	deliveries, err := c.channel.Consume(
		c.queue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("start consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			c.handleDelivery(ctx, delivery)
		}
	}
}

func (c *Consumer) handleDelivery(ctx context.Context, delivery amqp.Delivery) {
	var change domain.ConnectionChange
	if err := json.Unmarshal(delivery.Body, &change); err != nil {
		c.logger.Warn("dropping malformed change message", "error", err)
		_ = delivery.Ack(false)
		return
	}

	if err := c.handler.HandleChange(ctx, change); err != nil {
		c.logger.Error("change handling failed",
			"user", change.UserID,
			"action", change.Action,
			"error", err,
		)
		_ = delivery.Nack(false, !delivery.Redelivered)
		return
	}

	_ = delivery.Ack(false)
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
