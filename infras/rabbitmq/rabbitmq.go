package rabbitmq

//go:generate go run go.uber.org/mock/mockgen -source=./rabbitmq.go -destination=./mocks/rabbitmq_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"pgsystem/config"
	"pgsystem/shared/constant"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const (
	prefetchCount  = 50
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

var errDeliveriesClosed = errors.New("deliveries channel closed")

type Client interface {
	Publish(ctx context.Context, queue, messageID string, body []byte) error
	Consume(ctx context.Context, queue string, handler func(ctx context.Context, delivery amqp.Delivery) error) error
	Close() error
}

type rabbitClientImpl struct {
	url string

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

// New does not dial. The connection is opened on first use and reopened after it drops.
func New(cfg *config.Config) Client {
	log.Info().Msg("RabbitMQ client initialized")

	return &rabbitClientImpl{url: cfg.Events.RabbitMQ.URL}
}

func (r *rabbitClientImpl) openChannel() (*amqp.Channel, error) {
	if r.channel != nil && !r.channel.IsClosed() {
		return r.channel, nil
	}

	if r.conn == nil || r.conn.IsClosed() {
		conn, err := amqp.Dial(r.url)
		if err != nil {
			return nil, fmt.Errorf("failed to dial RabbitMQ: %w", err)
		}

		r.conn = conn
	}

	channel, err := r.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}

	r.channel = channel

	return channel, nil
}

func declare(channel *amqp.Channel, queue string) error {
	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}

	return nil
}

// Publish sends a persistent message to a durable queue through the default exchange.
func (r *rabbitClientImpl) Publish(ctx context.Context, queue, messageID string, body []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	channel, err := r.openChannel()
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to RabbitMQ.")

		return err
	}

	if err := declare(channel, queue); err != nil {
		return err
	}

	err = channel.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:  constant.ContentTypeJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    messageID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("Failed to publish message to RabbitMQ.")

		return fmt.Errorf("failed to publish message to RabbitMQ: %w", err)
	}

	return nil
}

// Consume blocks until ctx is cancelled, reconnecting with exponential backoff. Messages the
// handler rejects are dropped without requeue.
func (r *rabbitClientImpl) Consume(ctx context.Context, queue string, handler func(ctx context.Context, delivery amqp.Delivery) error) error {
	backoff := initialBackoff

	for {
		err := r.consumeLoop(ctx, queue, handler)
		if ctx.Err() != nil {
			return nil
		}

		if err != nil && !errors.Is(err, errDeliveriesClosed) {
			log.Error().Err(err).Dur("retry_in", backoff).Msg("RabbitMQ consumer failed.")
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(backoff):
		}

		backoff = min(backoff*2, maxBackoff)
	}
}

func (r *rabbitClientImpl) consumeLoop(ctx context.Context, queue string, handler func(ctx context.Context, delivery amqp.Delivery) error) error {
	conn, err := amqp.Dial(r.url)
	if err != nil {
		return fmt.Errorf("failed to dial RabbitMQ: %w", err)
	}
	defer func() { _ = conn.Close() }()

	channel, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}
	defer func() { _ = channel.Close() }()

	if err := channel.Qos(prefetchCount, 0, false); err != nil {
		log.Warn().Err(err).Msg("Failed to set RabbitMQ QoS.")
	}

	if err := declare(channel, queue); err != nil {
		return err
	}

	deliveries, err := channel.ConsumeWithContext(ctx, queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to consume queue %s: %w", queue, err)
	}

	log.Info().Str("queue", queue).Msg("Consuming from RabbitMQ.")

	for delivery := range deliveries {
		if err := handler(ctx, delivery); err != nil {
			log.Error().Err(err).Str("queue", queue).Msg("Failed to handle RabbitMQ message.")

			_ = delivery.Nack(false, false)

			continue
		}

		_ = delivery.Ack(false)
	}

	return errDeliveriesClosed
}

func (r *rabbitClientImpl) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conn == nil || r.conn.IsClosed() {
		return nil
	}

	if err := r.conn.Close(); err != nil {
		return fmt.Errorf("failed to close RabbitMQ connection: %w", err)
	}

	return nil
}
