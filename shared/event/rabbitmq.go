package event

import (
	"context"
	"pgsystem/infras/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
)

// rabbitPublisher maps each topic onto a durable queue of the same name.
type rabbitPublisher struct {
	client rabbitmq.Client
}

func (p *rabbitPublisher) Publish(ctx context.Context, topic, key string, payload any) error {
	body, err := encode(payload)
	if err != nil {
		return err
	}

	return p.client.Publish(ctx, topic, key, body) //nolint:wrapcheck
}

func (p *rabbitPublisher) Close() error {
	return p.client.Close() //nolint:wrapcheck
}

type rabbitSubscriber struct {
	client rabbitmq.Client
}

func (s *rabbitSubscriber) Subscribe(ctx context.Context, topic string, handler Handler) error {
	return s.client.Consume(ctx, topic, func(ctx context.Context, delivery amqp.Delivery) error { //nolint:wrapcheck
		return handler(ctx, Message{Topic: topic, Key: delivery.MessageId, Value: delivery.Body})
	})
}

func (s *rabbitSubscriber) Close() error {
	return s.client.Close() //nolint:wrapcheck
}
