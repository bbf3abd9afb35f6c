package event

import (
	"context"
	"pgsystem/infras/kafka"

	kafkaGo "github.com/segmentio/kafka-go"
)

type kafkaPublisher struct {
	client kafka.Client
}

func (p *kafkaPublisher) Publish(ctx context.Context, topic, key string, payload any) error {
	body, err := encode(payload)
	if err != nil {
		return err
	}

	return p.client.SendMessages(ctx, topic, kafka.Message{Key: key, Value: body}) //nolint:wrapcheck
}

func (p *kafkaPublisher) Close() error {
	return p.client.Close() //nolint:wrapcheck
}

type kafkaSubscriber struct {
	client kafka.Client
}

func (s *kafkaSubscriber) Subscribe(ctx context.Context, topic string, handler Handler) error {
	return s.client.Consume(ctx, "", topic, func(ctx context.Context, msg kafkaGo.Message) error { //nolint:wrapcheck
		return handler(ctx, Message{Topic: msg.Topic, Key: string(msg.Key), Value: msg.Value})
	})
}

func (s *kafkaSubscriber) Close() error {
	return s.client.Close() //nolint:wrapcheck
}
