package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"pgsystem/config"
	"pgsystem/infras/kafka"
	"pgsystem/infras/rabbitmq"
	"pgsystem/shared/constant"
	"strings"

	"github.com/rs/zerolog/log"
)

// Message is a broker-neutral view of one delivered event.
type Message struct {
	Topic string
	Key   string
	Value []byte
}

// Decode unmarshals the message body into T.
func Decode[T any](msg Message) (T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		return value, fmt.Errorf("failed to decode event from %s: %w", msg.Topic, err)
	}

	return value, nil
}

type Handler func(ctx context.Context, msg Message) error

type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload any) error
	Close() error
}

type Subscriber interface {
	// Subscribe blocks until ctx is cancelled.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}

// NewPublisher picks the broker named by EVENTS_DRIVER. Unknown or empty drivers publish nothing.
func NewPublisher(cfg *config.Config) Publisher {
	switch driver(cfg) {
	case constant.EventsDriverKafka:
		return &kafkaPublisher{client: kafka.New(cfg)}
	case constant.EventsDriverRabbitMQ:
		return &rabbitPublisher{client: rabbitmq.New(cfg)}
	default:
		log.Info().Str("driver", cfg.Events.Driver).Msg("event publishing disabled")

		return noop{}
	}
}

func NewSubscriber(cfg *config.Config) (Subscriber, error) {
	switch driver(cfg) {
	case constant.EventsDriverKafka:
		return &kafkaSubscriber{client: kafka.New(cfg)}, nil
	case constant.EventsDriverRabbitMQ:
		return &rabbitSubscriber{client: rabbitmq.New(cfg)}, nil
	default:
		return nil, fmt.Errorf("events driver %q cannot be subscribed to", cfg.Events.Driver)
	}
}

func driver(cfg *config.Config) string {
	return strings.ToLower(strings.TrimSpace(cfg.Events.Driver))
}

func encode(payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode event: %w", err)
	}

	return body, nil
}

type noop struct{}

func (noop) Publish(context.Context, string, string, any) error { return nil }

func (noop) Close() error { return nil }
