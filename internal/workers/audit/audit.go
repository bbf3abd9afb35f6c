// Package audit consumes booking events and records them in the log.
package audit

import (
	"context"
	"pgsystem/infras/otel"
	"pgsystem/internal/domains/booking/model"
	"pgsystem/shared/constant"
	"pgsystem/shared/event"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Worker struct {
	subscriber event.Subscriber
	otel       otel.Otel
	logger     zerolog.Logger
}

func New(subscriber event.Subscriber, otel otel.Otel) *Worker {
	return &Worker{
		subscriber: subscriber,
		otel:       otel,
		logger:     log.With().Str("component", "audit").Logger(),
	}
}

// WithLogger swaps the audit sink, mostly for tests.
func (w *Worker) WithLogger(logger zerolog.Logger) *Worker {
	w.logger = logger

	return w
}

// Run consumes topic until ctx is cancelled.
func (w *Worker) Run(ctx context.Context, topic string) error {
	w.logger.Info().Str("topic", topic).Msg("audit worker started")

	return w.subscriber.Subscribe(ctx, topic, w.Handle)
}

// Handle writes one audit line per event. Undecodable messages are logged and skipped.
func (w *Worker) Handle(ctx context.Context, msg event.Message) error {
	_, scope := w.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".audit.Handle")
	defer scope.End()

	evt, err := event.Decode[model.Event](msg)
	if err != nil {
		scope.TraceError(err)
		w.logger.Warn().Err(err).Str("key", msg.Key).Msg("skipping malformed booking event")

		return nil
	}

	var line *zerolog.Event

	switch evt.Type {
	case constant.EventTypeRoomBooked:
		line = w.logger.Info().Str("booking_date", evt.BookingDate)
	case constant.EventTypeRoomCanceled:
		line = w.logger.Info()
	default:
		line = w.logger.Warn()
	}

	line.
		Str("type", evt.Type).
		Int("room_id", evt.RoomID).
		Str("username", evt.Username).
		Time("occurred_at", evt.OccurredAt).
		Msg("booking event")

	return nil
}
