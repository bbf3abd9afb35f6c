package service

import (
	"context"
	"fmt"
	"pgsystem/config"
	"pgsystem/infras/otel"
	"pgsystem/internal/domains/booking/model"
	"pgsystem/internal/domains/booking/model/dto"
	"pgsystem/internal/domains/booking/repository"
	"pgsystem/shared"
	"pgsystem/shared/cache"
	"pgsystem/shared/constant"
	"pgsystem/shared/event"
	"pgsystem/shared/failure"
	"pgsystem/shared/timezone"
	"pgsystem/shared/validator"
	"time"

	"github.com/rs/zerolog/log"
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

const defaultPublishTimeout = 2 * time.Second

type Booking interface {
	Book(ctx context.Context, req dto.BookRequest, username string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, roomID int, username string) error
}

type serviceImpl struct {
	repo      repository.Booking
	cfg       *config.Config
	cache     cache.RedisCache
	publisher event.Publisher
	otel      otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, publisher event.Publisher, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		cache:     cache,
		publisher: publisher,
		otel:      otel,
	}
}

// Book claims a free room for username. A room that is already booked keeps its booker and the
// call fails with a conflict.
func (s *serviceImpl) Book(ctx context.Context, req dto.BookRequest, username string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Book")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if username == constant.Empty {
		return res, failure.UnauthenticatedError
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	now := timezone.Now()

	booked, err := s.repo.Book(ctx, req.RoomID, username, req.BookingDate, now)
	if err != nil {
		log.Error().Err(err).Int("room_id", req.RoomID).Msg("failed to book room")

		return res, fmt.Errorf("failed to book room: %w", err)
	}

	if !booked {
		exist, err := s.repo.Exist(ctx, req.RoomID)
		if err != nil {
			log.Error().Err(err).Int("room_id", req.RoomID).Msg("failed to check room existence")

			return res, fmt.Errorf("failed to check room existence: %w", err)
		}

		if !exist {
			return res, failure.RoomNotFoundError
		}

		return res, failure.RoomConflictError
	}

	log.Info().Int("room_id", req.RoomID).Str("username", username).Str("booking_date", req.BookingDate).Msg("room booked")

	s.afterChange(ctx, dto.NewEvent(constant.EventTypeRoomBooked, req.RoomID, username, req.BookingDate, now))

	return dto.BookingResponse{RoomID: req.RoomID, BookedBy: username, BookingDate: req.BookingDate}, nil
}

// Cancel releases a booked room. Cancelling a free or unknown room changes nothing and succeeds.
func (s *serviceImpl) Cancel(ctx context.Context, roomID int, username string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if username == constant.Empty {
		return failure.UnauthenticatedError
	}

	now := timezone.Now()

	cancelled, err := s.repo.Cancel(ctx, roomID, username)
	if err != nil {
		log.Error().Err(err).Int("room_id", roomID).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	if !cancelled {
		log.Debug().Int("room_id", roomID).Msg("nothing to cancel")

		return nil
	}

	log.Info().Int("room_id", roomID).Str("username", username).Msg("booking cancelled")

	s.afterChange(ctx, dto.NewEvent(constant.EventTypeRoomCanceled, roomID, username, constant.Empty, now))

	return nil
}

// afterChange drops cached catalog pages and announces the change. Neither step can fail the booking.
func (s *serviceImpl) afterChange(ctx context.Context, evt model.Event) {
	ctx = context.WithoutCancel(ctx)

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyRooms)

	publishCtx, cancel := context.WithTimeout(ctx, s.publishTimeout())
	defer cancel()

	if err := s.publisher.Publish(publishCtx, s.cfg.Events.Topic, dto.EventKey(evt.RoomID), evt); err != nil {
		log.Warn().Err(err).Str("topic", s.cfg.Events.Topic).Msg("failed to publish booking event")
	}
}

func (s *serviceImpl) publishTimeout() time.Duration {
	if s.cfg.Events.PublishTimeout <= 0 {
		return defaultPublishTimeout
	}

	return s.cfg.Events.PublishTimeout
}
