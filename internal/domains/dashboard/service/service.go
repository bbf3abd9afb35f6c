package service

import (
	"context"
	"fmt"
	"pgsystem/infras/otel"
	"pgsystem/internal/domains/dashboard/model/dto"
	roomModel "pgsystem/internal/domains/room/model"
	roomRepo "pgsystem/internal/domains/room/repository"
	"pgsystem/shared/constant"
	gDto "pgsystem/shared/dto"
	"pgsystem/shared/failure"

	"github.com/rs/zerolog/log"
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

type Dashboard interface {
	Compute(ctx context.Context, username string) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	roomRepo roomRepo.Room
	otel     otel.Otel
}

func New(roomRepo roomRepo.Room, otel otel.Otel) Dashboard {
	return &serviceImpl{
		roomRepo: roomRepo,
		otel:     otel,
	}
}

// Compute always reads the live table. Results are not cached.
func (s *serviceImpl) Compute(ctx context.Context, username string) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.Compute")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if username == constant.Empty {
		return res, failure.UnauthenticatedError
	}

	summary, err := s.roomRepo.Summary(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to summarise rooms")

		return res, fmt.Errorf("failed to summarise rooms: %w", err)
	}

	counts, err := s.roomRepo.BookingCounts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings per user")

		return res, fmt.Errorf("failed to count bookings per user: %w", err)
	}

	myRooms, err := s.roomRepo.GetAll(ctx, myRoomsParams(), myRoomsFilter(username))
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("failed to get booked rooms")

		return res, fmt.Errorf("failed to get booked rooms: %w", err)
	}

	res.FromModels(username, summary, myRooms, counts)

	return res, nil
}

// myRoomsParams lists every match in room order with no page limit.
func myRoomsParams() gDto.QueryParams {
	return gDto.QueryParams{
		SortBy:  roomModel.FieldRoomID,
		SortDir: gDto.SortDirAsc,
	}
}

func myRoomsFilter(username string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldBookedBy,
				Value:    username,
				Operator: gDto.FilterOperatorEq,
				Table:    roomModel.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}
