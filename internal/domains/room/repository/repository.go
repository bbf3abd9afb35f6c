package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"pgsystem/infras/otel"
	"pgsystem/infras/postgres"
	"pgsystem/internal/domains/room/model"
	"pgsystem/shared/constant"
	gDto "pgsystem/shared/dto"
	"pgsystem/shared/logger"
	gRepo "pgsystem/shared/repository"
)

const (
	querySummary = `SELECT
		COUNT(*) AS total_rooms,
		COUNT(*) FILTER (WHERE booked) AS booked_rooms,
		COALESCE(SUM(price) FILTER (WHERE booked), 0) AS total_revenue
	FROM ` + model.TableName

	queryBookingCounts = `SELECT booked_by, COUNT(*) AS bookings
	FROM ` + model.TableName + `
	WHERE booked AND booked_by IS NOT NULL
	GROUP BY booked_by
	ORDER BY bookings DESC, booked_by ASC`
)

type Room interface {
	InsertBulkSkipConflict(ctx context.Context, rooms []model.Room) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Summary(ctx context.Context) (model.Summary, error)
	BookingCounts(ctx context.Context) ([]model.BookingCount, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldRoomID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Summary counts rooms and sums booked prices in a single pass.
func (r *repositoryImpl) Summary(ctx context.Context) (res model.Summary, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.Summary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, querySummary)

	if err = r.db.Read.GetContext(ctx, &res, querySummary); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to summarise rooms: %w", err)
	}

	return res, nil
}

// BookingCounts groups booked rooms by booker, busiest first.
func (r *repositoryImpl) BookingCounts(ctx context.Context) (res []model.BookingCount, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.BookingCounts")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryBookingCounts)

	res = []model.BookingCount{}
	if err = r.db.Read.SelectContext(ctx, &res, queryBookingCounts); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to count bookings per user: %w", err)
	}

	return res, nil
}
