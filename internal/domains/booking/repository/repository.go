package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"pgsystem/infras/otel"
	"pgsystem/infras/postgres"
	"pgsystem/internal/domains/booking/model"
	roomModel "pgsystem/internal/domains/room/model"
	"pgsystem/shared"
	"pgsystem/shared/constant"
	gDto "pgsystem/shared/dto"
	gRepo "pgsystem/shared/repository"
	"time"
)

// Booking flips the booking columns of a room. Each call is a single conditional UPDATE, so
// concurrent callers racing for the same room see exactly one winner.
type Booking interface {
	Book(ctx context.Context, roomID int, username, bookingDate string, at time.Time) (bool, error)
	Cancel(ctx context.Context, roomID int, actor string) (bool, error)
	Exist(ctx context.Context, roomID int) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[roomModel.Room]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[roomModel.Room](model.EntityName, roomModel.TableName, roomModel.FieldRoomID, db, otel),
		otel:       otel,
	}
}

// Book marks the room booked only while it is still free. It reports whether the row changed.
func (r *repositoryImpl) Book(ctx context.Context, roomID int, username, bookingDate string, at time.Time) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Book")
	defer scope.End()

	fields := shared.AuditFields(username)
	fields[roomModel.FieldBooked] = true
	fields[roomModel.FieldBookedBy] = username
	fields[roomModel.FieldBookedAt] = at
	fields[roomModel.FieldBookingDate] = bookingDate

	affected, err := r.Update(ctx, fields, bookedFilter(roomID, false))

	return affected == 1, err
}

// Cancel clears every booking column of a booked room. It reports whether the row changed.
func (r *repositoryImpl) Cancel(ctx context.Context, roomID int, actor string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Cancel")
	defer scope.End()

	fields := shared.AuditFields(actor)
	fields[roomModel.FieldBooked] = false
	fields[roomModel.FieldBookedBy] = nil
	fields[roomModel.FieldBookedAt] = nil
	fields[roomModel.FieldBookingDate] = nil

	affected, err := r.Update(ctx, fields, bookedFilter(roomID, true))

	return affected == 1, err
}

func (r *repositoryImpl) Exist(ctx context.Context, roomID int) (bool, error) {
	return r.Repository.Exist(ctx, shared.FilterByID(roomID, roomModel.FieldRoomID, roomModel.TableName))
}

func bookedFilter(roomID int, booked bool) gDto.FilterGroup {
	filter := shared.FilterByID(roomID, roomModel.FieldRoomID, roomModel.TableName)
	filter.Add(gDto.Filter{
		Field:    roomModel.FieldBooked,
		Value:    booked,
		Operator: gDto.FilterOperatorEq,
		Table:    roomModel.TableName,
	})

	return filter
}
