package seeder

import (
	"context"
	"fmt"

	"pgsystem/infras/otel"
	"pgsystem/internal/domains/room/model"
	"pgsystem/internal/domains/room/repository"
	"pgsystem/shared/constant"
	gDto "pgsystem/shared/dto"
	"pgsystem/shared/timezone"

	"github.com/rs/zerolog/log"
)

//go:generate go run go.uber.org/mock/mockgen -source=./seeder.go -destination=../mocks/seeder_mock.go -package=mocks

type Seeder interface {
	SeedIfEmpty(ctx context.Context) (int64, error)
	Upsert(ctx context.Context) (int64, error)
}

type seederImpl struct {
	repo repository.Room
	otel otel.Otel
}

func New(repo repository.Room, otel otel.Otel) Seeder {
	return &seederImpl{
		repo: repo,
		otel: otel,
	}
}

// SeedIfEmpty loads the catalog only into an empty table. A partially populated table is left as is.
func (s *seederImpl) SeedIfEmpty(ctx context.Context) (inserted int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seeder.SeedIfEmpty")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	count, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}

	if count > 0 {
		log.Info().Int("rooms", count).Msg("room catalog already seeded")

		return 0, nil
	}

	return s.insert(ctx)
}

// Upsert inserts every catalog room that is missing. Existing rooms keep their booking state.
func (s *seederImpl) Upsert(ctx context.Context) (inserted int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seeder.Upsert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.insert(ctx)
}

func (s *seederImpl) insert(ctx context.Context) (int64, error) {
	inserted, err := s.repo.InsertBulkSkipConflict(ctx, Catalog())
	if err != nil {
		log.Error().Err(err).Msg("failed to seed rooms")

		return 0, fmt.Errorf("failed to seed rooms: %w", err)
	}

	log.Info().Int64("inserted", inserted).Msg("room catalog seeded")

	return inserted, nil
}

// Catalog builds rooms 1..100 with their fixed attributes.
func Catalog() []model.Room {
	now := timezone.Now()

	rooms := make([]model.Room, 0, constant.CatalogSize)
	for id := 1; id <= constant.CatalogSize; id++ {
		rooms = append(rooms, model.CatalogRoom(id, constant.SystemUser, now))
	}

	return rooms
}
