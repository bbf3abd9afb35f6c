package service

import (
	"context"
	"fmt"
	"strconv"

	"pgsystem/config"
	"pgsystem/infras/otel"
	"pgsystem/internal/domains/room/model"
	"pgsystem/internal/domains/room/model/dto"
	"pgsystem/internal/domains/room/repository"
	"pgsystem/shared"
	"pgsystem/shared/cache"
	"pgsystem/shared/constant"
	gDto "pgsystem/shared/dto"
	"pgsystem/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheListRooms = "list"
	cacheGetRoom   = "get"
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

type Room interface {
	List(ctx context.Context, filter dto.CatalogFilter, params gDto.QueryParams) (dto.ListRoomsResponse, error)
	Get(ctx context.Context, roomID int) (dto.RoomResponse, error)
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// List returns one page of the catalog ordered by room id, together with the number of
// matching rooms and how many of those are still free.
func (s *serviceImpl) List(ctx context.Context, filter dto.CatalogFilter, params gDto.QueryParams) (res dto.ListRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params = catalogOrder(params)

	query := filter.Values()
	query.Set(constant.RequestParamPage, strconv.Itoa(params.Page))
	cacheKey := shared.BuildCacheKeyWithQuery(query, constant.CacheKeyRooms, cacheListRooms)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter.ToFilterGroup())
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	available, err := s.repo.Count(ctx, filter.Available())
	if err != nil {
		log.Error().Err(err).Msg("failed to count available rooms")

		return res, fmt.Errorf("failed to count available rooms: %w", err)
	}

	rooms, err := s.repo.GetAll(ctx, params, filter.ToFilterGroup())
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(rooms, total, available, params, filter)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save rooms to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, roomID int) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(constant.CacheKeyRooms, cacheGetRoom, strconv.Itoa(roomID))

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(roomID, model.FieldRoomID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.RoomID == 0 {
		return res, failure.RoomNotFoundError
	}

	res.FromModel(room)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save room to cache")
	}

	return res, nil
}

// catalogOrder pins the catalog to pages of twenty ordered by room id.
func catalogOrder(params gDto.QueryParams) gDto.QueryParams {
	if params.Page < constant.DefaultValuePage {
		params.Page = constant.DefaultValuePage
	}

	params.Limit = constant.DefaultValuePageSize
	params.SortBy = model.FieldRoomID
	params.SortDir = gDto.SortDirAsc

	return params
}
