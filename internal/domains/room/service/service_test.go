package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pgsystem/config"
	"pgsystem/infras/otel/mocks"
	roomMocks "pgsystem/internal/domains/room/mocks"
	"pgsystem/internal/domains/room/model"
	"pgsystem/internal/domains/room/model/dto"
	"pgsystem/internal/domains/room/service"
	cacheMocks "pgsystem/shared/cache/mocks"
	gDto "pgsystem/shared/dto"
	"pgsystem/shared/failure"
)

func newService(t *testing.T) (service.Room, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestRoomService_List(t *testing.T) {
	minPrice := 3050
	filter := dto.CatalogFilter{MinPrice: &minPrice}
	expectedParams := gDto.QueryParams{Page: 2, Limit: 20, SortBy: model.FieldRoomID, SortDir: gDto.SortDirAsc}

	rooms := []model.Room{
		{RoomID: 21, Name: "Room 21", Price: 3210, Rating: 2, Image: "6.jpeg"},
		{RoomID: 22, Name: "Room 22", Price: 3220, Rating: 3, Image: "7.jpeg", Booked: true,
			BookedBy: sql.NullString{String: "alice", Valid: true}, BookingDate: sql.NullString{String: "2025-07-01", Valid: true}},
	}

	tests := []struct {
		name      string
		params    gDto.QueryParams
		setupMock func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		check     func(t *testing.T, res dto.ListRoomsResponse)
	}{
		{
			name:   "cache hit skips the database",
			params: gDto.QueryParams{Page: 2},
			setupMock: func(_ *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), "rooms:list:min_price=3050&page=2", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*dto.ListRoomsResponse) = dto.ListRoomsResponse{Total: 96, Available: 90, Page: 2, TotalPages: 5}

						return nil
					})
			},
			check: func(t *testing.T, res dto.ListRoomsResponse) {
				t.Helper()
				assert.Equal(t, 96, res.Total)
				assert.Equal(t, 90, res.Available)
			},
		},
		{
			name:   "cache miss queries and stores the page",
			params: gDto.QueryParams{Page: 2, Limit: 5, SortBy: "price", SortDir: "DESC"},
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Count(gomock.Any(), filter.ToFilterGroup()).Return(96, nil)
				repo.EXPECT().Count(gomock.Any(), filter.Available()).Return(95, nil)
				repo.EXPECT().GetAll(gomock.Any(), expectedParams, filter.ToFilterGroup()).Return(rooms, nil)
				cache.EXPECT().Save(gomock.Any(), "rooms:list:min_price=3050&page=2", gomock.Any(), 60).Return(nil)
			},
			check: func(t *testing.T, res dto.ListRoomsResponse) {
				t.Helper()
				assert.Equal(t, 96, res.Total)
				assert.Equal(t, 95, res.Available)
				assert.Equal(t, 2, res.Page)
				assert.Equal(t, 5, res.TotalPages)
				require.Len(t, res.Rooms, 2)
				assert.Equal(t, "alice", res.Rooms[1].BookedBy)
				assert.Equal(t, "2025-07-01", res.Rooms[1].BookingDate)
				assert.Equal(t, 3050, *res.Filters.MinPrice)
			},
		},
		{
			name:   "cache save failure still returns the page",
			params: gDto.QueryParams{Page: 2},
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil).Times(2)
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Room{}, nil)
				cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
			},
			check: func(t *testing.T, res dto.ListRoomsResponse) {
				t.Helper()
				assert.Empty(t, res.Rooms)
				assert.Equal(t, 0, res.TotalPages)
			},
		},
		{
			name:   "count error",
			params: gDto.QueryParams{Page: 1},
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name:   "get all error",
			params: gDto.QueryParams{Page: 1},
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(100, nil).Times(2)
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)
			tt.setupMock(mockRepo, mockCache)

			res, err := svc.List(context.Background(), filter, tt.params)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache)
		wantErr   error
		wantName  string
	}{
		{
			name: "found",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), "rooms:get:7", gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.CatalogRoom(7, "system", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)), nil)
				cache.EXPECT().Save(gomock.Any(), "rooms:get:7", gomock.Any(), 60).Return(nil)
			},
			wantName: "Room 7",
		},
		{
			name: "unknown room",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantErr: failure.RoomNotFoundError,
		},
		{
			name: "repository error",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, errors.New("database error"))
			},
			wantErr: errors.New("failed to get room: database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)
			tt.setupMock(mockRepo, mockCache)

			res, err := svc.Get(context.Background(), 7)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, res.Name)
			assert.Equal(t, 3070, res.Price)
			assert.Equal(t, 3, res.Rating)
		})
	}
}
