package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pgsystem/config"
	"pgsystem/infras/otel/mocks"
	userMocks "pgsystem/internal/domains/user/mocks"
	"pgsystem/internal/domains/user/model"
	"pgsystem/internal/domains/user/model/dto"
	"pgsystem/internal/domains/user/service"
	cacheMocks "pgsystem/shared/cache/mocks"
	gDto "pgsystem/shared/dto"
	"pgsystem/shared/failure"
	gModel "pgsystem/shared/model"
)

func newService(t *testing.T) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestUserService_GetProfile(t *testing.T) {
	alice := model.User{
		Username: "alice",
		Password: "$2a$10$hash",
		Name:     "Alice",
		Mobile:   "0812",
		Email:    "alice@example.com",
		Metadata: gModel.NewMetadata("alice", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)),
	}

	tests := []struct {
		name      string
		username  string
		setupMock func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache)
		wantCode  int
	}{
		{
			name:     "loads from the database and caches",
			username: "alice",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), "users:profile:alice", gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.User, error) {
						_, args := filter.GetWhereClause()
						assert.Equal(t, "alice", args["username"])

						return alice, nil
					})
				cache.EXPECT().Save(gomock.Any(), "users:profile:alice", gomock.Any(), 60).Return(nil)
			},
		},
		{
			name:     "cache hit",
			username: "alice",
			setupMock: func(_ *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), "users:profile:alice", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						value.(*dto.ProfileResponse).FromModel(alice)

						return nil
					})
			},
		},
		{
			name:     "user deleted",
			username: "alice",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "database error",
			username: "alice",
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:      "no session",
			setupMock: func(_ *userMocks.MockUser, _ *cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)
			tt.setupMock(mockRepo, mockCache)

			res, err := svc.GetProfile(context.Background(), tt.username)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "alice", res.Username)
			assert.Equal(t, "Alice", res.Name)
			assert.Equal(t, "0812", res.Mobile)
			assert.Equal(t, "alice@example.com", res.Email)
		})
	}
}

func TestUserService_UpdateProfile(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateProfileRequest
		setupMock func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache)
		wantCode  int
	}{
		{
			name: "overwrites every field",
			req:  dto.UpdateProfileRequest{Name: "Alice", Mobile: "", Email: "not-an-email"},
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
						assert.Equal(t, "Alice", fields["name"])
						assert.Equal(t, "", fields["mobile"])
						assert.Equal(t, "not-an-email", fields["email"])
						assert.Equal(t, "alice", fields["modified_by"])

						return 1, nil
					})
				cache.EXPECT().Delete(gomock.Any(), "users:profile:alice").Return(nil)
			},
		},
		{
			name: "cache delete failure is ignored",
			req:  dto.UpdateProfileRequest{Name: "Alice"},
			setupMock: func(repo *userMocks.MockUser, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
				cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
			},
		},
		{
			name:      "too long",
			req:       dto.UpdateProfileRequest{Name: strings.Repeat("a", 101)},
			setupMock: func(_ *userMocks.MockUser, _ *cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "user deleted",
			req:  dto.UpdateProfileRequest{Name: "Alice"},
			setupMock: func(repo *userMocks.MockUser, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "database error",
			req:  dto.UpdateProfileRequest{Name: "Alice"},
			setupMock: func(repo *userMocks.MockUser, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)
			tt.setupMock(mockRepo, mockCache)

			err := svc.UpdateProfile(context.Background(), "alice", tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
