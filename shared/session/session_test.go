package session_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pgsystem/config"
	"pgsystem/shared/cache"
	cacheMocks "pgsystem/shared/cache/mocks"
	"pgsystem/shared/session"
)

func newStore(t *testing.T) (session.Store, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.App.Session.TTLSeconds = 3600

	return session.NewStore(cfg, mockCache), mockCache
}

func TestStore_Get(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(c *cacheMocks.MockRedisCache)
		want      session.Session
		wantErr   error
		wantAny   bool
	}{
		{
			name: "stored session",
			id:   "abc",
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().
					Get(gomock.Any(), "session:abc", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*session.Session) = session.Session{Username: "alice"}

						return nil
					})
			},
			want: session.Session{ID: "abc", Username: "alice"},
		},
		{
			name: "expired session",
			id:   "abc",
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), "session:abc", gomock.Any()).Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))
			},
			wantErr: session.ErrNotFound,
		},
		{
			name:      "empty id",
			setupMock: func(_ *cacheMocks.MockRedisCache) {},
			wantErr:   session.ErrNotFound,
		},
		{
			name: "redis failure",
			id:   "abc",
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			wantAny: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mockCache := newStore(t)
			tt.setupMock(mockCache)

			got, err := store.Get(context.Background(), tt.id)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantAny:
				require.Error(t, err)
				assert.NotErrorIs(t, err, session.ErrNotFound)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestStore_Save(t *testing.T) {
	t.Run("writes under the session key with the configured ttl", func(t *testing.T) {
		store, mockCache := newStore(t)

		sess := session.Session{ID: "abc", Username: "alice", Flashes: []session.Flash{{Category: "info", Message: "hi"}}}
		mockCache.EXPECT().Save(gomock.Any(), "session:abc", sess, 3600).Return(nil)

		assert.NoError(t, store.Save(context.Background(), sess))
	})

	t.Run("rejects a session without id", func(t *testing.T) {
		store, _ := newStore(t)

		assert.Error(t, store.Save(context.Background(), session.Session{Username: "alice"}))
	})

	t.Run("propagates redis errors", func(t *testing.T) {
		store, mockCache := newStore(t)
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		assert.Error(t, store.Save(context.Background(), session.Session{ID: "abc"}))
	})
}

func TestStore_Destroy(t *testing.T) {
	t.Run("deletes the key", func(t *testing.T) {
		store, mockCache := newStore(t)
		mockCache.EXPECT().Delete(gomock.Any(), "session:abc").Return(nil)

		assert.NoError(t, store.Destroy(context.Background(), "abc"))
	})

	t.Run("nothing to destroy", func(t *testing.T) {
		store, _ := newStore(t)

		assert.NoError(t, store.Destroy(context.Background(), ""))
	})
}

func TestFromContext(t *testing.T) {
	sess := session.FromContext(context.Background())

	require.NotNil(t, sess)
	assert.False(t, sess.Authenticated())
	assert.Empty(t, session.Username(context.Background()))
}
