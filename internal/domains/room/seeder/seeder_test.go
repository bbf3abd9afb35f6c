package seeder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pgsystem/infras/otel/mocks"
	roomMocks "pgsystem/internal/domains/room/mocks"
	"pgsystem/internal/domains/room/model"
	"pgsystem/internal/domains/room/seeder"
	gDto "pgsystem/shared/dto"
)

func TestCatalog(t *testing.T) {
	rooms := seeder.Catalog()

	require.Len(t, rooms, 100)

	for i, room := range rooms {
		id := i + 1

		assert.Equal(t, id, room.RoomID)
		assert.Equal(t, 3000+10*id, room.Price)
		assert.GreaterOrEqual(t, room.Rating, 1)
		assert.LessOrEqual(t, room.Rating, 5)
		assert.False(t, room.Booked)
		assert.False(t, room.BookedBy.Valid)
		assert.False(t, room.BookingDate.Valid)
		assert.False(t, room.BookedAt.Valid)
		assert.Equal(t, "system", room.CreatedBy)
	}

	assert.Equal(t, "Room 1", rooms[0].Name)
	assert.Equal(t, 2, rooms[0].Rating)
	assert.Equal(t, "2.jpeg", rooms[0].Image)
	assert.Equal(t, 1, rooms[4].Rating)
	assert.Equal(t, "1.jpeg", rooms[7].Image)
	assert.Equal(t, 4000, rooms[99].Price)
}

func TestSeeder_SeedIfEmpty(t *testing.T) {
	tests := []struct {
		name         string
		setupMock    func(repo *roomMocks.MockRoom)
		wantInserted int64
		wantErr      bool
	}{
		{
			name: "empty table is seeded",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Count(gomock.Any(), gDto.FilterGroup{}).Return(0, nil)
				repo.EXPECT().
					InsertBulkSkipConflict(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rooms []model.Room) (int64, error) {
						assert.Len(t, rooms, 100)

						return int64(len(rooms)), nil
					})
			},
			wantInserted: 100,
		},
		{
			name: "partial table is left alone",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(42, nil)
			},
			wantInserted: 0,
		},
		{
			name: "count error",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "insert error",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
				repo.EXPECT().InsertBulkSkipConflict(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := roomMocks.NewMockRoom(ctrl)
			tt.setupMock(mockRepo)

			inserted, err := seeder.New(mockRepo, mocks.NewOtel()).SeedIfEmpty(context.Background())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantInserted, inserted)
		})
	}
}

func TestSeeder_Upsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := roomMocks.NewMockRoom(ctrl)

	// rooms 1..97 already exist, only the missing three are inserted
	mockRepo.EXPECT().InsertBulkSkipConflict(gomock.Any(), gomock.Len(100)).Return(int64(3), nil)

	inserted, err := seeder.New(mockRepo, mocks.NewOtel()).Upsert(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), inserted)
}
