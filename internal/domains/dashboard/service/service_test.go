package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pgsystem/infras/otel/mocks"
	"pgsystem/internal/domains/dashboard/model/dto"
	"pgsystem/internal/domains/dashboard/service"
	roomMocks "pgsystem/internal/domains/room/mocks"
	roomModel "pgsystem/internal/domains/room/model"
	gDto "pgsystem/shared/dto"
	"pgsystem/shared/failure"
)

func TestDashboardService_Compute(t *testing.T) {
	myRooms := []roomModel.Room{
		{RoomID: 3, Name: "Room 3", Price: 3030, Booked: true, BookedBy: sql.NullString{String: "alice", Valid: true}},
		{RoomID: 9, Name: "Room 9", Price: 3090, Booked: true, BookedBy: sql.NullString{String: "alice", Valid: true}},
	}

	tests := []struct {
		name      string
		username  string
		setupMock func(repo *roomMocks.MockRoom)
		wantErr   bool
		check     func(t *testing.T, res dto.DashboardResponse)
	}{
		{
			name:     "aggregates the whole inventory",
			username: "alice",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Summary(gomock.Any()).Return(roomModel.Summary{TotalRooms: 100, BookedRooms: 3, TotalRevenue: 9170}, nil)
				repo.EXPECT().BookingCounts(gomock.Any()).Return([]roomModel.BookingCount{
					{Username: "alice", Count: 2},
					{Username: "bob", Count: 1},
				}, nil)
				repo.EXPECT().
					GetAll(gomock.Any(), gDto.QueryParams{SortBy: "room_id", SortDir: "ASC"}, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]roomModel.Room, error) {
						where, args := filter.GetWhereClause()
						assert.Equal(t, "(rooms.booked_by = :booked_by)", where)
						assert.Equal(t, "alice", args["booked_by"])

						return myRooms, nil
					})
			},
			check: func(t *testing.T, res dto.DashboardResponse) {
				t.Helper()
				assert.Equal(t, 100, res.TotalRooms)
				assert.Equal(t, 3, res.BookedRooms)
				assert.Equal(t, 97, res.AvailableRooms)
				assert.Equal(t, res.TotalRooms, res.BookedRooms+res.AvailableRooms)
				assert.Equal(t, int64(9170), res.TotalRevenue)
				require.Len(t, res.MyRooms, 2)
				assert.Equal(t, 3, res.MyRooms[0].RoomID)
				assert.Equal(t, []dto.UserBookings{{Username: "alice", Bookings: 2}, {Username: "bob", Bookings: 1}}, res.BookingsPerUser)
			},
		},
		{
			name:     "empty inventory",
			username: "carol",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Summary(gomock.Any()).Return(roomModel.Summary{}, nil)
				repo.EXPECT().BookingCounts(gomock.Any()).Return([]roomModel.BookingCount{}, nil)
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]roomModel.Room{}, nil)
			},
			check: func(t *testing.T, res dto.DashboardResponse) {
				t.Helper()
				assert.Zero(t, res.AvailableRooms)
				assert.Empty(t, res.MyRooms)
				assert.NotNil(t, res.BookingsPerUser)
			},
		},
		{
			name:     "summary error",
			username: "alice",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Summary(gomock.Any()).Return(roomModel.Summary{}, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name:     "booking counts error",
			username: "alice",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Summary(gomock.Any()).Return(roomModel.Summary{}, nil)
				repo.EXPECT().BookingCounts(gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name:     "my rooms error",
			username: "alice",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Summary(gomock.Any()).Return(roomModel.Summary{}, nil)
				repo.EXPECT().BookingCounts(gomock.Any()).Return(nil, nil)
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := roomMocks.NewMockRoom(ctrl)
			tt.setupMock(mockRepo)

			res, err := service.New(mockRepo, mocks.NewOtel()).Compute(context.Background(), tt.username)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestDashboardService_ComputeRequiresUser(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := service.New(roomMocks.NewMockRoom(ctrl), mocks.NewOtel()).Compute(context.Background(), "")

	assert.ErrorIs(t, err, failure.UnauthenticatedError)
}
