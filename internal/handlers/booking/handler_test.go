package booking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "pgsystem/infras/otel/mocks"
	bookingMocks "pgsystem/internal/domains/booking/mocks"
	"pgsystem/internal/domains/booking/model/dto"
	"pgsystem/internal/handlers/booking"
	"pgsystem/shared/constant"
	"pgsystem/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *bookingMocks.MockBookingService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockBookingService(ctrl)

	handler := booking.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), constant.ContextKeyUsername, "alice")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	handler.Router(router)

	return router, svc
}

func TestHandler_BookRoom(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		setupMock  func(m *bookingMocks.MockBookingService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "booked",
			path: "/rooms/5/book",
			body: `{"booking_date":"2026-05-01"}`,
			setupMock: func(m *bookingMocks.MockBookingService) {
				m.EXPECT().
					Book(gomock.Any(), dto.BookRequest{RoomID: 5, BookingDate: "2026-05-01"}, "alice").
					Return(dto.BookingResponse{RoomID: 5, BookedBy: "alice", BookingDate: "2026-05-01"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"booked_by":"alice"`,
		},
		{
			name:       "non-numeric room id",
			path:       "/rooms/abc/book",
			body:       `{"booking_date":"2026-05-01"}`,
			setupMock:  func(_ *bookingMocks.MockBookingService) {},
			wantStatus: http.StatusNotFound,
			wantBody:   "Room not found",
		},
		{
			name:       "bad date",
			path:       "/rooms/5/book",
			body:       `{"booking_date":"01/05/2026"}`,
			setupMock:  func(_ *bookingMocks.MockBookingService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "booking_date",
		},
		{
			name:       "malformed body",
			path:       "/rooms/5/book",
			body:       `{`,
			setupMock:  func(_ *bookingMocks.MockBookingService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "already booked",
			path: "/rooms/5/book",
			body: `{"booking_date":"2026-05-01"}`,
			setupMock: func(m *bookingMocks.MockBookingService) {
				m.EXPECT().Book(gomock.Any(), gomock.Any(), "alice").Return(dto.BookingResponse{}, failure.RoomConflictError)
			},
			wantStatus: http.StatusConflict,
			wantBody:   "Room is already booked",
		},
		{
			name: "unknown room",
			path: "/rooms/500/book",
			body: `{"booking_date":"2026-05-01"}`,
			setupMock: func(m *bookingMocks.MockBookingService) {
				m.EXPECT().Book(gomock.Any(), gomock.Any(), "alice").Return(dto.BookingResponse{}, failure.RoomNotFoundError)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHandler_CancelBooking(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setupMock  func(m *bookingMocks.MockBookingService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "cancelled",
			path: "/rooms/5/cancel",
			setupMock: func(m *bookingMocks.MockBookingService) {
				m.EXPECT().Cancel(gomock.Any(), 5, "alice").Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "Booking for Room 5 canceled",
		},
		{
			name:       "non-numeric room id",
			path:       "/rooms/x/cancel",
			setupMock:  func(_ *bookingMocks.MockBookingService) {},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "store failure",
			path: "/rooms/5/cancel",
			setupMock: func(m *bookingMocks.MockBookingService) {
				m.EXPECT().Cancel(gomock.Any(), 5, "alice").Return(failure.InternalError(assert.AnError))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
