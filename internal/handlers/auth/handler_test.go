package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "pgsystem/infras/otel/mocks"
	authMocks "pgsystem/internal/domains/auth/mocks"
	"pgsystem/internal/domains/auth/model/dto"
	"pgsystem/internal/handlers/auth"
	"pgsystem/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *authMocks.MockAuth) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := authMocks.NewMockAuth(ctrl)

	handler := auth.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func credentials(username, password string) dto.Credentials {
	return dto.Credentials{Username: username, Password: password}
}

func TestHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *authMocks.MockAuth)
		wantStatus int
		wantBody   string
	}{
		{
			name: "registered",
			body: `{"username":"alice","password":"secret"}`,
			setupMock: func(m *authMocks.MockAuth) {
				m.EXPECT().Register(gomock.Any(), dto.RegisterRequest{Credentials: credentials("alice", "secret")}).Return(nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   "User registered successfully",
		},
		{
			name:       "missing password",
			body:       `{"username":"alice"}`,
			setupMock:  func(_ *authMocks.MockAuth) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate",
			body: `{"username":"alice","password":"secret"}`,
			setupMock: func(m *authMocks.MockAuth) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).Return(failure.DuplicateUserError)
			},
			wantStatus: http.StatusConflict,
			wantBody:   "Username already exists!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *authMocks.MockAuth)
		wantStatus int
		wantBody   string
	}{
		{
			name: "logged in",
			body: `{"username":"alice","password":"secret"}`,
			setupMock: func(m *authMocks.MockAuth) {
				m.EXPECT().
					Login(gomock.Any(), dto.LoginRequest{Credentials: credentials("alice", "secret")}).
					Return(dto.LoginResponse{Username: "alice", AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"access_token":"access"`,
		},
		{
			name: "wrong password",
			body: `{"username":"alice","password":"nope"}`,
			setupMock: func(m *authMocks.MockAuth) {
				m.EXPECT().Login(gomock.Any(), gomock.Any()).Return(dto.LoginResponse{}, failure.InvalidCredentialsError)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHandler_RefreshToken(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().
		RefreshToken(gomock.Any(), dto.RefreshTokenRequest{RefreshToken: "refresh"}).
		Return(dto.RefreshTokenResponse{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/refresh-token", strings.NewReader(`{"refresh_token":"refresh"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new-access")
}
