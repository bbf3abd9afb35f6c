package dto_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"pgsystem/infras/jwt"
	"pgsystem/internal/domains/auth/model/dto"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		ExpiresIn:    900,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, int64(900), response.ExpiresIn)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestCredentials_FromValues(t *testing.T) {
	var creds dto.Credentials
	creds.FromValues(url.Values{"username": {"  alice "}, "password": {" secret "}})
	creds.Normalize()

	assert.Equal(t, "alice", creds.Username)
	assert.Equal(t, " secret ", creds.Password)
}

func TestRegisterRequest_ToUserModel(t *testing.T) {
	req := dto.RegisterRequest{Credentials: dto.Credentials{Username: "alice", Password: "secret"}}

	user := req.ToUserModel("hashed")

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "hashed", user.Password)
	assert.Equal(t, "alice", user.CreatedBy)
	assert.Empty(t, user.Name)
	assert.False(t, user.CreatedAt.IsZero())
}
