package dto

import (
	"net/url"
	"pgsystem/infras/jwt"
	userModel "pgsystem/internal/domains/user/model"
	gModel "pgsystem/shared/model"
	"pgsystem/shared/timezone"
	"strings"
)

const (
	formUsername = "username"
	formPassword = "password"
)

// Credentials is shared by registration and login. Usernames are trimmed, passwords are not.
type Credentials struct {
	Username string `json:"username" form:"username" validate:"required,max=100"`
	Password string `json:"password" form:"password" validate:"required,max=72"`
}

func (c *Credentials) FromValues(values url.Values) {
	c.Username = values.Get(formUsername)
	c.Password = values.Get(formPassword)
}

func (c *Credentials) Normalize() {
	c.Username = strings.TrimSpace(c.Username)
}

type RegisterRequest struct {
	Credentials
}

func (r *RegisterRequest) ToUserModel(hashedPassword string) userModel.User {
	return userModel.User{
		Username: r.Username,
		Password: hashedPassword,
		Metadata: gModel.NewMetadata(r.Username, timezone.Now()),
	}
}

type LoginRequest struct {
	Credentials
}

type LoginResponse struct {
	Username     string `json:"username"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}
