package session

//go:generate go run go.uber.org/mock/mockgen -source=./session.go -destination=./mocks/session_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"pgsystem/config"
	"pgsystem/shared"
	"pgsystem/shared/cache"
	"pgsystem/shared/constant"

	"github.com/rs/zerolog/log"
)

const cacheKeySession = "session"

var ErrNotFound = errors.New("session not found")

type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Session is the server-side state behind the cookie. ID is never serialized.
type Session struct {
	ID       string  `json:"-"`
	Username string  `json:"username,omitempty"`
	Flashes  []Flash `json:"flashes,omitempty"`
}

func (s *Session) Authenticated() bool {
	return s.Username != constant.Empty
}

type Store interface {
	Get(ctx context.Context, id string) (Session, error)
	Save(ctx context.Context, sess Session) error
	Destroy(ctx context.Context, id string) error
}

type redisStore struct {
	cache cache.RedisCache
	ttl   int
}

// NewStore keeps sessions in Redis under session:{id}, expiring after the configured TTL.
func NewStore(cfg *config.Config, cache cache.RedisCache) Store {
	return &redisStore{
		cache: cache,
		ttl:   cfg.App.Session.TTLSeconds,
	}
}

func key(id string) string {
	return shared.BuildCacheKey(cacheKeySession, id)
}

func (s *redisStore) Get(ctx context.Context, id string) (Session, error) {
	var sess Session

	if id == constant.Empty {
		return sess, ErrNotFound
	}

	if err := s.cache.Get(ctx, key(id), &sess); err != nil {
		if errors.Is(err, cache.Nil) {
			return sess, ErrNotFound
		}

		return sess, fmt.Errorf("failed to load session: %w", err)
	}

	sess.ID = id

	return sess, nil
}

func (s *redisStore) Save(ctx context.Context, sess Session) error {
	if sess.ID == constant.Empty {
		return errors.New("session id cannot be empty")
	}

	if err := s.cache.Save(ctx, key(sess.ID), sess, s.ttl); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (s *redisStore) Destroy(ctx context.Context, id string) error {
	if id == constant.Empty {
		return nil
	}

	if err := s.cache.Delete(ctx, key(id)); err != nil {
		log.Error().Err(err).Msg("failed to destroy session")

		return fmt.Errorf("failed to destroy session: %w", err)
	}

	return nil
}

// FromContext returns the session loaded by Manager.Load, or an empty anonymous one.
func FromContext(ctx context.Context) *Session {
	if sess, ok := ctx.Value(constant.ContextKeySession).(*Session); ok {
		return sess
	}

	return &Session{}
}

// Username is the authenticated user of the request, empty for guests.
func Username(ctx context.Context) string {
	return FromContext(ctx).Username
}

func withSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, constant.ContextKeySession, sess)
}
