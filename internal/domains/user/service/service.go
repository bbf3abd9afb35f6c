package service

import (
	"context"
	"fmt"
	"pgsystem/config"
	"pgsystem/infras/otel"
	"pgsystem/internal/domains/user/model"
	"pgsystem/internal/domains/user/model/dto"
	"pgsystem/internal/domains/user/repository"
	"pgsystem/shared"
	"pgsystem/shared/cache"
	"pgsystem/shared/constant"
	"pgsystem/shared/failure"
	"pgsystem/shared/validator"

	"github.com/rs/zerolog/log"
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=User=MockUserService

const cacheProfile = "profile"

type User interface {
	GetProfile(ctx context.Context, username string) (dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, username string, req dto.UpdateProfileRequest) error
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetProfile(ctx context.Context, username string) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.GetProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if username == constant.Empty {
		return res, failure.UnauthenticatedError
	}

	cacheKey := shared.BuildCacheKey(model.TableName, cacheProfile, username)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for profile")

		return res, nil
	}

	user, err := s.repo.Get(ctx, shared.FilterByID(username, model.FieldUsername, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.Username == constant.Empty {
		return res, failure.NotFound("User not found") // nolint:wrapcheck
	}

	res.FromModel(user)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save profile to cache")
	}

	return res, nil
}

// UpdateProfile stores name, mobile and email exactly as given.
func (s *serviceImpl) UpdateProfile(ctx context.Context, username string, req dto.UpdateProfileRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.UpdateProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if username == constant.Empty {
		return failure.UnauthenticatedError
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	fields := shared.AuditFields(username)
	for field, value := range req.ToFields() {
		fields[field] = value
	}

	updated, err := s.repo.Update(ctx, fields, shared.FilterByID(username, model.FieldUsername, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update profile")

		return fmt.Errorf("failed to update profile: %w", err)
	}

	if updated == 0 {
		return failure.NotFound("User not found") // nolint:wrapcheck
	}

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(model.TableName, cacheProfile, username)); err != nil {
		log.Warn().Err(err).Msg("failed to delete profile cache")
	}

	return nil
}
