//go:build wireinject
// +build wireinject

package di

import (
	"pgsystem/config"
	"pgsystem/infras/jwt"
	"pgsystem/infras/otel"
	"pgsystem/infras/postgres"
	"pgsystem/infras/redis"
	"pgsystem/permissions"
	"pgsystem/shared/cache"
	"pgsystem/shared/event"
	"pgsystem/shared/session"
	"pgsystem/transport/http"
	"pgsystem/transport/http/middleware"
	"pgsystem/transport/http/router"
	"pgsystem/transport/http/view"

	"github.com/google/wire"

	authService "pgsystem/internal/domains/auth/service"
	bookingRepository "pgsystem/internal/domains/booking/repository"
	bookingService "pgsystem/internal/domains/booking/service"
	dashboardService "pgsystem/internal/domains/dashboard/service"
	roomRepository "pgsystem/internal/domains/room/repository"
	roomSeeder "pgsystem/internal/domains/room/seeder"
	roomService "pgsystem/internal/domains/room/service"
	userRepository "pgsystem/internal/domains/user/repository"
	userService "pgsystem/internal/domains/user/service"
	authHandler "pgsystem/internal/handlers/auth"
	bookingHandler "pgsystem/internal/handlers/booking"
	dashboardHandler "pgsystem/internal/handlers/dashboard"
	roomHandler "pgsystem/internal/handlers/room"
	userHandler "pgsystem/internal/handlers/user"
	webHandler "pgsystem/internal/handlers/web"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	event.NewPublisher,
	session.NewStore,
	session.NewManager,
	view.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
	roomSeeder.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	roomDomain,
	bookingDomain,
	dashboardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	bookingHandler.New,
	dashboardHandler.New,
	userHandler.New,
	webHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}

func InitializeSeeder() roomSeeder.Seeder {
	wire.Build(
		configurations,
		postgres.New,
		otel.New,
		roomRepository.New,
		roomSeeder.New,
	)

	return nil
}
