//go:build wireinject
// +build wireinject

package di

import (
	"checklist/config"
	"checklist/infras/mongo"
	"checklist/infras/otel"
	"checklist/infras/redis"
	"checklist/internal/events"
	healthHandler "checklist/internal/handlers/health"
	todoHandler "checklist/internal/handlers/todo"
	userHandler "checklist/internal/handlers/user"
	"checklist/shared/cache"
	"checklist/transport/http"
	"checklist/transport/http/middleware"
	"checklist/transport/http/router"

	todoRepository "checklist/internal/domains/todo/repository"
	todoService "checklist/internal/domains/todo/service"
	userRepository "checklist/internal/domains/user/repository"
	userService "checklist/internal/domains/user/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	mongo.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewSessionMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.New,
)

var eventing = wire.NewSet(
	events.New,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var domains = wire.NewSet(
	todoDomain,
	userDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	todoHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		eventing,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
