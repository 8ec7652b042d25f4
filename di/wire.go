//go:build wireinject
// +build wireinject

package di

import (
	"zentravel/config"
	"zentravel/infras/genai"
	"zentravel/infras/openmeteo"
	"zentravel/infras/otel"
	"zentravel/infras/postgres"
	"zentravel/infras/ratefeed"
	"zentravel/infras/redis"
	"zentravel/shared/cache"
	"zentravel/transport/http"
	"zentravel/transport/http/middleware"
	"zentravel/transport/http/router"

	bookingRepository "zentravel/internal/domains/booking/repository"
	bookingService "zentravel/internal/domains/booking/service"
	exchangeService "zentravel/internal/domains/exchange/service"
	oracleService "zentravel/internal/domains/oracle/service"
	oracleStore "zentravel/internal/domains/oracle/store"
	scheduleRepository "zentravel/internal/domains/schedule/repository"
	scheduleService "zentravel/internal/domains/schedule/service"
	supportService "zentravel/internal/domains/support/service"
	weatherService "zentravel/internal/domains/weather/service"

	bookingHandler "zentravel/internal/handlers/booking"
	exchangeHandler "zentravel/internal/handlers/exchange"
	oracleHandler "zentravel/internal/handlers/oracle"
	scheduleHandler "zentravel/internal/handlers/schedule"
	supportHandler "zentravel/internal/handlers/support"
	weatherHandler "zentravel/internal/handlers/weather"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	openmeteo.New,
	ratefeed.New,
	genai.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var scheduleDomain = wire.NewSet(
	scheduleRepository.New,
	scheduleService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var weatherDomain = wire.NewSet(
	weatherService.New,
)

var exchangeDomain = wire.NewSet(
	exchangeService.New,
)

var oracleDomain = wire.NewSet(
	oracleStore.New,
	oracleService.New,
)

var supportDomain = wire.NewSet(
	supportService.New,
)

var domains = wire.NewSet(
	scheduleDomain,
	bookingDomain,
	weatherDomain,
	exchangeDomain,
	oracleDomain,
	supportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	scheduleHandler.New,
	bookingHandler.New,
	weatherHandler.New,
	exchangeHandler.New,
	oracleHandler.New,
	supportHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
