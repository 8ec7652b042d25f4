package service

import (
	"context"
	"math"
	"time"
	"zentravel/config"
	"zentravel/infras/openmeteo"
	"zentravel/infras/otel"
	"zentravel/internal/domains/weather/model/dto"
	"zentravel/shared"
	"zentravel/shared/cache"
	"zentravel/shared/constant"
	"zentravel/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheWeatherLeg = "weather:leg"

// leg is one geographic stretch of the trip. The banner only ever shows
// one of these, resolved from the selected date.
type leg struct {
	key       string
	name      string
	latitude  float64
	longitude float64
}

var (
	legPrague        = leg{key: "prague", name: "布拉格", latitude: 50.08, longitude: 14.43}
	legBerchtesgaden = leg{key: "berchtesgaden", name: "貝希特斯加登", latitude: 47.59, longitude: 12.99}
	legVienna        = leg{key: "vienna", name: "維也納", latitude: 48.21, longitude: 16.37}
	legFallback      = leg{key: "europe", name: "歐洲", latitude: 50.08, longitude: 14.43}
)

func resolveLeg(date string) leg {
	switch {
	case date >= "2026-02-15" && date <= "2026-02-19":
		return legPrague
	case date == "2026-02-20":
		return legBerchtesgaden
	case date >= "2026-02-21" && date <= "2026-02-24":
		return legVienna
	default:
		return legFallback
	}
}

// mapCondition compresses a WMO weather code into the four banner buckets.
// Thresholds follow the WMO table: 0 clear, 1-3 cloud cover, 45-48 fog,
// 51-67 drizzle and rain, 71-77 snow, 80-82 rain showers, 85-86 snow
// showers, 95+ thunderstorms.
func mapCondition(code int) string {
	switch {
	case code == 0:
		return dto.ConditionSunny
	case code <= 3:
		return dto.ConditionCloudy
	case code <= 48:
		return dto.ConditionCloudy
	case code <= 67:
		return dto.ConditionRain
	case code <= 77:
		return dto.ConditionSnow
	case code <= 82:
		return dto.ConditionRain
	case code <= 86:
		return dto.ConditionSnow
	default:
		return dto.ConditionRain
	}
}

type Weather interface {
	GetByDate(ctx context.Context, date string) (dto.WeatherResponse, error)
}

type serviceImpl struct {
	client openmeteo.Client
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(client openmeteo.Client, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Weather {
	return &serviceImpl{
		client: client,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

// GetByDate resolves the leg for the date and reports its current weather.
// A fresh observation replaces the retained value for that leg; when the
// feed is down the retained value is served marked stale, and only a cold
// cache surfaces the failure.
func (s *serviceImpl) GetByDate(ctx context.Context, date string) (res dto.WeatherResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = time.Parse(constant.ItemDateFormat, date); err != nil {
		return res, failure.InvalidDateParam //nolint:wrapcheck
	}

	currentLeg := resolveLeg(date)
	cacheKey := shared.BuildCacheKey(cacheWeatherLeg, currentLeg.key)

	current, err := s.client.GetCurrentWeather(ctx, currentLeg.latitude, currentLeg.longitude)
	if err != nil {
		log.Warn().Err(err).Str("leg", currentLeg.key).Msg("weather feed unavailable, falling back to retained value")

		if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
			res.Date = date
			res.Stale = true

			return res, nil
		}

		return res, failure.BadGateway("weather feed unavailable") //nolint:wrapcheck
	}

	res = dto.WeatherResponse{
		Date:         date,
		LocationName: currentLeg.name,
		Temperature:  int(math.Round(current.Temperature)),
		Condition:    mapCondition(current.WeatherCode),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, cache.KeepForever); err != nil {
			log.Error().Err(err).Str("leg", currentLeg.key).Msg("failed to retain weather observation")
		}
	}()

	return res, nil
}
