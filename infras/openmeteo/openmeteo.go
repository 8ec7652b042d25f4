package openmeteo

//go:generate go run go.uber.org/mock/mockgen -source=./openmeteo.go -destination=./mocks/openmeteo_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"
	"zentravel/config"
	"zentravel/infras/otel"
	"zentravel/shared/constant"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// CurrentWeather is the subset of the open-meteo current_weather block the
// service consumes.
type CurrentWeather struct {
	Temperature float64 `json:"temperature"`
	WeatherCode int     `json:"weathercode"`
}

type forecastResponse struct {
	CurrentWeather CurrentWeather `json:"current_weather"`
}

type Client interface {
	GetCurrentWeather(ctx context.Context, latitude, longitude float64) (CurrentWeather, error)
}

type client struct {
	rest *resty.Client
	otel otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Client {
	rest := resty.New().
		SetBaseURL(cfg.External.OpenMeteo.BaseURL).
		SetTimeout(time.Duration(cfg.External.OpenMeteo.TimeoutSeconds) * time.Second)

	return &client{
		rest: rest,
		otel: ot,
	}
}

// GetCurrentWeather implements Client.
func (c *client) GetCurrentWeather(ctx context.Context, latitude, longitude float64) (weather CurrentWeather, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".openmeteo.GetCurrentWeather")
	defer scope.End()
	defer scope.TraceIfError(err)

	result := forecastResponse{}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":        fmt.Sprintf("%.2f", latitude),
			"longitude":       fmt.Sprintf("%.2f", longitude),
			"current_weather": "true",
		}).
		SetResult(&result).
		Get("/v1/forecast")

	if err != nil {
		log.Error().Err(err).Str("OpenMeteoClient", "GetCurrentWeather").Msg("failed to call weather feed")

		return weather, fmt.Errorf("failed to call weather feed: %w", err)
	}

	if resp.IsError() {
		err = fmt.Errorf("weather feed returned status %d", resp.StatusCode())
		log.Error().Err(err).Str("OpenMeteoClient", "GetCurrentWeather").Msg("weather feed error response")

		return weather, err
	}

	return result.CurrentWeather, nil
}
