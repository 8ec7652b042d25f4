package service

import (
	"context"
	"fmt"
	"zentravel/config"
	"zentravel/infras/otel"
	"zentravel/infras/ratefeed"
	"zentravel/internal/domains/exchange/model/dto"
	"zentravel/shared/cache"
	"zentravel/shared/constant"

	"github.com/rs/zerolog/log"
)

const cacheRates = "exchange:rates"

const currencyTWD = "twd"

// Reserve rates used when the feed cannot be reached.
const (
	fallbackRateCZK = 1.45
	fallbackRateEUR = 35.2
)

const (
	statusFallback    = "連結失敗，使用備用能量"
	statusSyncedLabel = "(每日同步)"
	statusTodayLabel  = "今日"
)

type Exchange interface {
	GetRates(ctx context.Context) (dto.GetRatesResponse, error)
	Convert(ctx context.Context, req dto.ConvertRequest) (dto.ConvertResponse, error)
}

type serviceImpl struct {
	client ratefeed.Client
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(client ratefeed.Client, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Exchange {
	return &serviceImpl{
		client: client,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

// GetRates returns the TWD rate for both trip currencies. Feed failures
// never fail the call: the reserve rates take over and the status line says
// so. Only fresh quotes are cached.
func (s *serviceImpl) GetRates(ctx context.Context) (res dto.GetRatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRates")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheRates, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheRates).Msg("cache hit for exchange rates")

		return res, nil
	}

	czk, czkErr := s.client.GetRate(ctx, dto.CurrencyCZK, currencyTWD)
	eur, eurErr := s.client.GetRate(ctx, dto.CurrencyEUR, currencyTWD)

	if czkErr != nil || eurErr != nil {
		log.Warn().AnErr("czk", czkErr).AnErr("eur", eurErr).Msg("rate feed unavailable, using reserve rates")

		return dto.GetRatesResponse{
			CZK:      fallbackRateCZK,
			EUR:      fallbackRateEUR,
			Status:   statusFallback,
			Fallback: true,
		}, nil
	}

	feedDate := czk.Date
	if feedDate == "" {
		feedDate = statusTodayLabel
	}

	res = dto.GetRatesResponse{
		CZK:    czk.Rate,
		EUR:    eur.Rate,
		Status: fmt.Sprintf("%s %s", feedDate, statusSyncedLabel),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheRates, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save exchange rates to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Convert(ctx context.Context, req dto.ConvertRequest) (res dto.ConvertResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Convert")
	defer scope.End()
	defer scope.TraceIfError(err)

	rates, err := s.GetRates(ctx)
	if err != nil {
		return res, err
	}

	rate := rates.CZK
	if req.Currency == dto.CurrencyEUR {
		rate = rates.EUR
	}

	return dto.ConvertResponse{
		Amount:   req.Amount,
		Currency: req.Currency,
		Rate:     rate,
		Result:   req.Amount * rate,
		Status:   rates.Status,
	}, nil
}
