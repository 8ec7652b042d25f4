package service_test

import (
	"context"
	"errors"
	"testing"
	"time"
	"zentravel/config"
	otelMocks "zentravel/infras/otel/mocks"
	"zentravel/infras/ratefeed"
	ratefeedMocks "zentravel/infras/ratefeed/mocks"
	"zentravel/internal/domains/exchange/model/dto"
	"zentravel/internal/domains/exchange/service"
	cacheMocks "zentravel/shared/cache/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var (
	errFeedDown  = errors.New("connection refused")
	errCacheMiss = errors.New("cache miss")
)

func newService(t *testing.T, setup func(client *ratefeedMocks.MockClient, cache *cacheMocks.MockRedisCache)) service.Exchange {
	t.Helper()

	ctrl := gomock.NewController(t)

	client := ratefeedMocks.NewMockClient(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	if setup != nil {
		setup(client, cache)
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return service.New(client, cfg, cache, otelMocks.NewOtel())
}

func expectFreshQuotes(client *ratefeedMocks.MockClient, cache *cacheMocks.MockRedisCache) {
	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	client.EXPECT().GetRate(gomock.Any(), "czk", "twd").
		Return(ratefeed.Quote{Rate: 1.42, Date: "2026-02-16"}, nil)
	client.EXPECT().GetRate(gomock.Any(), "eur", "twd").
		Return(ratefeed.Quote{Rate: 34.9, Date: "2026-02-16"}, nil)
}

func TestGetRates(t *testing.T) {
	t.Parallel()

	t.Run("fresh quotes carry the feed date", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, expectFreshQuotes)

		res, err := svc.GetRates(context.Background())
		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, 1.42, res.CZK)
		assert.Equal(t, 34.9, res.EUR)
		assert.Equal(t, "2026-02-16 (每日同步)", res.Status)
		assert.False(t, res.Fallback)
	})

	t.Run("missing feed date falls back to the generic label", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, func(client *ratefeedMocks.MockClient, cache *cacheMocks.MockRedisCache) {
			cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
			cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			client.EXPECT().GetRate(gomock.Any(), "czk", "twd").Return(ratefeed.Quote{Rate: 1.42}, nil)
			client.EXPECT().GetRate(gomock.Any(), "eur", "twd").Return(ratefeed.Quote{Rate: 34.9}, nil)
		})

		res, err := svc.GetRates(context.Background())
		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "今日 (每日同步)", res.Status)
	})

	t.Run("feed failure serves the reserve rates", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, func(client *ratefeedMocks.MockClient, cache *cacheMocks.MockRedisCache) {
			cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
			client.EXPECT().GetRate(gomock.Any(), "czk", "twd").Return(ratefeed.Quote{}, errFeedDown)
			client.EXPECT().GetRate(gomock.Any(), "eur", "twd").Return(ratefeed.Quote{Rate: 34.9}, nil)
		})

		res, err := svc.GetRates(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1.45, res.CZK)
		assert.Equal(t, 35.2, res.EUR)
		assert.Equal(t, "連結失敗，使用備用能量", res.Status)
		assert.True(t, res.Fallback)
	})
}

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		req      dto.ConvertRequest
		wantRate float64
		want     float64
	}{
		{
			name:     "koruna to twd",
			req:      dto.ConvertRequest{Amount: 100, Currency: dto.CurrencyCZK},
			wantRate: 1.42,
			want:     142,
		},
		{
			name:     "euro to twd",
			req:      dto.ConvertRequest{Amount: 10, Currency: dto.CurrencyEUR},
			wantRate: 34.9,
			want:     349,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			svc := newService(t, expectFreshQuotes)

			res, err := svc.Convert(context.Background(), test.req)
			time.Sleep(10 * time.Millisecond)

			assert.NoError(t, err)
			assert.Equal(t, test.wantRate, res.Rate)
			assert.InDelta(t, test.want, res.Result, 1e-9)
		})
	}
}
