package ratefeed

//go:generate go run go.uber.org/mock/mockgen -source=./ratefeed.go -destination=./mocks/ratefeed_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"zentravel/config"
	"zentravel/infras/otel"
	"zentravel/shared/constant"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// Quote is one conversion rate together with the feed's publication date.
type Quote struct {
	Rate float64
	Date string
}

type Client interface {
	GetRate(ctx context.Context, from, to string) (Quote, error)
}

type client struct {
	rest *resty.Client
	otel otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Client {
	rest := resty.New().
		SetBaseURL(cfg.External.RateFeed.BaseURL).
		SetTimeout(time.Duration(cfg.External.RateFeed.TimeoutSeconds) * time.Second)

	return &client{
		rest: rest,
		otel: ot,
	}
}

// GetRate implements Client. The feed serves one JSON document per base
// currency keyed by the base currency code, e.g. GET /czk.json returns
// {"date": "...", "czk": {"twd": 1.45, ...}}.
func (c *client) GetRate(ctx context.Context, from, to string) (quote Quote, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".ratefeed.GetRate")
	defer scope.End()
	defer scope.TraceIfError(err)

	from = strings.ToLower(from)
	to = strings.ToLower(to)

	scope.SetAttributes(map[string]any{"from": from, "to": to})

	resp, err := c.rest.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/%s.json", from))

	if err != nil {
		log.Error().Err(err).Str("RateFeedClient", "GetRate").Msg("failed to call rate feed")

		return quote, fmt.Errorf("failed to call rate feed: %w", err)
	}

	if resp.IsError() {
		err = fmt.Errorf("rate feed returned status %d", resp.StatusCode())
		log.Error().Err(err).Str("RateFeedClient", "GetRate").Msg("rate feed error response")

		return quote, err
	}

	document := map[string]json.RawMessage{}
	if err = json.Unmarshal(resp.Body(), &document); err != nil {
		log.Error().Err(err).Str("RateFeedClient", "GetRate").Msg("failed to decode rate feed document")

		return quote, fmt.Errorf("failed to decode rate feed document: %w", err)
	}

	table := map[string]float64{}
	if err = json.Unmarshal(document[from], &table); err != nil {
		log.Error().Err(err).Str("RateFeedClient", "GetRate").Msg("failed to decode rate table")

		return quote, fmt.Errorf("failed to decode rate table: %w", err)
	}

	rate, ok := table[to]
	if !ok {
		err = fmt.Errorf("rate feed has no %s rate for %s", to, from)

		return quote, err
	}

	quote.Rate = rate

	if raw, ok := document["date"]; ok {
		if err := json.Unmarshal(raw, &quote.Date); err != nil {
			log.Warn().Err(err).Str("RateFeedClient", "GetRate").Msg("failed to decode rate feed date")
		}
	}

	return quote, nil
}
