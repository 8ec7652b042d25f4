package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"zentravel/config"
	"zentravel/infras/otel"
	"zentravel/internal/domains/schedule/model"
	"zentravel/internal/domains/schedule/model/dto"
	"zentravel/internal/domains/schedule/repository"
	"zentravel/shared"
	"zentravel/shared/cache"
	"zentravel/shared/constant"
	gDto "zentravel/shared/dto"
	"zentravel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetSchedule   = "schedule:get"
	cacheAllSchedule   = "schedule:all"
	cacheDatesSchedule = "schedule:dates"
)

// swipeThreshold is the minimum horizontal displacement in pixels for a
// release to count as a day-changing swipe.
const swipeThreshold = 50.0

// lunarLabels marks the lunar-new-year stretch of the trip.
var lunarLabels = map[string]string{
	"2026-02-15": "小年夜",
	"2026-02-16": "除夕",
	"2026-02-17": "初一",
	"2026-02-18": "初二",
	"2026-02-19": "初三",
	"2026-02-20": "初四",
	"2026-02-21": "初五",
	"2026-02-22": "初六",
}

type Schedule interface {
	GetDates(ctx context.Context) (dto.GetDatesResponse, error)
	GetByDate(ctx context.Context, date string) (dto.GetScheduleResponse, error)
	Search(ctx context.Context, query string) (dto.SearchResponse, error)
	GetTimeline(ctx context.Context, date string) (dto.GetTimelineResponse, error)
	ResolveGesture(ctx context.Context, req dto.GestureRequest) (dto.GestureResponse, error)
}

type serviceImpl struct {
	repo  repository.Schedule
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Schedule, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Schedule {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// legLabel resolves the country leg shown in the day header. Ranges are
// inclusive and mutually exclusive; anything outside falls back to the
// generic Europe label.
func legLabel(date string) string {
	switch {
	case date >= "2026-02-15" && date <= "2026-02-19":
		return "捷克 Czech Republic"
	case date == "2026-02-20":
		return "德國 Germany"
	case date >= "2026-02-21" && date <= "2026-02-24":
		return "奧地利 Austria"
	default:
		return "歐洲 Europe"
	}
}

func (s *serviceImpl) GetDates(ctx context.Context) (res dto.GetDatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheDatesSchedule, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheDatesSchedule).Msg("cache hit for schedule dates")

		return res, nil
	}

	dates, err := s.distinctDates(ctx)
	if err != nil {
		return res, err
	}

	for _, date := range dates {
		entry := dto.DateEntry{
			Date:       date,
			LunarLabel: lunarLabels[date],
			Location:   legLabel(date),
		}

		if parsed, parseErr := time.Parse(constant.ItemDateFormat, date); parseErr == nil {
			entry.Weekday = strings.ToUpper(parsed.Format("Mon"))
			entry.DayNumber = parsed.Day()
		}

		res.Dates = append(res.Dates, entry)
	}

	if len(res.Dates) > 0 {
		res.DefaultDate = res.Dates[0].Date
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheDatesSchedule, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save schedule dates to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByDate(ctx context.Context, date string) (res dto.GetScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = time.Parse(constant.ItemDateFormat, date); err != nil {
		return res, failure.InvalidDateParam //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetSchedule, date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for schedule items")

		return res, nil
	}

	items, err := s.itemsByDate(ctx, date)
	if err != nil {
		return res, err
	}

	// An unknown date is an empty day, never a not-found error.
	res.FromModels(date, items)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save schedule items to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetTimeline(ctx context.Context, date string) (res dto.GetTimelineResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTimeline")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = time.Parse(constant.ItemDateFormat, date); err != nil {
		return res, failure.InvalidDateParam //nolint:wrapcheck
	}

	items, err := s.itemsByDate(ctx, date)
	if err != nil {
		return res, err
	}

	res.Date = date
	res.Rows = make([]dto.TimelineRow, len(items))

	for i, item := range items {
		res.Rows[i].FromModel(item)
	}

	return res, nil
}

// ResolveGesture applies the swipe release rules: the horizontal
// displacement must exceed the threshold and the vertical displacement,
// movement clamps at the first and last date, and search mode suppresses
// the gesture entirely.
func (s *serviceImpl) ResolveGesture(ctx context.Context, req dto.GestureRequest) (res dto.GestureResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveGesture")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.SelectedDate = req.ActiveDate

	if req.SearchActive {
		return res, nil
	}

	deltaX := req.EndX - req.StartX
	deltaY := req.EndY - req.StartY

	if abs(deltaX) < swipeThreshold || abs(deltaX) <= abs(deltaY) {
		return res, nil
	}

	dates, err := s.distinctDates(ctx)
	if err != nil {
		return res, err
	}

	current := -1

	for i, date := range dates {
		if date == req.ActiveDate {
			current = i

			break
		}
	}

	if current < 0 {
		return res, nil
	}

	next := current
	if deltaX < 0 {
		next++
	} else {
		next--
	}

	if next < 0 || next >= len(dates) {
		return res, nil
	}

	res.SelectedDate = dates[next]
	res.Moved = true

	return res, nil
}

func (s *serviceImpl) distinctDates(ctx context.Context) ([]string, error) {
	dates, err := s.repo.GetDistinct(ctx, model.FieldItemDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to get schedule dates")

		return nil, fmt.Errorf("failed to get schedule dates: %w", err)
	}

	return dates, nil
}

func (s *serviceImpl) itemsByDate(ctx context.Context, date string) ([]model.ScheduleItem, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldItemDate,
				Operator: gDto.FilterOperatorEq,
				Value:    date,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldPosition,
		SortDir: gDto.SortDirAsc,
	}

	items, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get schedule items")

		return nil, fmt.Errorf("failed to get schedule items: %w", err)
	}

	return items, nil
}

func (s *serviceImpl) allItems(ctx context.Context) ([]model.ScheduleItem, error) {
	var items []model.ScheduleItem

	err := s.cache.Get(ctx, cacheAllSchedule, &items)
	if err == nil {
		log.Info().Str("cacheKey", cacheAllSchedule).Msg("cache hit for full schedule")

		return items, nil
	}

	params := gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s, %s", model.FieldItemDate, model.FieldPosition),
		SortDir: gDto.SortDirAsc,
	}

	items, err = s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get schedule items")

		return nil, fmt.Errorf("failed to get schedule items: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheAllSchedule, items, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save full schedule to cache")
		}
	}()

	return items, nil
}

func abs(value float64) float64 {
	if value < 0 {
		return -value
	}

	return value
}
