package service_test

import (
	"context"
	"errors"
	"testing"
	"time"
	"zentravel/config"
	otelMocks "zentravel/infras/otel/mocks"
	"zentravel/internal/domains/schedule/mocks"
	"zentravel/internal/domains/schedule/model"
	"zentravel/internal/domains/schedule/model/dto"
	"zentravel/internal/domains/schedule/service"
	cacheMocks "zentravel/shared/cache/mocks"
	"zentravel/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var errCacheMiss = errors.New("cache miss")

func testItems() []model.ScheduleItem {
	return []model.ScheduleItem{
		{
			ID:       "d1-1",
			ItemDate: "2026-02-15",
			ItemTime: "00:20",
			Title:    "桃園機場出發",
			EnTitle:  "Departure TPE",
			Location: "桃園國際機場",
			Category: model.CategoryTransport,
			Timed:    true,
			Position: 1,
		},
		{
			ID:          "d2-2",
			ItemDate:    "2026-02-16",
			ItemTime:    "14:00",
			DisplayTime: "14:00\n(約2小時)",
			Title:       "布拉格城堡",
			EnTitle:     "Prague Castle",
			Location:    "布拉格",
			Category:    model.CategoryTicketed,
			Timed:       true,
			Position:    2,
			GuideInfo: model.GuideInfo{
				Story: "A castle above the Vltava.",
				Tip:   "早上人潮較少",
				Highlights: []model.Highlight{
					{ID: "h1", Text: "St. Vitus Cathedral", Color: "gold"},
				},
			},
		},
		{
			ID:       "d3-1",
			ItemDate: "2026-02-17",
			Title:    "舊城區自由活動",
			EnTitle:  "Old Town",
			Location: "布拉格",
			Category: model.CategoryOther,
			Timed:    false,
			Position: 1,
		},
	}
}

func newService(t *testing.T, setup func(repo *mocks.MockSchedule, cache *cacheMocks.MockRedisCache)) service.Schedule {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := mocks.NewMockSchedule(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	if setup != nil {
		setup(repo, cache)
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return service.New(repo, cfg, cache, otelMocks.NewOtel())
}

func TestGetDates(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(repo *mocks.MockSchedule, cache *cacheMocks.MockRedisCache) {
		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		repo.EXPECT().GetDistinct(gomock.Any(), model.FieldItemDate).
			Return([]string{"2026-02-15", "2026-02-16", "2026-02-20", "2026-02-21", "2026-02-24"}, nil)
	})

	res, err := svc.GetDates(context.Background())
	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, res.Dates, 5)
	assert.Equal(t, "2026-02-15", res.DefaultDate)

	first := res.Dates[0]
	assert.Equal(t, "SUN", first.Weekday)
	assert.Equal(t, 15, first.DayNumber)
	assert.Equal(t, "小年夜", first.LunarLabel)
	assert.Equal(t, "捷克 Czech Republic", first.Location)

	assert.Equal(t, "除夕", res.Dates[1].LunarLabel)
	assert.Equal(t, "德國 Germany", res.Dates[2].Location)
	assert.Equal(t, "奧地利 Austria", res.Dates[3].Location)
	assert.Equal(t, "", res.Dates[4].LunarLabel)
}

func TestGetByDate(t *testing.T) {
	t.Parallel()

	items := testItems()

	tests := []struct {
		name      string
		date      string
		setupMock func(repo *mocks.MockSchedule, cache *cacheMocks.MockRedisCache)
		wantItems int
		wantErr   error
	}{
		{
			name: "returns only items of the requested day",
			date: "2026-02-16",
			setupMock: func(repo *mocks.MockSchedule, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
				cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.ScheduleItem{items[1]}, nil)
			},
			wantItems: 1,
		},
		{
			name: "unknown date is an empty day",
			date: "2026-03-01",
			setupMock: func(repo *mocks.MockSchedule, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
				cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.ScheduleItem{}, nil)
			},
			wantItems: 0,
		},
		{
			name:    "malformed date is rejected",
			date:    "15-02-2026",
			wantErr: failure.InvalidDateParam,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			svc := newService(t, test.setupMock)

			res, err := svc.GetByDate(context.Background(), test.date)
			time.Sleep(10 * time.Millisecond)

			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, test.date, res.Date)
			assert.Len(t, res.Items, test.wantItems)

			for _, item := range res.Items {
				assert.Equal(t, test.date, item.Date)
			}
		})
	}
}

func expectFullCollection(repo *mocks.MockSchedule, cache *cacheMocks.MockRedisCache) {
	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(testItems(), nil)
}

func TestSearch(t *testing.T) {
	t.Parallel()

	t.Run("empty query returns everything without spans", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, expectFullCollection)

		res, err := svc.Search(context.Background(), "   ")
		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "", res.Query)
		assert.Equal(t, 3, res.TotalData)

		for _, result := range res.Results {
			assert.Empty(t, result.Matches)
		}
	})

	t.Run("matching is case-insensitive with rune spans", func(t *testing.T) {
		t.Parallel()

		for _, query := range []string{"castle", "CASTLE"} {
			svc := newService(t, expectFullCollection)

			res, err := svc.Search(context.Background(), query)
			time.Sleep(10 * time.Millisecond)

			assert.NoError(t, err)
			assert.Equal(t, 1, res.TotalData)

			result := res.Results[0]
			assert.Equal(t, "d2-2", result.Item.ID)

			// en_title, story and one highlight all contain "castle";
			// the item still appears exactly once.
			fields := make(map[string]dto.FieldMatch, len(result.Matches))
			for _, match := range result.Matches {
				fields[match.Field] = match
			}

			enTitle, ok := fields["en_title"]
			assert.True(t, ok)
			assert.Equal(t, []dto.MatchSpan{{Start: 7, Length: 6}}, enTitle.Spans)
			assert.Equal(t, "Prague Castle", enTitle.Value)

			_, ok = fields["guide_info.story"]
			assert.True(t, ok)
		}
	})

	t.Run("chinese query spans count runes not bytes", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, expectFullCollection)

		res, err := svc.Search(context.Background(), "布拉格")
		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)

		for _, result := range res.Results {
			for _, match := range result.Matches {
				if match.Field == "location" {
					assert.Equal(t, []dto.MatchSpan{{Start: 0, Length: 3}}, match.Spans)
				}
			}
		}
	})

	t.Run("no hits yields an empty result list", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, expectFullCollection)

		res, err := svc.Search(context.Background(), "nonexistent")
		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, 0, res.TotalData)
		assert.NotNil(t, res.Results)
	})
}

func TestGetTimeline(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(repo *mocks.MockSchedule, cache *cacheMocks.MockRedisCache) {
		items := testItems()
		repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.ScheduleItem{items[1], items[2]}, nil)
	})

	res, err := svc.GetTimeline(context.Background(), "2026-02-16")

	assert.NoError(t, err)
	assert.Len(t, res.Rows, 2)

	timed := res.Rows[0]
	assert.True(t, timed.ShowTime)
	assert.Equal(t, "14:00", timed.TimeMain)
	assert.Equal(t, "(約2小時)", timed.TimeSub)
	assert.Equal(t, dto.NodeStyleHollow, timed.Node.Style)
	assert.Equal(t, "ticket", timed.Badge.Icon)

	untimed := res.Rows[1]
	assert.False(t, untimed.ShowTime)
	assert.Equal(t, "", untimed.TimeMain)
	assert.Equal(t, "circle-dot", untimed.Badge.Icon)
}

func TestGetTimelineTransportNodeIsSolid(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(repo *mocks.MockSchedule, cache *cacheMocks.MockRedisCache) {
		repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.ScheduleItem{testItems()[0]}, nil)
	})

	res, err := svc.GetTimeline(context.Background(), "2026-02-15")

	assert.NoError(t, err)
	assert.Equal(t, dto.NodeStyleSolid, res.Rows[0].Node.Style)
	assert.Equal(t, "plane", res.Rows[0].Badge.Icon)
}

func TestResolveGesture(t *testing.T) {
	t.Parallel()

	dates := []string{"2026-02-15", "2026-02-16", "2026-02-17"}

	expectDates := func(repo *mocks.MockSchedule, cache *cacheMocks.MockRedisCache) {
		repo.EXPECT().GetDistinct(gomock.Any(), model.FieldItemDate).Return(dates, nil)
	}

	tests := []struct {
		name      string
		req       dto.GestureRequest
		setupMock func(repo *mocks.MockSchedule, cache *cacheMocks.MockRedisCache)
		wantDate  string
		wantMoved bool
	}{
		{
			name: "left swipe advances a day",
			req: dto.GestureRequest{
				StartX: 300, EndX: 180, StartY: 100, EndY: 110,
				ActiveDate: "2026-02-16",
			},
			setupMock: expectDates,
			wantDate:  "2026-02-17",
			wantMoved: true,
		},
		{
			name: "right swipe goes back a day",
			req: dto.GestureRequest{
				StartX: 100, EndX: 260, StartY: 100, EndY: 90,
				ActiveDate: "2026-02-16",
			},
			setupMock: expectDates,
			wantDate:  "2026-02-15",
			wantMoved: true,
		},
		{
			name: "movement below threshold is ignored",
			req: dto.GestureRequest{
				StartX: 100, EndX: 140, StartY: 100, EndY: 100,
				ActiveDate: "2026-02-16",
			},
			wantDate: "2026-02-16",
		},
		{
			name: "vertical drags never change the day",
			req: dto.GestureRequest{
				StartX: 100, EndX: 200, StartY: 100, EndY: 300,
				ActiveDate: "2026-02-16",
			},
			wantDate: "2026-02-16",
		},
		{
			name: "clamped at the last day",
			req: dto.GestureRequest{
				StartX: 300, EndX: 100, StartY: 100, EndY: 100,
				ActiveDate: "2026-02-17",
			},
			setupMock: expectDates,
			wantDate:  "2026-02-17",
		},
		{
			name: "clamped at the first day",
			req: dto.GestureRequest{
				StartX: 100, EndX: 300, StartY: 100, EndY: 100,
				ActiveDate: "2026-02-15",
			},
			setupMock: expectDates,
			wantDate:  "2026-02-15",
		},
		{
			name: "suppressed while searching",
			req: dto.GestureRequest{
				StartX: 300, EndX: 100, StartY: 100, EndY: 100,
				ActiveDate: "2026-02-16", SearchActive: true,
			},
			wantDate: "2026-02-16",
		},
		{
			name: "unknown active date is a no-op",
			req: dto.GestureRequest{
				StartX: 300, EndX: 100, StartY: 100, EndY: 100,
				ActiveDate: "2026-03-01",
			},
			setupMock: expectDates,
			wantDate:  "2026-03-01",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			svc := newService(t, test.setupMock)

			res, err := svc.ResolveGesture(context.Background(), test.req)

			assert.NoError(t, err)
			assert.Equal(t, test.wantDate, res.SelectedDate)
			assert.Equal(t, test.wantMoved, res.Moved)
		})
	}
}
