package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"zentravel/internal/domains/schedule/model"
	"zentravel/internal/domains/schedule/model/dto"
	"zentravel/shared/constant"

	"github.com/rs/zerolog/log"
)

// searchField pairs a stable field name with the case-preserved value the
// match spans index into.
type searchField struct {
	name  string
	value string
}

func searchFields(item model.ScheduleItem) []searchField {
	fields := []searchField{
		{name: "title", value: item.Title},
		{name: "en_title", value: item.EnTitle},
		{name: "location", value: item.Location},
		{name: "description", value: item.Description},
		{name: "category", value: string(item.Category)},
		{name: "guide_info.story", value: item.GuideInfo.Story},
		{name: "guide_info.tip", value: item.GuideInfo.Tip},
	}

	for i, highlight := range item.GuideInfo.Highlights {
		fields = append(fields, searchField{
			name:  fmt.Sprintf("guide_info.highlights[%d].text", i),
			value: highlight.Text,
		})
	}

	return fields
}

// foldRunes lowercases rune by rune so offsets stay aligned with the
// original value. strings.ToLower can change rune counts for a handful of
// code points, which would shift every span after it.
func foldRunes(value string) []rune {
	runes := []rune(value)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}

	return runes
}

// matchSpans finds every non-overlapping occurrence of query inside value,
// case-insensitively, reported as rune offsets into value.
func matchSpans(value, query string) []dto.MatchSpan {
	haystack := foldRunes(value)
	needle := foldRunes(query)

	if len(needle) == 0 || len(needle) > len(haystack) {
		return nil
	}

	var spans []dto.MatchSpan

	for i := 0; i+len(needle) <= len(haystack); {
		matched := true

		for j := range needle {
			if haystack[i+j] != needle[j] {
				matched = false

				break
			}
		}

		if matched {
			spans = append(spans, dto.MatchSpan{Start: i, Length: len(needle)})
			i += len(needle)
		} else {
			i++
		}
	}

	return spans
}

// Search scans the whole itinerary for the query. An empty (or
// whitespace-only) query is not a filter: it returns every item with no
// match spans, so clearing the search box restores the full view.
func (s *serviceImpl) Search(ctx context.Context, query string) (res dto.SearchResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	query = strings.TrimSpace(query)
	res.Query = query
	res.Results = []dto.SearchResult{}

	items, err := s.allItems(ctx)
	if err != nil {
		return res, err
	}

	for _, item := range items {
		if query == "" {
			result := dto.SearchResult{}
			result.Item.FromModel(item)
			res.Results = append(res.Results, result)

			continue
		}

		var matches []dto.FieldMatch

		for _, field := range searchFields(item) {
			spans := matchSpans(field.value, query)
			if len(spans) == 0 {
				continue
			}

			matches = append(matches, dto.FieldMatch{
				Field: field.name,
				Value: field.value,
				Spans: spans,
			})
		}

		if len(matches) == 0 {
			continue
		}

		result := dto.SearchResult{Matches: matches}
		result.Item.FromModel(item)
		res.Results = append(res.Results, result)
	}

	res.TotalData = len(res.Results)

	log.Debug().Str("query", query).Int("results", res.TotalData).Msg("schedule search completed")

	return res, nil
}
