package dto

import (
	"strings"
	"zentravel/internal/domains/schedule/model"
)

type HighlightResponse struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Color string `json:"color"`
}

type RelatedLinkResponse struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type GuideInfoResponse struct {
	Story       string               `json:"story,omitempty"`
	Tip         string               `json:"tip,omitempty"`
	Highlights  []HighlightResponse  `json:"highlights,omitempty"`
	RelatedLink *RelatedLinkResponse `json:"related_link,omitempty"`
}

type ScheduleItemResponse struct {
	ID            string             `json:"id"`
	Date          string             `json:"date"`
	Time          string             `json:"time"`
	DisplayTime   string             `json:"display_time,omitempty"`
	Title         string             `json:"title"`
	EnTitle       string             `json:"en_title,omitempty"`
	Location      string             `json:"location"`
	Category      string             `json:"category"`
	CategoryColor string             `json:"category_color"`
	Timed         bool               `json:"timed"`
	Description   string             `json:"description,omitempty"`
	BusinessHours string             `json:"business_hours,omitempty"`
	MapURL        string             `json:"map_url,omitempty"`
	GuideInfo     *GuideInfoResponse `json:"guide_info,omitempty"`
}

func (r *ScheduleItemResponse) FromModel(item model.ScheduleItem) {
	r.ID = item.ID
	r.Date = item.ItemDate
	r.Time = item.ItemTime
	r.DisplayTime = item.DisplayTime
	r.Title = item.Title
	r.EnTitle = item.EnTitle
	r.Location = item.Location
	r.Category = string(model.ParseCategory(string(item.Category)))
	r.CategoryColor = string(model.ParseColorToken(string(item.CategoryColor)))
	r.Timed = item.Timed
	r.Description = item.Description
	r.BusinessHours = item.BusinessHours
	r.MapURL = item.MapURL

	if !item.GuideInfo.IsZero() {
		guide := GuideInfoResponse{
			Story: item.GuideInfo.Story,
			Tip:   item.GuideInfo.Tip,
		}

		for _, highlight := range item.GuideInfo.Highlights {
			guide.Highlights = append(guide.Highlights, HighlightResponse{
				ID:    highlight.ID,
				Text:  highlight.Text,
				Color: string(model.ParseColorToken(highlight.Color)),
			})
		}

		if item.GuideInfo.RelatedLink != nil {
			guide.RelatedLink = &RelatedLinkResponse{
				Text: item.GuideInfo.RelatedLink.Text,
				URL:  item.GuideInfo.RelatedLink.URL,
			}
		}

		r.GuideInfo = &guide
	}
}

type GetScheduleResponse struct {
	Date      string                 `json:"date"`
	Items     []ScheduleItemResponse `json:"items"`
	TotalData int                    `json:"total_data"`
}

func (r *GetScheduleResponse) FromModels(date string, models []model.ScheduleItem) {
	r.Date = date
	r.TotalData = len(models)

	r.Items = make([]ScheduleItemResponse, len(models))
	for i, item := range models {
		r.Items[i].FromModel(item)
	}
}

// DateEntry is one selectable day with its header info.
type DateEntry struct {
	Date       string `json:"date"`
	Weekday    string `json:"weekday"`
	DayNumber  int    `json:"day_number"`
	LunarLabel string `json:"lunar_label,omitempty"`
	Location   string `json:"location"`
}

type GetDatesResponse struct {
	Dates       []DateEntry `json:"dates"`
	DefaultDate string      `json:"default_date"`
}

// MatchSpan is a rune-indexed substring location within the original,
// case-preserved field value.
type MatchSpan struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}

type FieldMatch struct {
	Field string      `json:"field"`
	Value string      `json:"value"`
	Spans []MatchSpan `json:"spans"`
}

type SearchResult struct {
	Item    ScheduleItemResponse `json:"item"`
	Matches []FieldMatch         `json:"matches,omitempty"`
}

type SearchResponse struct {
	Query     string         `json:"query"`
	Results   []SearchResult `json:"results"`
	TotalData int            `json:"total_data"`
}

const (
	NodeStyleSolid  = "solid"
	NodeStyleHollow = "hollow"
)

type TimelineNode struct {
	Style string `json:"style"`
	Color string `json:"color"`
}

type TimelineBadge struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// TimelineRow is the render contract for one item: the time column is only
// populated for timed items, and compound display times split into a main
// and a secondary line.
type TimelineRow struct {
	ShowTime bool                 `json:"show_time"`
	TimeMain string               `json:"time_main,omitempty"`
	TimeSub  string               `json:"time_sub,omitempty"`
	Node     TimelineNode         `json:"node"`
	Badge    TimelineBadge        `json:"badge"`
	Item     ScheduleItemResponse `json:"item"`
}

type GetTimelineResponse struct {
	Date string        `json:"date"`
	Rows []TimelineRow `json:"rows"`
}

func (r *TimelineRow) FromModel(item model.ScheduleItem) {
	r.Item.FromModel(item)

	category := model.ParseCategory(string(item.Category))
	color := model.ParseColorToken(string(item.CategoryColor))

	r.ShowTime = item.Timed
	if item.Timed {
		timeStr := item.ItemTime
		if item.DisplayTime != "" {
			timeStr = item.DisplayTime
		}

		main, sub, found := strings.Cut(timeStr, "\n")
		r.TimeMain = main
		if found {
			r.TimeSub = sub
		}
	}

	r.Node = TimelineNode{
		Style: NodeStyleHollow,
		Color: string(color),
	}
	if category == model.CategoryTransport {
		r.Node.Style = NodeStyleSolid
	}

	r.Badge = TimelineBadge{
		Label: string(category),
		Icon:  categoryIcon(category),
		Color: string(color),
	}
}

func categoryIcon(category model.Category) string {
	switch category {
	case model.CategoryTransport:
		return "plane"
	case model.CategorySightseeing:
		return "camera"
	case model.CategoryTicketed:
		return "ticket"
	case model.CategoryLodging:
		return "bed"
	default:
		return "circle-dot"
	}
}

type GestureRequest struct {
	StartX       float64 `json:"start_x"`
	StartY       float64 `json:"start_y"`
	EndX         float64 `json:"end_x"`
	EndY         float64 `json:"end_y"`
	ActiveDate   string  `json:"active_date"   validate:"required,datetime=2006-01-02"`
	SearchActive bool    `json:"search_active"`
}

type GestureResponse struct {
	SelectedDate string `json:"selected_date"`
	Moved        bool   `json:"moved"`
}
