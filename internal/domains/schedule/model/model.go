package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	TableName  = "schedule_items"
	EntityName = "schedule_item"

	FieldID       = "id"
	FieldItemDate = "item_date"
	FieldPosition = "position"
)

// Category is the closed set of itinerary item kinds. Unknown values parse
// to CategoryOther so rendering falls back instead of erroring.
type Category string

const (
	CategoryTransport   Category = "transport"
	CategorySightseeing Category = "下車參觀"
	CategoryTicketed    Category = "入場卷"
	CategoryLodging     Category = "飯店"
	CategoryOther       Category = "other"
)

func ParseCategory(value string) Category {
	switch Category(value) {
	case CategoryTransport, CategorySightseeing, CategoryTicketed, CategoryLodging:
		return Category(value)
	default:
		return CategoryOther
	}
}

// ColorToken is the closed palette shared by badges, timeline nodes and
// highlight tags. Unknown values parse to ColorGray.
type ColorToken string

const (
	ColorRed    ColorToken = "red"
	ColorOrange ColorToken = "orange"
	ColorGreen  ColorToken = "green"
	ColorBlue   ColorToken = "blue"
	ColorPurple ColorToken = "purple"
	ColorGray   ColorToken = "gray"
	ColorTeal   ColorToken = "teal"
)

func ParseColorToken(value string) ColorToken {
	switch ColorToken(value) {
	case ColorRed, ColorOrange, ColorGreen, ColorBlue, ColorPurple, ColorGray, ColorTeal:
		return ColorToken(value)
	default:
		return ColorGray
	}
}

type Highlight struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Color string `json:"color"`
}

type RelatedLink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// GuideInfo is the optional narrative bundle attached to an item. Stored as
// a single JSONB column.
type GuideInfo struct {
	Story       string       `json:"story,omitempty"`
	Tip         string       `json:"tip,omitempty"`
	Highlights  []Highlight  `json:"highlights,omitempty"`
	RelatedLink *RelatedLink `json:"related_link,omitempty"`
}

func (g GuideInfo) Value() (driver.Value, error) {
	if g.Story == "" && g.Tip == "" && len(g.Highlights) == 0 && g.RelatedLink == nil {
		return nil, nil
	}

	data, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal guide info: %w", err)
	}

	return data, nil
}

func (g *GuideInfo) Scan(src any) error {
	if src == nil {
		*g = GuideInfo{}

		return nil
	}

	var data []byte

	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported scan type for guide info")
	}

	if err := json.Unmarshal(data, g); err != nil {
		return fmt.Errorf("failed to unmarshal guide info: %w", err)
	}

	return nil
}

func (g GuideInfo) IsZero() bool {
	return g.Story == "" && g.Tip == "" && len(g.Highlights) == 0 && g.RelatedLink == nil
}

// ScheduleItem is one row of the itinerary. Items are authored in
// chronological order per date; Position preserves that order at read time.
type ScheduleItem struct {
	ID            string     `db:"id"`
	ItemDate      string     `db:"item_date"`
	ItemTime      string     `db:"item_time"`
	DisplayTime   string     `db:"display_time"`
	Title         string     `db:"title"`
	EnTitle       string     `db:"en_title"`
	Location      string     `db:"location"`
	Category      Category   `db:"category"`
	CategoryColor ColorToken `db:"category_color"`
	Timed         bool       `db:"timed"`
	Description   string     `db:"description"`
	BusinessHours string     `db:"business_hours"`
	MapURL        string     `db:"map_url"`
	GuideInfo     GuideInfo  `db:"guide_info"`
	Position      int        `db:"position"`
}
