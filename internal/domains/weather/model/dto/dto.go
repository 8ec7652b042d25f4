package dto

const (
	ConditionSunny  = "sunny"
	ConditionCloudy = "cloudy"
	ConditionRain   = "rain"
	ConditionSnow   = "snow"
)

// WeatherResponse is the compressed banner payload: a rounded temperature
// and one of four condition buckets, never the raw upstream observation.
type WeatherResponse struct {
	Date         string `json:"date"`
	LocationName string `json:"location_name"`
	Temperature  int    `json:"temperature"`
	Condition    string `json:"condition"`
	Stale        bool   `json:"stale"`
}
