package models

// DailyForecast represents one calendar day of forecast data. A forecast
// response yields a chronological slice of these, one per day.
type DailyForecast struct {
	WeatherCode      int     `json:"weatherCode"`      // WMO weather interpretation code
	LowTemperature   float64 `json:"lowTemperature"`   // daily minimum, in Celsius
	HighTemperature  float64 `json:"highTemperature"`  // daily maximum, in Celsius
	Time             string  `json:"time"`             // calendar day (YYYY-MM-DD)
	Sunrise          string  `json:"sunrise"`          // local sunrise timestamp
	Sunset           string  `json:"sunset"`           // local sunset timestamp
	DaylightDuration float64 `json:"daylightDuration"` // in seconds
}

// HourlyForecast represents a single forecast hour.
type HourlyForecast struct {
	Temperature              float64 `json:"temperature"`              // in Celsius
	PrecipitationProbability float64 `json:"precipitationProbability"` // percentage
	Time                     string  `json:"time"`                     // local timestamp
}

// ForecastBundle groups everything a single forecast fetch produces.
type ForecastBundle struct {
	Current CurrentWeather   `json:"current"`
	Daily   []DailyForecast  `json:"daily"`
	Hourly  []HourlyForecast `json:"hourly"`
}
