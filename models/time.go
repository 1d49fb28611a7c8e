package models

import (
	"fmt"
	"time"
)

// forecastTimeLayouts are the timestamp forms Open-Meteo emits: minute
// precision for hourly/current values, date only for daily values.
var forecastTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// ParseForecastTime parses a timestamp string as returned by the forecast
// API. The API reports local wall-clock time without a zone suffix, so the
// result is in time.Local unless the string itself carries an offset.
func ParseForecastTime(value string) (time.Time, error) {
	for _, layout := range forecastTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized forecast timestamp: %q", value)
}

// SameHour reports whether both instants fall within the same top-of-hour
// window. 13:59:59 and 14:00:00 are different hours even though they are one
// second apart.
func SameHour(a, b time.Time) bool {
	return a.Truncate(time.Hour).Equal(b.Truncate(time.Hour))
}
