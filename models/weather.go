package models

// CurrentWeather is a single snapshot of current conditions, replaced
// wholesale on each successful fetch.
type CurrentWeather struct {
	Time                string  `json:"time"`                // local timestamp reported by the upstream API
	WeatherCode         int     `json:"weatherCode"`         // WMO weather interpretation code
	Temperature         float64 `json:"temperature"`         // in Celsius
	ApparentTemperature float64 `json:"apparentTemperature"` // "feels like", in Celsius
	Pressure            float64 `json:"pressure"`            // surface pressure in hPa
	Precipitation       float64 `json:"precipitation"`       // in mm
	WindSpeed           float64 `json:"windSpeed"`           // in km/h
	Humidity            float64 `json:"humidity"`            // relative humidity, percentage
}
