package datasource

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"weather-dashboard/models"
)

// Fixed variable sets requested from the forecast API. The daily and hourly
// sets arrive as columnar blocks (parallel arrays aligned by a shared time
// array) and are transposed into row records below.
var (
	forecastDailyVariables = []string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
		"wind_speed_10m_max",
		"sunrise",
		"sunset",
		"daylight_duration",
	}
	forecastHourlyVariables = []string{
		"temperature_2m",
		"precipitation_probability",
		"weather_code",
		"wind_speed_10m",
	}
	forecastCurrentVariables = []string{
		"temperature_2m",
		"apparent_temperature",
		"weather_code",
		"surface_pressure",
		"precipitation",
		"wind_speed_10m",
		"relative_humidity_2m",
	}
)

// openMeteoForecastResponse is the relevant subset of the forecast payload.
type openMeteoForecastResponse struct {
	Current struct {
		Time               string  `json:"time"`
		WeatherCode        int     `json:"weather_code"`
		Temperature2m      float64 `json:"temperature_2m"`
		ApparentTemp       float64 `json:"apparent_temperature"`
		SurfacePressure    float64 `json:"surface_pressure"`
		Precipitation      float64 `json:"precipitation"`
		WindSpeed10m       float64 `json:"wind_speed_10m"`
		RelativeHumidity2m float64 `json:"relative_humidity_2m"`
	} `json:"current"`
	Daily struct {
		Time             []string  `json:"time"`
		WeatherCode      []int     `json:"weather_code"`
		Temperature2mMin []float64 `json:"temperature_2m_min"`
		Temperature2mMax []float64 `json:"temperature_2m_max"`
		Sunrise          []string  `json:"sunrise"`
		Sunset           []string  `json:"sunset"`
		DaylightDuration []float64 `json:"daylight_duration"`
	} `json:"daily"`
	Hourly struct {
		Time                     []string  `json:"time"`
		Temperature2m            []float64 `json:"temperature_2m"`
		PrecipitationProbability []float64 `json:"precipitation_probability"`
	} `json:"hourly"`
}

// OpenMeteoForecastProvider fetches forecasts from the Open-Meteo API and
// normalizes the columnar payload into row-oriented records.
type OpenMeteoForecastProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewOpenMeteoForecastProvider creates a new Open-Meteo forecast provider
func NewOpenMeteoForecastProvider(config *Config) *OpenMeteoForecastProvider {
	return &OpenMeteoForecastProvider{
		baseURL:    config.ForecastBaseURL,
		httpClient: newHTTPClient(config.RequestTimeout),
	}
}

// Name returns the source name
func (p *OpenMeteoForecastProvider) Name() string {
	return "open-meteo forecast"
}

// FetchForecast fetches the forecast for the coordinates and transposes the
// columnar daily and hourly blocks into chronological row records.
func (p *OpenMeteoForecastProvider) FetchForecast(ctx context.Context, latitude, longitude float64) (models.ForecastBundle, error) {
	endpoint := fmt.Sprintf("%s/v1/forecast", p.baseURL)
	params := url.Values{}
	params.Add("latitude", fmt.Sprintf("%v", latitude))
	params.Add("longitude", fmt.Sprintf("%v", longitude))
	params.Add("daily", strings.Join(forecastDailyVariables, ","))
	params.Add("hourly", strings.Join(forecastHourlyVariables, ","))
	params.Add("current", strings.Join(forecastCurrentVariables, ","))
	params.Add("timezone", "auto")

	var response openMeteoForecastResponse
	if err := getJSON(ctx, p.httpClient, p.Name(), endpoint+"?"+params.Encode(), nil, &response); err != nil {
		return models.ForecastBundle{}, err
	}

	daily, err := p.transposeDaily(response)
	if err != nil {
		return models.ForecastBundle{}, err
	}
	hourly, err := p.transposeHourly(response)
	if err != nil {
		return models.ForecastBundle{}, err
	}

	current := models.CurrentWeather{
		Time:                response.Current.Time,
		WeatherCode:         response.Current.WeatherCode,
		Temperature:         response.Current.Temperature2m,
		ApparentTemperature: response.Current.ApparentTemp,
		Pressure:            response.Current.SurfacePressure,
		Precipitation:       response.Current.Precipitation,
		WindSpeed:           response.Current.WindSpeed10m,
		Humidity:            response.Current.RelativeHumidity2m,
	}

	return models.ForecastBundle{
		Current: current,
		Daily:   daily,
		Hourly:  hourly,
	}, nil
}

// transposeDaily turns the daily columnar block into one record per day.
// Every variable array must be exactly as long as the time array; a mismatch
// means the payload is corrupt and is rejected rather than silently
// truncated.
func (p *OpenMeteoForecastProvider) transposeDaily(response openMeteoForecastResponse) ([]models.DailyForecast, error) {
	block := response.Daily
	if err := p.checkBlockLengths("daily", len(block.Time), map[string]int{
		"weather_code":       len(block.WeatherCode),
		"temperature_2m_min": len(block.Temperature2mMin),
		"temperature_2m_max": len(block.Temperature2mMax),
		"sunrise":            len(block.Sunrise),
		"sunset":             len(block.Sunset),
		"daylight_duration":  len(block.DaylightDuration),
	}); err != nil {
		return nil, err
	}

	daily := make([]models.DailyForecast, 0, len(block.Time))
	for i, t := range block.Time {
		daily = append(daily, models.DailyForecast{
			WeatherCode:      block.WeatherCode[i],
			LowTemperature:   block.Temperature2mMin[i],
			HighTemperature:  block.Temperature2mMax[i],
			Time:             t,
			Sunrise:          block.Sunrise[i],
			Sunset:           block.Sunset[i],
			DaylightDuration: block.DaylightDuration[i],
		})
	}
	return daily, nil
}

// transposeHourly turns the hourly columnar block into one record per hour.
func (p *OpenMeteoForecastProvider) transposeHourly(response openMeteoForecastResponse) ([]models.HourlyForecast, error) {
	block := response.Hourly
	if err := p.checkBlockLengths("hourly", len(block.Time), map[string]int{
		"temperature_2m":            len(block.Temperature2m),
		"precipitation_probability": len(block.PrecipitationProbability),
	}); err != nil {
		return nil, err
	}

	hourly := make([]models.HourlyForecast, 0, len(block.Time))
	for i, t := range block.Time {
		hourly = append(hourly, models.HourlyForecast{
			Temperature:              block.Temperature2m[i],
			PrecipitationProbability: block.PrecipitationProbability[i],
			Time:                     t,
		})
	}
	return hourly, nil
}

// checkBlockLengths verifies that every variable array in a columnar block
// matches the length of its time array.
func (p *OpenMeteoForecastProvider) checkBlockLengths(blockName string, timeLen int, lengths map[string]int) error {
	for variable, length := range lengths {
		if length != timeLen {
			return &DataError{
				API:    p.Name(),
				Reason: fmt.Sprintf("%s block: %s has %d values for %d timestamps", blockName, variable, length, timeLen),
			}
		}
	}
	return nil
}

// Verify interface compliance
var _ ForecastSource = (*OpenMeteoForecastProvider)(nil)
