package datasource

import (
	"encoding/json"
	"os"
	"time"
)

// Config represents the application configuration
type Config struct {
	// Upstream API base URLs
	IPGeolocationBaseURL  string `json:"ipGeolocationBaseUrl"`
	ReverseGeocodeBaseURL string `json:"reverseGeocodeBaseUrl"`
	GeocodingBaseURL      string `json:"geocodingBaseUrl"`
	ForecastBaseURL       string `json:"forecastBaseUrl"`

	// UserAgent is sent to the reverse-geocoding API, which requires an
	// identifying agent string.
	UserAgent string `json:"userAgent"`

	// RequestTimeout applies to every upstream HTTP request.
	RequestTimeout time.Duration `json:"-"`
}

// LoadConfig loads configuration from a JSON file, then applies environment
// variable overrides. A missing file is not an error; defaults are used.
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()

	if filename != "" {
		file, err := os.Open(filename)
		if err == nil {
			defer file.Close()
			decoder := json.NewDecoder(file)
			if err := decoder.Decode(config); err != nil {
				return nil, err
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	config.applyEnv()
	return config, nil
}

// DefaultConfig creates a default configuration pointing at the public
// endpoints.
func DefaultConfig() *Config {
	return &Config{
		IPGeolocationBaseURL:  "https://ipinfo.io",
		ReverseGeocodeBaseURL: "https://nominatim.openstreetmap.org",
		GeocodingBaseURL:      "https://geocoding-api.open-meteo.com",
		ForecastBaseURL:       "https://api.open-meteo.com",
		UserAgent:             "WeatherDashboard/1.0",
		RequestTimeout:        defaultTimeout,
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("IP_GEOLOCATION_BASE_URL"); v != "" {
		c.IPGeolocationBaseURL = v
	}
	if v := os.Getenv("REVERSE_GEOCODE_BASE_URL"); v != "" {
		c.ReverseGeocodeBaseURL = v
	}
	if v := os.Getenv("GEOCODING_BASE_URL"); v != "" {
		c.GeocodingBaseURL = v
	}
	if v := os.Getenv("FORECAST_BASE_URL"); v != "" {
		c.ForecastBaseURL = v
	}
	if v := os.Getenv("GEOCODE_USER_AGENT"); v != "" {
		c.UserAgent = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.RequestTimeout = d
		}
	}
}
