package datasource

import (
	"context"

	"weather-dashboard/models"
)

// IPGeolocator resolves a coarse location from the caller's public IP.
type IPGeolocator interface {
	// GeolocateByIP resolves the caller's location with no input hints.
	GeolocateByIP(ctx context.Context) (models.Location, error)

	// Name returns the provider's name
	Name() string
}

// ReverseGeocoder turns a coordinate pair into a place name.
type ReverseGeocoder interface {
	// ReverseGeocode returns the name of the place at the given coordinates.
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error)

	// Name returns the provider's name
	Name() string
}

// GeocodingSearch resolves a free-text query into a location.
type GeocodingSearch interface {
	// SearchLocation returns the best match for the query.
	SearchLocation(ctx context.Context, query string) (models.Location, error)

	// Name returns the provider's name
	Name() string
}

// ForecastSource fetches current, daily and hourly forecast data for a
// coordinate pair in one call.
type ForecastSource interface {
	// FetchForecast fetches and normalizes the forecast for the coordinates.
	FetchForecast(ctx context.Context, latitude, longitude float64) (models.ForecastBundle, error)

	// Name returns the source's name
	Name() string
}
