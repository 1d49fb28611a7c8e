package datasource

import (
	"context"
	"fmt"

	"weather-dashboard/models"

	"golang.org/x/time/rate"
)

// RateLimitedReverseGeocoder wraps a ReverseGeocoder with rate limiting.
// Nominatim's usage policy allows at most one request per second.
type RateLimitedReverseGeocoder struct {
	provider ReverseGeocoder
	limiter  *rate.Limiter
	name     string
}

// NewRateLimitedReverseGeocoder creates a new rate limited reverse geocoder
// rps is the maximum requests per second allowed (can be fractional for less than 1 request per second)
// burst is the maximum burst size allowed
func NewRateLimitedReverseGeocoder(provider ReverseGeocoder, rps float64, burst int) *RateLimitedReverseGeocoder {
	return &RateLimitedReverseGeocoder{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		name:     fmt.Sprintf("%s [Rate Limited]", provider.Name()),
	}
}

// ReverseGeocode resolves a place name, respecting rate limits
func (r *RateLimitedReverseGeocoder) ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error) {
	// Wait for rate limiter permission or context cancellation
	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait canceled: %w", err)
	}

	// Forward to the underlying provider
	return r.provider.ReverseGeocode(ctx, latitude, longitude)
}

// Name returns the provider name
func (r *RateLimitedReverseGeocoder) Name() string {
	return r.name
}

// RateLimitedGeocodingSearch wraps a GeocodingSearch with rate limiting
type RateLimitedGeocodingSearch struct {
	provider GeocodingSearch
	limiter  *rate.Limiter
	name     string
}

// NewRateLimitedGeocodingSearch creates a new rate limited geocoding search
// rps is the maximum requests per second allowed
// burst is the maximum burst size allowed
func NewRateLimitedGeocodingSearch(provider GeocodingSearch, rps float64, burst int) *RateLimitedGeocodingSearch {
	return &RateLimitedGeocodingSearch{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		name:     fmt.Sprintf("%s [Rate Limited]", provider.Name()),
	}
}

// SearchLocation resolves a query, respecting rate limits
func (r *RateLimitedGeocodingSearch) SearchLocation(ctx context.Context, query string) (models.Location, error) {
	// Wait for rate limiter permission or context cancellation
	if err := r.limiter.Wait(ctx); err != nil {
		return models.Location{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	// Forward to the underlying provider
	return r.provider.SearchLocation(ctx, query)
}

// Name returns the provider name
func (r *RateLimitedGeocodingSearch) Name() string {
	return r.name
}

// Verify that our rate limited types implement the required interfaces
var (
	_ ReverseGeocoder = (*RateLimitedReverseGeocoder)(nil)
	_ GeocodingSearch = (*RateLimitedGeocodingSearch)(nil)
)
