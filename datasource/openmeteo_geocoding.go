package datasource

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"weather-dashboard/models"
)

// OpenMeteoGeocodingProvider resolves free-text queries into coordinates
// using the Open-Meteo geocoding search API.
type OpenMeteoGeocodingProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewOpenMeteoGeocodingProvider creates a new Open-Meteo geocoding provider
func NewOpenMeteoGeocodingProvider(config *Config) *OpenMeteoGeocodingProvider {
	return &OpenMeteoGeocodingProvider{
		baseURL:    config.GeocodingBaseURL,
		httpClient: newHTTPClient(config.RequestTimeout),
	}
}

// Name returns the provider name
func (p *OpenMeteoGeocodingProvider) Name() string {
	return "open-meteo geocoding"
}

// SearchLocation resolves the query to the single best match.
func (p *OpenMeteoGeocodingProvider) SearchLocation(ctx context.Context, query string) (models.Location, error) {
	endpoint := fmt.Sprintf("%s/v1/search", p.baseURL)
	params := url.Values{}
	params.Add("name", query)
	params.Add("count", "1")
	params.Add("language", "en")
	params.Add("format", "json")

	var response struct {
		Results []struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Name      string  `json:"name"`
		} `json:"results"`
	}
	if err := getJSON(ctx, p.httpClient, p.Name(), endpoint+"?"+params.Encode(), nil, &response); err != nil {
		return models.Location{}, err
	}

	if len(response.Results) == 0 {
		return models.Location{}, &DataError{API: p.Name(), Reason: fmt.Sprintf("no results for query %q", query)}
	}

	first := response.Results[0]
	return models.NewLocation(first.Latitude, first.Longitude, first.Name), nil
}

// Verify interface compliance
var _ GeocodingSearch = (*OpenMeteoGeocodingProvider)(nil)
