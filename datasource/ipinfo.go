package datasource

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"weather-dashboard/models"
)

// IPInfoProvider resolves a coarse location from the caller's IP address
// using the ipinfo.io JSON endpoint.
type IPInfoProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewIPInfoProvider creates a new ipinfo.io provider
func NewIPInfoProvider(config *Config) *IPInfoProvider {
	return &IPInfoProvider{
		baseURL:    config.IPGeolocationBaseURL,
		httpClient: newHTTPClient(config.RequestTimeout),
	}
}

// Name returns the provider name
func (p *IPInfoProvider) Name() string {
	return "ipinfo"
}

// GeolocateByIP fetches the caller's location. The upstream response reports
// coordinates as a single "lat,lon" string which is split here.
func (p *IPInfoProvider) GeolocateByIP(ctx context.Context) (models.Location, error) {
	endpoint := fmt.Sprintf("%s/json", p.baseURL)

	var response struct {
		City string `json:"city"`
		Loc  string `json:"loc"`
	}
	if err := getJSON(ctx, p.httpClient, p.Name(), endpoint, nil, &response); err != nil {
		return models.Location{}, err
	}

	if response.Loc == "" {
		return models.Location{}, &DataError{API: p.Name(), Reason: "no loc field in response"}
	}

	latStr, lonStr, found := strings.Cut(response.Loc, ",")
	if !found {
		return models.Location{}, &DataError{API: p.Name(), Reason: fmt.Sprintf("malformed loc field %q", response.Loc)}
	}

	latitude, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return models.Location{}, &DataError{API: p.Name(), Reason: fmt.Sprintf("malformed latitude in loc field %q", response.Loc)}
	}
	longitude, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return models.Location{}, &DataError{API: p.Name(), Reason: fmt.Sprintf("malformed longitude in loc field %q", response.Loc)}
	}

	return models.NewLocation(latitude, longitude, response.City), nil
}

// Verify interface compliance
var _ IPGeolocator = (*IPInfoProvider)(nil)
