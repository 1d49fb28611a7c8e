package datasource

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// unknownPlaceName is returned when reverse geocoding succeeds but none of
// the recognized address fields is present.
const unknownPlaceName = "Unknown"

// NominatimProvider resolves place names from coordinates using the
// OpenStreetMap Nominatim reverse-geocoding API.
type NominatimProvider struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewNominatimProvider creates a new Nominatim reverse-geocoding provider.
// Nominatim's usage policy requires an identifying User-Agent.
func NewNominatimProvider(config *Config) *NominatimProvider {
	return &NominatimProvider{
		baseURL:    config.ReverseGeocodeBaseURL,
		userAgent:  config.UserAgent,
		httpClient: newHTTPClient(config.RequestTimeout),
	}
}

// Name returns the provider name
func (p *NominatimProvider) Name() string {
	return "nominatim"
}

// ReverseGeocode returns the name of the place at the given coordinates,
// preferring city over town over village over municipality. When none of
// those is present the literal "Unknown" is returned.
func (p *NominatimProvider) ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error) {
	endpoint := fmt.Sprintf("%s/reverse", p.baseURL)
	params := url.Values{}
	params.Add("lat", fmt.Sprintf("%v", latitude))
	params.Add("lon", fmt.Sprintf("%v", longitude))
	params.Add("format", "json")
	params.Add("addressdetails", "1")
	params.Add("zoom", "13")

	headers := map[string]string{
		"User-Agent": p.userAgent,
	}

	var response struct {
		Address *struct {
			City         string `json:"city"`
			Town         string `json:"town"`
			Village      string `json:"village"`
			Municipality string `json:"municipality"`
		} `json:"address"`
	}
	if err := getJSON(ctx, p.httpClient, p.Name(), endpoint+"?"+params.Encode(), headers, &response); err != nil {
		return "", err
	}

	if response.Address == nil {
		return "", &DataError{API: p.Name(), Reason: "no address object in response"}
	}

	address := response.Address
	for _, candidate := range []string{address.City, address.Town, address.Village, address.Municipality} {
		if candidate != "" {
			return candidate, nil
		}
	}
	return unknownPlaceName, nil
}

// Verify interface compliance
var _ ReverseGeocoder = (*NominatimProvider)(nil)
