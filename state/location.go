package state

import (
	"context"
	"log/slog"
	"sync"

	"weather-dashboard/datasource"
	"weather-dashboard/models"
)

// locationErrorText is the only detail the user sees when any resolution
// strategy fails; specifics go to the log.
const locationErrorText = "Failed to get your location"

// LocationStore holds the resolved location and coordinates the three
// resolution strategies. A successful resolution replaces the record
// wholesale; a failed one leaves it untouched and enqueues a fixed-text
// error message.
//
// Overlapping fetches are sequenced with a request token: each fetch takes
// the next token when it starts and only the fetch holding the latest token
// may apply its result, so a slow stale response can never overwrite a newer
// one.
type LocationStore struct {
	ipGeolocator    datasource.IPGeolocator
	reverseGeocoder datasource.ReverseGeocoder
	geocodingSearch datasource.GeocodingSearch
	device          DeviceLocator
	messages        *MessageQueue
	logger          *slog.Logger

	mutex    sync.Mutex
	location models.Location
	pending  int
	sequence uint64

	notifier notifier
}

// NewLocationStore creates a location store with all collaborators injected.
// A nil logger falls back to slog.Default().
func NewLocationStore(
	ipGeolocator datasource.IPGeolocator,
	reverseGeocoder datasource.ReverseGeocoder,
	geocodingSearch datasource.GeocodingSearch,
	device DeviceLocator,
	messages *MessageQueue,
	logger *slog.Logger,
) *LocationStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &LocationStore{
		ipGeolocator:    ipGeolocator,
		reverseGeocoder: reverseGeocoder,
		geocodingSearch: geocodingSearch,
		device:          device,
		messages:        messages,
		logger:          logger,
	}
}

// FetchGeneralLocation resolves a coarse location from the caller's IP.
func (s *LocationStore) FetchGeneralLocation(ctx context.Context) {
	token := s.begin()
	defer s.end()

	location, err := s.ipGeolocator.GeolocateByIP(ctx)
	if err != nil {
		s.fail("ip geolocation failed", err)
		return
	}
	s.apply(token, location)
}

// FetchUserLocation resolves the device's own coordinates into a named
// location. When geolocation is unsupported, permission is not granted or
// the device has no fix yet, the call is a no-op: loading still toggles and
// no error is reported.
func (s *LocationStore) FetchUserLocation(ctx context.Context) {
	token := s.begin()
	defer s.end()

	if s.device.Supported() && s.device.Permission() != PermissionDenied {
		s.device.RequestRead()
	}

	coords := s.device.Coordinates()
	if s.device.Permission() != PermissionGranted || !coords.Resolved() {
		return
	}

	name, err := s.reverseGeocoder.ReverseGeocode(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		s.fail("reverse geocoding failed", err)
		return
	}
	// The device already supplied the coordinates; the lookup only adds the name.
	s.apply(token, models.NewLocation(coords.Latitude, coords.Longitude, name))
}

// SearchLocation resolves a free-text query into a location.
func (s *LocationStore) SearchLocation(ctx context.Context, query string) {
	token := s.begin()
	defer s.end()

	location, err := s.geocodingSearch.SearchLocation(ctx, query)
	if err != nil {
		s.fail("location search failed", err, "query", query)
		return
	}
	s.apply(token, location)
}

// Snapshot returns the current location record and whether any fetch is in
// flight.
func (s *LocationStore) Snapshot() (models.Location, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.location, s.pending > 0
}

// Subscribe returns a channel signaled whenever the location record changes.
func (s *LocationStore) Subscribe() <-chan struct{} {
	return s.notifier.Subscribe()
}

func (s *LocationStore) begin() uint64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.pending++
	s.sequence++
	return s.sequence
}

func (s *LocationStore) end() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.pending--
}

func (s *LocationStore) apply(token uint64, location models.Location) {
	s.mutex.Lock()
	if token != s.sequence {
		s.mutex.Unlock()
		s.logger.Debug("dropping stale location result", "token", token, "latest", s.sequence)
		return
	}
	s.location = location
	s.mutex.Unlock()

	s.notifier.Notify()
}

func (s *LocationStore) fail(detail string, err error, args ...any) {
	s.logger.Error(detail, append([]any{"error", err}, args...)...)
	s.messages.AddError(locationErrorText)
}
