package state

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"weather-dashboard/datasource"
	"weather-dashboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeIPGeolocator struct {
	location models.Location
	err      error
	release  chan struct{} // when non-nil, GeolocateByIP blocks until closed
	started  chan struct{} // when non-nil, closed once the call is underway
	calls    int
}

func (f *fakeIPGeolocator) GeolocateByIP(ctx context.Context) (models.Location, error) {
	f.calls++
	if f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}
	return f.location, f.err
}

func (f *fakeIPGeolocator) Name() string { return "fake ip" }

type fakeReverseGeocoder struct {
	name  string
	err   error
	calls int
}

func (f *fakeReverseGeocoder) ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error) {
	f.calls++
	return f.name, f.err
}

func (f *fakeReverseGeocoder) Name() string { return "fake reverse" }

type fakeGeocodingSearch struct {
	location models.Location
	err      error
	calls    int
}

func (f *fakeGeocodingSearch) SearchLocation(ctx context.Context, query string) (models.Location, error) {
	f.calls++
	return f.location, f.err
}

func (f *fakeGeocodingSearch) Name() string { return "fake search" }

type fakeDevice struct {
	supported  bool
	permission Permission
	coords     models.Coordinates
	readCalls  int
}

func (f *fakeDevice) Supported() bool                 { return f.supported }
func (f *fakeDevice) Permission() Permission          { return f.permission }
func (f *fakeDevice) RequestRead()                    { f.readCalls++ }
func (f *fakeDevice) Coordinates() models.Coordinates { return f.coords }

func newTestLocationStore(ip datasource.IPGeolocator, reverse datasource.ReverseGeocoder, search datasource.GeocodingSearch, device DeviceLocator) (*LocationStore, *MessageQueue) {
	if ip == nil {
		ip = &fakeIPGeolocator{}
	}
	if reverse == nil {
		reverse = &fakeReverseGeocoder{}
	}
	if search == nil {
		search = &fakeGeocodingSearch{}
	}
	if device == nil {
		device = UnsupportedLocator()
	}
	messages := NewMessageQueue()
	store := NewLocationStore(ip, reverse, search, device, messages, testLogger())
	return store, messages
}

func TestFetchGeneralLocationSuccess(t *testing.T) {
	ip := &fakeIPGeolocator{location: models.NewLocation(52.3068, 4.9453, "Amsterdam")}
	store, messages := newTestLocationStore(ip, nil, nil, nil)

	store.FetchGeneralLocation(context.Background())

	location, loading := store.Snapshot()
	require.True(t, location.Resolved())
	assert.Equal(t, 52.3068, *location.Latitude)
	assert.Equal(t, 4.9453, *location.Longitude)
	assert.Equal(t, "Amsterdam", *location.Name)
	assert.False(t, loading)
	assert.Empty(t, messages.Messages())
}

func TestFetchGeneralLocationFailureLeavesLocationUntouched(t *testing.T) {
	ip := &fakeIPGeolocator{location: models.NewLocation(52.3068, 4.9453, "Amsterdam")}
	store, messages := newTestLocationStore(ip, nil, nil, nil)

	// Establish a known-good location first.
	store.FetchGeneralLocation(context.Background())

	ip.err = &datasource.UpstreamError{API: "fake ip", Status: 400}
	store.FetchGeneralLocation(context.Background())

	location, loading := store.Snapshot()
	require.True(t, location.Resolved())
	assert.Equal(t, "Amsterdam", *location.Name)
	assert.False(t, loading)

	queued := messages.Messages()
	require.Len(t, queued, 1)
	assert.Equal(t, "Failed to get your location", queued[0].Text)
	assert.Equal(t, models.MessageColorError, queued[0].Color)
}

func TestFetchGeneralLocationDataErrorSameUserMessage(t *testing.T) {
	ip := &fakeIPGeolocator{err: &datasource.DataError{API: "fake ip", Reason: "no loc field"}}
	store, messages := newTestLocationStore(ip, nil, nil, nil)

	store.FetchGeneralLocation(context.Background())

	location, loading := store.Snapshot()
	assert.False(t, location.Resolved())
	assert.False(t, loading)

	queued := messages.Messages()
	require.Len(t, queued, 1)
	assert.Equal(t, "Failed to get your location", queued[0].Text)
}

func TestSearchLocationSuccess(t *testing.T) {
	search := &fakeGeocodingSearch{location: models.NewLocation(52.09083, 5.12222, "Utrecht")}
	store, messages := newTestLocationStore(nil, nil, search, nil)

	store.SearchLocation(context.Background(), "Utrecht")

	location, _ := store.Snapshot()
	require.True(t, location.Resolved())
	assert.Equal(t, "Utrecht", *location.Name)
	assert.Equal(t, 1, search.calls)
	assert.Empty(t, messages.Messages())
}

func TestSearchLocationFailure(t *testing.T) {
	search := &fakeGeocodingSearch{err: &datasource.DataError{API: "fake search", Reason: "no results"}}
	store, messages := newTestLocationStore(nil, nil, search, nil)

	store.SearchLocation(context.Background(), "Nowhereville")

	location, loading := store.Snapshot()
	assert.False(t, location.Resolved())
	assert.False(t, loading)

	queued := messages.Messages()
	require.Len(t, queued, 1)
	assert.Equal(t, "Failed to get your location", queued[0].Text)
}

func TestFetchUserLocationMergesDeviceCoordinates(t *testing.T) {
	reverse := &fakeReverseGeocoder{name: "Amsterdam"}
	device := &fakeDevice{
		supported:  true,
		permission: PermissionGranted,
		coords:     models.Coordinates{Latitude: 52.3068, Longitude: 4.9453},
	}
	store, messages := newTestLocationStore(nil, reverse, nil, device)

	store.FetchUserLocation(context.Background())

	location, loading := store.Snapshot()
	require.True(t, location.Resolved())
	assert.Equal(t, 52.3068, *location.Latitude)
	assert.Equal(t, 4.9453, *location.Longitude)
	assert.Equal(t, "Amsterdam", *location.Name)
	assert.False(t, loading)
	assert.Equal(t, 1, device.readCalls)
	assert.Empty(t, messages.Messages())
}

func TestFetchUserLocationUnsupportedDeviceIsNoOp(t *testing.T) {
	reverse := &fakeReverseGeocoder{name: "Amsterdam"}
	store, messages := newTestLocationStore(nil, reverse, nil, UnsupportedLocator())

	store.FetchUserLocation(context.Background())

	location, loading := store.Snapshot()
	assert.False(t, location.Resolved())
	assert.False(t, loading)
	assert.Zero(t, reverse.calls)
	assert.Empty(t, messages.Messages())
}

func TestFetchUserLocationDeniedPermissionIsNoOp(t *testing.T) {
	reverse := &fakeReverseGeocoder{name: "Amsterdam"}
	device := &fakeDevice{
		supported:  true,
		permission: PermissionDenied,
		coords:     models.Coordinates{Latitude: 52.3068, Longitude: 4.9453},
	}
	store, messages := newTestLocationStore(nil, reverse, nil, device)

	store.FetchUserLocation(context.Background())

	location, _ := store.Snapshot()
	assert.False(t, location.Resolved())
	assert.Zero(t, device.readCalls)
	assert.Zero(t, reverse.calls)
	assert.Empty(t, messages.Messages())
}

func TestFetchUserLocationUnresolvedFixIsNoOp(t *testing.T) {
	reverse := &fakeReverseGeocoder{name: "Amsterdam"}
	device := &fakeDevice{
		supported:  true,
		permission: PermissionGranted,
		coords:     models.Coordinates{Latitude: models.Unresolved, Longitude: models.Unresolved},
	}
	store, messages := newTestLocationStore(nil, reverse, nil, device)

	store.FetchUserLocation(context.Background())

	location, _ := store.Snapshot()
	assert.False(t, location.Resolved())
	assert.Equal(t, 1, device.readCalls)
	assert.Zero(t, reverse.calls)
	assert.Empty(t, messages.Messages())
}

func TestFetchUserLocationReverseGeocodeFailure(t *testing.T) {
	reverse := &fakeReverseGeocoder{err: errors.New("connection refused")}
	device := &fakeDevice{
		supported:  true,
		permission: PermissionGranted,
		coords:     models.Coordinates{Latitude: 52.3068, Longitude: 4.9453},
	}
	store, messages := newTestLocationStore(nil, reverse, nil, device)

	store.FetchUserLocation(context.Background())

	location, loading := store.Snapshot()
	assert.False(t, location.Resolved())
	assert.False(t, loading)

	queued := messages.Messages()
	require.Len(t, queued, 1)
	assert.Equal(t, "Failed to get your location", queued[0].Text)
}

func TestLocationStoreDropsStaleResults(t *testing.T) {
	slow := &fakeIPGeolocator{
		location: models.NewLocation(1, 1, "Stale"),
		release:  make(chan struct{}),
		started:  make(chan struct{}),
	}
	search := &fakeGeocodingSearch{location: models.NewLocation(52.09083, 5.12222, "Utrecht")}
	store, messages := newTestLocationStore(slow, nil, search, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		store.FetchGeneralLocation(context.Background())
	}()

	// Let the slow fetch start, then complete a newer one before it returns.
	<-slow.started
	store.SearchLocation(context.Background(), "Utrecht")

	close(slow.release)
	<-done

	location, loading := store.Snapshot()
	require.True(t, location.Resolved())
	assert.Equal(t, "Utrecht", *location.Name, "stale IP result must not overwrite the newer search result")
	assert.False(t, loading)
	assert.Empty(t, messages.Messages())
}

func TestLocationStoreSubscribeSignalsOnChange(t *testing.T) {
	ip := &fakeIPGeolocator{location: models.NewLocation(52.3068, 4.9453, "Amsterdam")}
	store, _ := newTestLocationStore(ip, nil, nil, nil)

	changes := store.Subscribe()
	store.FetchGeneralLocation(context.Background())

	select {
	case <-changes:
	case <-time.After(time.Second):
		t.Fatal("expected a change notification")
	}

	location, _ := store.Snapshot()
	assert.Equal(t, "Amsterdam", *location.Name)
}
