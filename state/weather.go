package state

import (
	"context"
	"log/slog"
	"sync"

	"weather-dashboard/datasource"
	"weather-dashboard/models"
)

const weatherErrorText = "Failed to fetch weather data"

// WeatherStore holds the latest normalized forecast data. All three records
// are nil until the first successful fetch and are replaced together; a
// failed fetch keeps the prior values and enqueues a fixed-text error
// message. Stale responses are dropped with the same request-token scheme as
// LocationStore.
type WeatherStore struct {
	source   datasource.ForecastSource
	messages *MessageQueue
	logger   *slog.Logger

	mutex    sync.Mutex
	current  *models.CurrentWeather
	daily    []models.DailyForecast
	hourly   []models.HourlyForecast
	pending  int
	sequence uint64

	notifier notifier
}

// NewWeatherStore creates a weather store. A nil logger falls back to
// slog.Default().
func NewWeatherStore(source datasource.ForecastSource, messages *MessageQueue, logger *slog.Logger) *WeatherStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &WeatherStore{
		source:   source,
		messages: messages,
		logger:   logger,
	}
}

// FetchWeather fetches and stores the forecast for the given coordinates.
func (s *WeatherStore) FetchWeather(ctx context.Context, latitude, longitude float64) {
	token := s.begin()
	defer s.end()

	bundle, err := s.source.FetchForecast(ctx, latitude, longitude)
	if err != nil {
		s.logger.Error("forecast fetch failed", "error", err, "latitude", latitude, "longitude", longitude)
		s.messages.AddError(weatherErrorText)
		return
	}
	s.apply(token, bundle)
}

// Snapshot returns the stored forecast records and whether a fetch is in
// flight. Current is nil until the first successful fetch.
func (s *WeatherStore) Snapshot() (*models.CurrentWeather, []models.DailyForecast, []models.HourlyForecast, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.current, s.daily, s.hourly, s.pending > 0
}

// Subscribe returns a channel signaled whenever the forecast records change.
func (s *WeatherStore) Subscribe() <-chan struct{} {
	return s.notifier.Subscribe()
}

func (s *WeatherStore) begin() uint64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.pending++
	s.sequence++
	return s.sequence
}

func (s *WeatherStore) end() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.pending--
}

func (s *WeatherStore) apply(token uint64, bundle models.ForecastBundle) {
	s.mutex.Lock()
	if token != s.sequence {
		s.mutex.Unlock()
		s.logger.Debug("dropping stale forecast result", "token", token, "latest", s.sequence)
		return
	}
	current := bundle.Current
	s.current = &current
	s.daily = bundle.Daily
	s.hourly = bundle.Hourly
	s.mutex.Unlock()

	s.notifier.Notify()
}
