package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"weather-dashboard/models"
	"weather-dashboard/state"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// fetchTimeout bounds every background fetch triggered through the API.
const fetchTimeout = 90 * time.Second

// Server exposes the dashboard state over HTTP. It is glue only: handlers
// read store snapshots and trigger orchestrator operations, nothing else.
// Trigger endpoints return 202 and run the fetch in the background; the
// front end polls the snapshot endpoints, mirroring how a reactive UI would
// consume the stores.
type Server struct {
	locations *state.LocationStore
	weather   *state.WeatherStore
	messages  *state.MessageQueue
	logger    *slog.Logger
	server    *http.Server
}

// NewServer creates the API server listening on addr.
func NewServer(addr string, locations *state.LocationStore, weather *state.WeatherStore, messages *state.MessageQueue, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		locations: locations,
		weather:   weather,
		messages:  messages,
		logger:    logger,
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Get("/location", s.handleGetLocation)
		r.Post("/location/refresh", s.handleRefreshLocation)
		r.Post("/location/device", s.handleDeviceLocation)
		r.Post("/location/search", s.handleSearchLocation)

		r.Get("/weather", s.handleGetWeather)
		r.Post("/weather/refresh", s.handleRefreshWeather)

		r.Get("/messages", s.handleGetMessages)
		r.Delete("/messages/{id}", s.handleDismissMessage)
	})

	s.server = &http.Server{
		Addr:    addr,
		Handler: router,
	}
	return s
}

// Start begins serving and blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("starting API server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler returns the HTTP handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGetLocation(w http.ResponseWriter, r *http.Request) {
	location, loading := s.locations.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"location": location,
		"loading":  loading,
	})
}

func (s *Server) handleRefreshLocation(w http.ResponseWriter, r *http.Request) {
	go s.withTimeout(s.locations.FetchGeneralLocation)
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleDeviceLocation(w http.ResponseWriter, r *http.Request) {
	go s.withTimeout(s.locations.FetchUserLocation)
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleSearchLocation(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query is required"})
		return
	}

	go s.withTimeout(func(ctx context.Context) {
		s.locations.SearchLocation(ctx, body.Query)
	})
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleGetWeather(w http.ResponseWriter, r *http.Request) {
	current, daily, hourly, loading := s.weather.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"current": current,
		"daily":   daily,
		"hourly":  hourly,
		"loading": loading,
	})
}

func (s *Server) handleRefreshWeather(w http.ResponseWriter, r *http.Request) {
	location, _ := s.locations.Snapshot()
	if !location.Resolved() {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "no location resolved yet"})
		return
	}

	latitude, longitude := *location.Latitude, *location.Longitude
	go s.withTimeout(func(ctx context.Context) {
		s.weather.FetchWeather(ctx, latitude, longitude)
	})
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleGetMessages(w http.ResponseWriter, r *http.Request) {
	messages := s.messages.Messages()
	if messages == nil {
		messages = []models.Message{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

func (s *Server) handleDismissMessage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid message id"})
		return
	}
	if !s.messages.Dismiss(id) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no such message"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// withTimeout runs a store operation with a bounded background context.
func (s *Server) withTimeout(op func(context.Context)) {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()
	op(ctx)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
