package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-dashboard/api"
	"weather-dashboard/datasource"
	"weather-dashboard/state"

	"github.com/joho/godotenv"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "error", err)
	}

	// Parse command line arguments
	addr := flag.String("addr", ":8080", "Address for the API server to listen on")
	configFile := flag.String("config", "config.json", "Path to configuration file")
	enableRateLimiting := flag.Bool("rate-limit", true, "Enable geocoding API rate limiting")
	flag.Parse()

	// Load configuration
	config, err := datasource.LoadConfig(*configFile)
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Create the upstream providers
	ipGeolocator := datasource.NewIPInfoProvider(config)
	forecastSource := datasource.NewOpenMeteoForecastProvider(config)

	var reverseGeocoder datasource.ReverseGeocoder = datasource.NewNominatimProvider(config)
	var geocodingSearch datasource.GeocodingSearch = datasource.NewOpenMeteoGeocodingProvider(config)

	// Apply rate limiting if enabled
	if *enableRateLimiting {
		// Nominatim's usage policy allows 1 request per second, no bursts
		reverseGeocoder = datasource.NewRateLimitedReverseGeocoder(reverseGeocoder, 1.0, 1)
		// Open-Meteo is more generous; stay well under its fair-use ceiling
		geocodingSearch = datasource.NewRateLimitedGeocodingSearch(geocodingSearch, 5.0, 5)
		logger.Info("applied rate limiting to geocoding providers")
	}

	// Create the stores. There is no device geolocation hardware on a
	// headless host, so the user-location strategy is a no-op here.
	messages := state.NewMessageQueue()
	locations := state.NewLocationStore(
		ipGeolocator,
		reverseGeocoder,
		geocodingSearch,
		state.UnsupportedLocator(),
		messages,
		logger,
	)
	weather := state.NewWeatherStore(forecastSource, messages, logger)

	// Resolve an initial location and forecast on startup, the way the
	// dashboard does on first load: IP strategy, then weather for the
	// resolved coordinates.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		locations.FetchGeneralLocation(ctx)
		if location, _ := locations.Snapshot(); location.Resolved() {
			weather.FetchWeather(ctx, *location.Latitude, *location.Longitude)
		}
	}()

	// Create and start the API server
	server := api.NewServer(*addr, locations, weather, messages, logger)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
		}
	}()

	// Wait for shutdown signal
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-shutdownChan
	logger.Info("shutting down", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}

	logger.Info("shutdown complete")
}
