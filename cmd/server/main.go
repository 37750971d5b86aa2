// Package main is the entry point for the flight fare service.
//
//	@title						Flight Fare Service API
//	@version					1.0.0
//	@description				Searches VietJet Air and Vietnam Airlines fares, applies per-agent pricing, and forwards ticket delivery requests.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/hanvietair/flight-fare-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	// Import generated docs for swagger
	_ "github.com/hanvietair/flight-fare-service/docs"

	farehttp "github.com/hanvietair/flight-fare-service/internal/adapter/http"
	"github.com/hanvietair/flight-fare-service/internal/adapter/http/middleware"
	"github.com/hanvietair/flight-fare-service/internal/adapter/provider/vietjet"
	"github.com/hanvietair/flight-fare-service/internal/adapter/provider/vietnamair"
	"github.com/hanvietair/flight-fare-service/internal/adapter/store"
	"github.com/hanvietair/flight-fare-service/internal/adapter/ticketproxy"
	"github.com/hanvietair/flight-fare-service/internal/config"
	"github.com/hanvietair/flight-fare-service/internal/domain"
	"github.com/hanvietair/flight-fare-service/internal/infrastructure/logger"
	"github.com/hanvietair/flight-fare-service/internal/infrastructure/ratelimit"
	"github.com/hanvietair/flight-fare-service/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flight-fare-service",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	profileStore, cleanup := buildStore(cfg, log)
	defer cleanup()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log)

	handler := buildHandler(cfg, profileStore, log)
	farehttp.RegisterRoutes(e, handler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// buildStore selects the agent profile store. Redis is optional; without it
// profiles and search history live in memory and reset on restart.
func buildStore(cfg *config.Config, log *logger.Logger) (domain.ProfileStore, func()) {
	if !cfg.Redis.Enabled {
		log.Info().Msg("Using in-memory profile store")
		return store.NewMemoryStore(), func() {}
	}

	rs, err := store.NewRedisStore(store.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	log.Info().
		Str("host", cfg.Redis.Host).
		Str("port", cfg.Redis.Port).
		Msg("Connected to Redis profile store")

	return rs, func() {
		if err := rs.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing Redis connection")
		}
	}
}

// buildHandler wires the provider adapters, use cases, and HTTP handler.
func buildHandler(cfg *config.Config, profileStore domain.ProfileStore, log *logger.Logger) *farehttp.FareHandler {
	limiter := ratelimit.NewProviderLimiter(ratelimit.Config{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.BurstSize,
	})
	if cfg.RateLimit.VietJetRPS > 0 {
		limiter.SetProviderLimit(vietjet.ProviderName, cfg.RateLimit.VietJetRPS, cfg.RateLimit.BurstSize)
	}
	if cfg.RateLimit.VietnamAirRPS > 0 {
		limiter.SetProviderLimit(vietnamair.ProviderName, cfg.RateLimit.VietnamAirRPS, cfg.RateLimit.BurstSize)
	}

	registry := domain.NewProviderRegistry()
	registry.Register(vietjet.NewAdapter(vietjet.Config{
		BaseURL: cfg.Providers.VietJetURL,
		Limiter: limiter,
		Log:     log,
	}))
	registry.Register(vietnamair.NewAdapter(vietnamair.Config{
		BaseURL: cfg.Providers.VietnamAirURL,
		Limiter: limiter,
		Log:     log,
	}))

	searchUC := usecase.NewFareSearchUseCase(registry, profileStore, log, &usecase.Config{
		GlobalTimeout:   cfg.Timeouts.GlobalSearch,
		ProviderTimeout: cfg.Timeouts.PerProvider,
	})

	proxy := ticketproxy.NewClient(ticketproxy.Config{
		EmailURL:  cfg.Proxy.EmailURL,
		ImagesURL: cfg.Proxy.ImagesURL,
		Log:       log,
	})
	ticketUC := usecase.NewTicketUseCase(proxy, profileStore, log)

	return farehttp.NewFareHandler(searchUC, ticketUC, profileStore, log)
}

// gracefulShutdown blocks until an interrupt signal arrives, then drains the
// server within shutdownTimeout.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
