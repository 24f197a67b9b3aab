package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/reviewpulse/internal/adapter/httpserver"
	"github.com/pscheid92/reviewpulse/internal/adapter/memory"
	"github.com/pscheid92/reviewpulse/internal/adapter/metrics"
	"github.com/pscheid92/reviewpulse/internal/adapter/redis"
	"github.com/pscheid92/reviewpulse/internal/app"
	"github.com/pscheid92/reviewpulse/internal/domain"
	"github.com/pscheid92/reviewpulse/internal/platform/config"
	"github.com/pscheid92/reviewpulse/internal/platform/logging"
	"github.com/pscheid92/reviewpulse/internal/platform/version"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
)

const redisConnectTimeout = 10 * time.Second

type tallyBackend struct {
	store        domain.TallyStore
	healthChecks []httpserver.HealthCheck
	close        func()
}

func runGracefulShutdown(srv *httpserver.Server, timeout time.Duration) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupRedis(cfg *config.Config, redisMetrics *metrics.RedisMetrics) *goredis.Client {
	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	client, err := redis.NewClient(ctx, cfg.RedisURL,
		redis.NewMetricsHook(redisMetrics),
		redis.NewCircuitBreakerHook(redisMetrics),
	)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	return client
}

func setupTallyStore(cfg *config.Config, reg prometheus.Registerer) tallyBackend {
	if cfg.RedisURL == "" {
		slog.Info("REDIS_URL not set, keeping tallies in memory")
		return tallyBackend{store: memory.NewTallyStore(), close: func() {}}
	}

	client := setupRedis(cfg, metrics.NewRedisMetrics(reg))
	store := redis.NewTallyStore(client)
	return tallyBackend{
		store:        store,
		healthChecks: []httpserver.HealthCheck{{Name: "redis", Check: store.Ping}},
		close:        func() { _ = client.Close() },
	}
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port, "version", version.Version)

	registry := metrics.NewRegistry()
	analysisMetrics := metrics.NewAnalysisMetrics(registry)

	tally := setupTallyStore(cfg, registry)
	defer tally.close()

	appSvc := app.NewService(tally.store, analysisMetrics)

	srv, srvErr := httpserver.NewServer(cfg, appSvc, registry, clock, tally.healthChecks)
	if srvErr != nil {
		slog.Error("Failed to create server", "error", srvErr)
		os.Exit(1)
	}

	done := runGracefulShutdown(srv, cfg.ShutdownTimeout)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
