package main

import (
	"context"
	"courier-route-service/internal/adapters/cache"
	"courier-route-service/internal/adapters/repositories"
	"courier-route-service/internal/api"
	"courier-route-service/internal/config"
	"courier-route-service/internal/platform/db"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

// main is the application composition root.
// It wires concrete adapters (Postgres or memory, Redis or SQL cache) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, cleanup, err := buildDependencies(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	router := api.NewRouter(deps)

	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown failed: err=%v", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	log.Println("Server stopped")
}

// buildDependencies picks Postgres when DATABASE_URL is set and an in-memory
// store seeded from SEED_PATH otherwise. The route cache is Redis when
// REDIS_URL is set, the Postgres route_cache table when only the database is
// configured, and disabled otherwise.
func buildDependencies(ctx context.Context, cfg *config.Config) (api.Dependencies, func(), error) {
	deps := api.Dependencies{
		RateLimit: rate.Limit(cfg.RateLimitRPS),
		Burst:     cfg.RateLimitBurst,
	}
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return deps, cleanup, err
		}
		closers = append(closers, func() { _ = conn.Close() })

		if err := repositories.InitSchema(ctx, conn); err != nil {
			cleanup()
			return deps, func() {}, fmt.Errorf("build dependencies: %w", err)
		}

		deps.Map = repositories.NewPostgresMapRepository(conn)
		deps.Requests = repositories.NewPostgresDeliveryRequestRepository(conn)
		deps.Couriers = repositories.NewPostgresCourierRepository(conn)
		deps.Cache = cache.NewSQLRouteCache(conn)
		log.Println("Using Postgres repositories")
	} else {
		seed, err := repositories.LoadSeed(cfg.SeedPath)
		if err != nil {
			return deps, cleanup, fmt.Errorf("build dependencies: %w", err)
		}
		store := repositories.NewMemory()
		repositories.SeedMemory(store, seed)

		deps.Map, deps.Requests, deps.Couriers = store, store, store
		log.Printf("Using in-memory repositories seed=%s", cfg.SeedPath)
	}

	if strings.TrimSpace(cfg.RedisURL) != "" {
		rc, err := cache.NewRedisRouteCacheFromURL(ctx, cfg.RedisURL, cfg.RouteCacheTTL)
		if err != nil {
			cleanup()
			return deps, func() {}, fmt.Errorf("build dependencies: %w", err)
		}
		closers = append(closers, func() { _ = rc.Close() })
		deps.Cache = rc
		log.Printf("Using Redis route cache ttl=%s", cfg.RouteCacheTTL)
	}

	return deps, cleanup, nil
}
