package api

import (
	"courier-route-service/internal/api/handlers"
	"courier-route-service/internal/metrics"
	"courier-route-service/internal/ports"
	"courier-route-service/internal/services"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// Dependencies collects the ports the HTTP layer needs. Cache may be nil.
type Dependencies struct {
	Map      ports.MapRepository
	Requests ports.DeliveryRequestRepository
	Couriers ports.CourierRepository
	Cache    ports.RouteCache

	RateLimit rate.Limit
	Burst     int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Dependencies) http.Handler {
	metrics.RegisterDefault()
	mux := http.NewServeMux()

	mapHandler := &handlers.MapHandler{Map: deps.Map}
	pathHandler := &handlers.PathHandler{Map: deps.Map}
	requestHandler := &handlers.RequestHandler{Requests: deps.Requests, Couriers: deps.Couriers}
	courierHandler := &handlers.CourierHandler{Couriers: deps.Couriers}
	planHandler := &handlers.PlanHandler{
		Deps: services.PlanDeliveriesDeps{
			Map:      deps.Map,
			Requests: deps.Requests,
			Couriers: deps.Couriers,
			Cache:    deps.Cache,
		},
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/nodes", mapHandler.Nodes)
	mux.HandleFunc("/segments", mapHandler.Segments)
	mux.HandleFunc("/paths", pathHandler.Get)
	mux.HandleFunc("/requests", requestHandler.List)
	mux.HandleFunc("/requests/{id}/courier", requestHandler.Assign)
	mux.HandleFunc("/couriers", courierHandler.Collection)
	mux.HandleFunc("/plans", planHandler.Plan)

	limit, burst := deps.RateLimit, deps.Burst
	if limit <= 0 {
		limit = rate.Inf
	}
	if burst <= 0 {
		burst = 1
	}
	limiter := rate.NewLimiter(limit, burst)

	return requestIDMiddleware(loggingMiddleware(rateLimitMiddleware(limiter, mux)))
}
