package services

import (
	"context"
	"courier-route-service/internal/domain"
	"courier-route-service/internal/metrics"
	"courier-route-service/internal/platform/obs"
	"courier-route-service/internal/ports"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"
)

// PlanDeliveriesDeps groups the collaborators of PlanDeliveries.
// Cache is optional.
type PlanDeliveriesDeps struct {
	Map      ports.MapRepository
	Requests ports.DeliveryRequestRepository
	Couriers ports.CourierRepository
	Cache    ports.RouteCache
}

// PlanDeliveries loads the current map, requests and couriers and returns one
// RoutePlan per courier with assigned requests, ordered by courier id.
//
// Plans are cached by input fingerprint, so unchanged inputs skip the planner.
// Cache failures are logged and never fail the call.
func PlanDeliveries(ctx context.Context, deps PlanDeliveriesDeps) (_ []*domain.RoutePlan, err error) {
	defer obs.Time(ctx, "services.PlanDeliveries")(&err)

	var (
		segments []domain.Segment
		requests []domain.DeliveryRequest
		couriers []domain.Courier
	)

	// The three snapshots are independent; load them concurrently.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		s, err := deps.Map.ListSegments(egCtx)
		if err != nil {
			return fmt.Errorf("list segments: %w", err)
		}
		segments = s
		return nil
	})
	eg.Go(func() error {
		r, err := deps.Requests.ListDeliveryRequests(egCtx)
		if err != nil {
			return fmt.Errorf("list delivery requests: %w", err)
		}
		requests = r
		return nil
	})
	eg.Go(func() error {
		c, err := deps.Couriers.ListCouriers(egCtx)
		if err != nil {
			return fmt.Errorf("list couriers: %w", err)
		}
		couriers = c
		return nil
	})
	if err := eg.Wait(); err != nil {
		metrics.RoutePlans.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("plan deliveries: %w", err)
	}

	key := Fingerprint(segments, requests, couriers)

	routes, hit := lookupRoutes(ctx, deps.Cache, key)
	if hit {
		metrics.RoutePlans.WithLabelValues("cached").Inc()
	} else {
		start := time.Now()
		routes, err = PlanRoutes(segments, requests, couriers)
		metrics.RoutePlanDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			if IsPlanningRejection(err) {
				metrics.RoutePlans.WithLabelValues("rejected").Inc()
			} else {
				metrics.RoutePlans.WithLabelValues("failed").Inc()
			}
			return nil, fmt.Errorf("plan deliveries: %w", err)
		}
		metrics.RoutePlans.WithLabelValues("planned").Inc()

		if deps.Cache != nil {
			if err := deps.Cache.Put(ctx, key, routes); err != nil {
				log.Printf("route cache write failed: key=%s err=%v", key, err)
			}
		}
	}

	g := BuildGraph(segments)
	plans := make([]*domain.RoutePlan, 0, len(routes))
	for _, id := range routes.CourierIDs() {
		plans = append(plans, &domain.RoutePlan{
			CourierID:   id,
			Route:       routes[id],
			TotalLength: RouteLength(g, routes[id]),
		})
	}

	return plans, nil
}

func lookupRoutes(ctx context.Context, cache ports.RouteCache, key string) (domain.CourierRoutes, bool) {
	if cache == nil {
		return nil, false
	}

	routes, ok, err := cache.Get(ctx, key)
	switch {
	case err != nil:
		metrics.RouteCacheLookups.WithLabelValues("error").Inc()
		log.Printf("route cache read failed: key=%s err=%v", key, err)
		return nil, false
	case !ok:
		metrics.RouteCacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.RouteCacheLookups.WithLabelValues("hit").Inc()
	return routes, true
}

// IsPlanningRejection reports whether err comes from the planning inputs
// (missing requests, couriers, assignments or graph nodes) rather than from infrastructure.
func IsPlanningRejection(err error) bool {
	var gie *domain.GraphIncompleteError
	var pie *domain.PlannerInconsistencyError
	return errors.Is(err, domain.ErrNoDeliveryRequests) ||
		errors.Is(err, domain.ErrNoCouriers) ||
		errors.Is(err, domain.ErrNoAssignedCourier) ||
		errors.As(err, &gie) ||
		errors.As(err, &pie)
}
