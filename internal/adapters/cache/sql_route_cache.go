package cache

import (
	"context"
	"courier-route-service/internal/domain"
	"courier-route-service/internal/platform/obs"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// SQLRouteCache is a SQL-backed cache for planned courier routes, keyed by
// input fingerprint. Entries are never expired; a new fingerprint simply
// misses.
type SQLRouteCache struct {
	DB *sql.DB
}

func NewSQLRouteCache(db *sql.DB) *SQLRouteCache {
	return &SQLRouteCache{DB: db}
}

func (s *SQLRouteCache) Get(ctx context.Context, key string) (_ domain.CourierRoutes, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.sql.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get route cache: key must not be empty")
	}

	var raw []byte
	err = s.DB.QueryRowContext(ctx, `SELECT routes FROM route_cache WHERE fingerprint = $1;`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	var routes domain.CourierRoutes
	if err := json.Unmarshal(raw, &routes); err != nil {
		return nil, false, fmt.Errorf("get route cache: decode key=%s: %w", key, err)
	}

	return routes, true, nil
}

func (s *SQLRouteCache) Put(ctx context.Context, key string, routes domain.CourierRoutes) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert route cache: key must not be empty")
	}

	raw, err := json.Marshal(routes)
	if err != nil {
		return fmt.Errorf("insert route cache: encode: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO route_cache (fingerprint, routes)
	VALUES ($1, $2)
	ON CONFLICT (fingerprint) DO UPDATE
	SET routes = EXCLUDED.routes,
		created_at = now();
	`, key, raw)
	if err != nil {
		return fmt.Errorf("insert route cache key=%s: %w", key, err)
	}

	return nil
}
