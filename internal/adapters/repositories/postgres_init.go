package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres database schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createNodeQuery := `
	CREATE TABLE IF NOT EXISTS node (
		node_id BIGINT PRIMARY KEY,
		latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		longitude DOUBLE PRECISION NOT NULL DEFAULT 0
	);
	`

	createSegmentQuery := `
	CREATE TABLE IF NOT EXISTS segment (
		segment_id BIGSERIAL PRIMARY KEY,
		origin BIGINT NOT NULL,
		destination BIGINT NOT NULL,
		length DOUBLE PRECISION NOT NULL CHECK (length >= 0),
		name TEXT NOT NULL DEFAULT ''
	);
	`

	createCourierQuery := `
	CREATE TABLE IF NOT EXISTS courier (
		courier_id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL
	);
	`

	createRequestQuery := `
	CREATE TABLE IF NOT EXISTS delivery_request (
		request_id BIGSERIAL PRIMARY KEY,
		pickup BIGINT NOT NULL,
		delivery BIGINT NOT NULL,
		warehouse BIGINT NOT NULL,
		courier_id BIGINT REFERENCES courier(courier_id)
	);
	`

	createRouteCacheQuery := `
	CREATE TABLE IF NOT EXISTS route_cache (
		fingerprint TEXT PRIMARY KEY,
		routes JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_delivery_request_courier
	ON delivery_request(courier_id);
	`

	statements := []string{
		createNodeQuery,
		createSegmentQuery,
		createCourierQuery,
		createRequestQuery,
		createRouteCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// SeedPostgres replaces the map, couriers and requests with the seed contents.
func SeedPostgres(ctx context.Context, db *sql.DB, seed *Seed) error {
	nodes, segments, requests, couriers := seed.Domain()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed postgres: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `TRUNCATE delivery_request, courier, segment, node RESTART IDENTITY;`); err != nil {
		return fmt.Errorf("seed postgres: truncate: %w", err)
	}

	for _, n := range nodes {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO node (node_id, latitude, longitude) VALUES ($1, $2, $3);`,
			int64(n.ID), n.Position.Lat, n.Position.Lon)
		if err != nil {
			return fmt.Errorf("seed postgres: insert node_id=%d: %w", n.ID, err)
		}
	}

	for i, s := range segments {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO segment (origin, destination, length, name) VALUES ($1, $2, $3, $4);`,
			int64(s.Origin), int64(s.Destination), s.Length, s.Name)
		if err != nil {
			return fmt.Errorf("seed postgres: insert segment #%d: %w", i+1, err)
		}
	}

	for _, c := range couriers {
		if c.ID > 0 {
			_, err = tx.ExecContext(ctx, `INSERT INTO courier (courier_id, name) VALUES ($1, $2);`, c.ID, c.Name)
		} else {
			_, err = tx.ExecContext(ctx, `INSERT INTO courier (name) VALUES ($1);`, c.Name)
		}
		if err != nil {
			return fmt.Errorf("seed postgres: insert courier %q: %w", c.Name, err)
		}
	}
	// Explicit ids leave the sequence behind.
	_, err = tx.ExecContext(ctx,
		`SELECT setval(pg_get_serial_sequence('courier', 'courier_id'), COALESCE(MAX(courier_id), 0) + 1, false) FROM courier;`)
	if err != nil {
		return fmt.Errorf("seed postgres: sync courier sequence: %w", err)
	}

	for i, r := range requests {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO delivery_request (pickup, delivery, warehouse, courier_id) VALUES ($1, $2, $3, $4);`,
			int64(r.Pickup), int64(r.Delivery), int64(r.Warehouse), r.CourierID)
		if err != nil {
			return fmt.Errorf("seed postgres: insert request #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed postgres: commit tx: %w", err)
	}

	return nil
}
