package repositories

import (
	"context"
	"courier-route-service/internal/domain"
	"database/sql"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the MapRepository port.
type PostgresMapRepository struct{ DB *sql.DB }

func NewPostgresMapRepository(db *sql.DB) *PostgresMapRepository {
	return &PostgresMapRepository{DB: db}
}

func (p *PostgresMapRepository) ListNodes(ctx context.Context) ([]domain.Node, error) {
	if p.DB == nil {
		return nil, errors.New("postgres map repository: DB is nil")
	}

	query := `
	SELECT
		node_id,
		latitude,
		longitude
	FROM node
	ORDER BY node_id;
	`
	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list nodes: query node table: %w", err)
	}
	defer rows.Close()

	nodes := make([]domain.Node, 0, 64)
	for rows.Next() {
		var id int64
		var lat, lon float64
		if err := rows.Scan(&id, &lat, &lon); err != nil {
			return nil, fmt.Errorf("list nodes: scan row: %w", err)
		}
		nodes = append(nodes, domain.Node{ID: domain.NodeID(id), Position: domain.Coordinates{Lat: lat, Lon: lon}})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list nodes: row iteration: %w", err)
	}

	return nodes, nil
}

// ListSegments returns segments in insertion order so parallel edges
// resolve the same way on every load.
func (p *PostgresMapRepository) ListSegments(ctx context.Context) ([]domain.Segment, error) {
	if p.DB == nil {
		return nil, errors.New("postgres map repository: DB is nil")
	}

	query := `
	SELECT
		origin,
		destination,
		length,
		name
	FROM segment
	ORDER BY segment_id;
	`
	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list segments: query segment table: %w", err)
	}
	defer rows.Close()

	segments := make([]domain.Segment, 0, 128)
	for rows.Next() {
		var origin, destination int64
		var s domain.Segment
		if err := rows.Scan(&origin, &destination, &s.Length, &s.Name); err != nil {
			return nil, fmt.Errorf("list segments: scan row: %w", err)
		}
		s.Origin = domain.NodeID(origin)
		s.Destination = domain.NodeID(destination)
		segments = append(segments, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list segments: row iteration: %w", err)
	}

	return segments, nil
}
