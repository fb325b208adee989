package repositories

import (
	"context"
	"courier-route-service/internal/domain"
	"courier-route-service/internal/ports"
	"database/sql"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the DeliveryRequestRepository port.
type PostgresDeliveryRequestRepository struct{ DB *sql.DB }

func NewPostgresDeliveryRequestRepository(db *sql.DB) *PostgresDeliveryRequestRepository {
	return &PostgresDeliveryRequestRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDeliveryRequest(row rowScanner) (domain.DeliveryRequest, error) {
	var r domain.DeliveryRequest
	var pickup, delivery, warehouse int64
	var courierID sql.NullInt64
	if err := row.Scan(&r.ID, &pickup, &delivery, &warehouse, &courierID); err != nil {
		return domain.DeliveryRequest{}, err
	}
	r.Pickup = domain.NodeID(pickup)
	r.Delivery = domain.NodeID(delivery)
	r.Warehouse = domain.NodeID(warehouse)
	if courierID.Valid {
		id := courierID.Int64
		r.CourierID = &id
	}
	return r, nil
}

func (p *PostgresDeliveryRequestRepository) ListDeliveryRequests(ctx context.Context) ([]domain.DeliveryRequest, error) {
	if p.DB == nil {
		return nil, errors.New("postgres delivery request repository: DB is nil")
	}

	query := `
	SELECT
		request_id,
		pickup,
		delivery,
		warehouse,
		courier_id
	FROM delivery_request
	ORDER BY request_id;
	`
	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list delivery requests: query delivery_request table: %w", err)
	}
	defer rows.Close()

	requests := make([]domain.DeliveryRequest, 0, 64)
	for rows.Next() {
		r, err := scanDeliveryRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("list delivery requests: scan row: %w", err)
		}
		requests = append(requests, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list delivery requests: row iteration: %w", err)
	}

	return requests, nil
}

func (p *PostgresDeliveryRequestRepository) GetDeliveryRequest(ctx context.Context, id int64) (domain.DeliveryRequest, error) {
	if p.DB == nil {
		return domain.DeliveryRequest{}, errors.New("postgres delivery request repository: DB is nil")
	}

	query := `
	SELECT request_id, pickup, delivery, warehouse, courier_id
	FROM delivery_request
	WHERE request_id = $1;
	`
	r, err := scanDeliveryRequest(p.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DeliveryRequest{}, fmt.Errorf("delivery request %d: %w", id, ports.ErrNotFound)
	}
	if err != nil {
		return domain.DeliveryRequest{}, fmt.Errorf("get delivery request %d: %w", id, err)
	}

	return r, nil
}

func (p *PostgresDeliveryRequestRepository) AssignCourier(ctx context.Context, requestID, courierID int64) (domain.DeliveryRequest, error) {
	if p.DB == nil {
		return domain.DeliveryRequest{}, errors.New("postgres delivery request repository: DB is nil")
	}

	query := `
	UPDATE delivery_request
	SET courier_id = $2
	WHERE request_id = $1
	RETURNING request_id, pickup, delivery, warehouse, courier_id;
	`
	r, err := scanDeliveryRequest(p.DB.QueryRowContext(ctx, query, requestID, courierID))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DeliveryRequest{}, fmt.Errorf("delivery request %d: %w", requestID, ports.ErrNotFound)
	}
	if err != nil {
		return domain.DeliveryRequest{}, fmt.Errorf("assign courier to request %d: %w", requestID, err)
	}

	return r, nil
}
