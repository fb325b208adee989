package repositories

import (
	"context"
	"courier-route-service/internal/domain"
	"courier-route-service/internal/ports"
	"database/sql"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the CourierRepository port.
type PostgresCourierRepository struct{ DB *sql.DB }

func NewPostgresCourierRepository(db *sql.DB) *PostgresCourierRepository {
	return &PostgresCourierRepository{DB: db}
}

func (p *PostgresCourierRepository) ListCouriers(ctx context.Context) ([]domain.Courier, error) {
	if p.DB == nil {
		return nil, errors.New("postgres courier repository: DB is nil")
	}

	rows, err := p.DB.QueryContext(ctx, `SELECT courier_id, name FROM courier ORDER BY courier_id;`)
	if err != nil {
		return nil, fmt.Errorf("list couriers: query courier table: %w", err)
	}
	defer rows.Close()

	couriers := make([]domain.Courier, 0, 16)
	for rows.Next() {
		var c domain.Courier
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("list couriers: scan row: %w", err)
		}
		couriers = append(couriers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list couriers: row iteration: %w", err)
	}

	return couriers, nil
}

func (p *PostgresCourierRepository) GetCourier(ctx context.Context, id int64) (domain.Courier, error) {
	if p.DB == nil {
		return domain.Courier{}, errors.New("postgres courier repository: DB is nil")
	}

	var c domain.Courier
	err := p.DB.QueryRowContext(ctx, `SELECT courier_id, name FROM courier WHERE courier_id = $1;`, id).Scan(&c.ID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Courier{}, fmt.Errorf("courier %d: %w", id, ports.ErrNotFound)
	}
	if err != nil {
		return domain.Courier{}, fmt.Errorf("get courier %d: %w", id, err)
	}

	return c, nil
}

// CreateCourier inserts a courier. A blank name is replaced by "Courier N"
// where N is the new courier's id.
func (p *PostgresCourierRepository) CreateCourier(ctx context.Context, name string) (domain.Courier, error) {
	if p.DB == nil {
		return domain.Courier{}, errors.New("postgres courier repository: DB is nil")
	}

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return domain.Courier{}, fmt.Errorf("create courier: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var id int64
	if err := tx.QueryRowContext(ctx, `INSERT INTO courier (name) VALUES ($1) RETURNING courier_id;`, name).Scan(&id); err != nil {
		return domain.Courier{}, fmt.Errorf("create courier: insert: %w", err)
	}

	c := domain.NewCourier(id, name, int(id))
	if c.Name != name {
		if _, err := tx.ExecContext(ctx, `UPDATE courier SET name = $2 WHERE courier_id = $1;`, id, c.Name); err != nil {
			return domain.Courier{}, fmt.Errorf("create courier: set default name: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.Courier{}, fmt.Errorf("create courier: commit tx: %w", err)
	}

	return c, nil
}
