package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/logitrack-api/internal/domain/entity"
	"github.com/jhoicas/logitrack-api/internal/domain/repository"
)

var _ repository.RakeRepository = (*RakeRepo)(nil)

// RakeRepo implementación sobre PostgreSQL (usable con pool o tx).
type RakeRepo struct {
	q Querier
}

// NewRakeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRakeRepository(q Querier) *RakeRepo {
	return &RakeRepo{q: q}
}

// Create persiste una formación ferroviaria.
func (r *RakeRepo) Create(rk *entity.Rake) error {
	query := `
		INSERT INTO rakes (id, name, capacity, status, current_location, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		rk.ID, rk.Name, rk.Capacity, rk.Status, rk.CurrentLocation, rk.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert rake: %w", err)
	}
	return nil
}

// GetByID obtiene una formación por ID.
func (r *RakeRepo) GetByID(id string) (*entity.Rake, error) {
	query := `
		SELECT id, name, capacity, status, current_location, created_at
		FROM rakes WHERE id = $1`
	var rk entity.Rake
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rk.ID, &rk.Name, &rk.Capacity, &rk.Status, &rk.CurrentLocation, &rk.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rake: %w", err)
	}
	return &rk, nil
}

// List lista todas las formaciones.
func (r *RakeRepo) List() ([]*entity.Rake, error) {
	query := `
		SELECT id, name, capacity, status, current_location, created_at
		FROM rakes ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list rakes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Rake
	for rows.Next() {
		var rk entity.Rake
		if err := rows.Scan(&rk.ID, &rk.Name, &rk.Capacity, &rk.Status, &rk.CurrentLocation, &rk.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan rake: %w", err)
		}
		list = append(list, &rk)
	}
	return list, rows.Err()
}
