package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/logitrack-api/internal/domain/entity"
	"github.com/jhoicas/logitrack-api/internal/domain/repository"
)

var _ repository.VesselRepository = (*VesselRepo)(nil)

// VesselRepo implementación sobre PostgreSQL (usable con pool o tx).
type VesselRepo struct {
	q Querier
}

// NewVesselRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVesselRepository(q Querier) *VesselRepo {
	return &VesselRepo{q: q}
}

// Create persiste un buque.
func (r *VesselRepo) Create(v *entity.Vessel) error {
	query := `
		INSERT INTO vessels (id, name, capacity, status, current_location, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Name, v.Capacity, v.Status, v.CurrentLocation, v.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vessel: %w", err)
	}
	return nil
}

// GetByID obtiene un buque por ID.
func (r *VesselRepo) GetByID(id string) (*entity.Vessel, error) {
	query := `
		SELECT id, name, capacity, status, current_location, created_at
		FROM vessels WHERE id = $1`
	var v entity.Vessel
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.Name, &v.Capacity, &v.Status, &v.CurrentLocation, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vessel: %w", err)
	}
	return &v, nil
}

// List lista todos los buques.
func (r *VesselRepo) List() ([]*entity.Vessel, error) {
	query := `
		SELECT id, name, capacity, status, current_location, created_at
		FROM vessels ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list vessels: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vessel
	for rows.Next() {
		var v entity.Vessel
		if err := rows.Scan(&v.ID, &v.Name, &v.Capacity, &v.Status, &v.CurrentLocation, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vessel: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
