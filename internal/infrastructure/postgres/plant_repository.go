package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/logitrack-api/internal/domain"
	"github.com/jhoicas/logitrack-api/internal/domain/entity"
	"github.com/jhoicas/logitrack-api/internal/domain/repository"
)

var _ repository.PlantRepository = (*PlantRepo)(nil)

// PlantRepo implementación sobre PostgreSQL (usable con pool o tx).
type PlantRepo struct {
	q Querier
}

// NewPlantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPlantRepository(q Querier) *PlantRepo {
	return &PlantRepo{q: q}
}

const plantColumns = `id, name, capacity, current_stock, location, status, created_at`

// Create persiste una planta.
func (r *PlantRepo) Create(p *entity.Plant) error {
	query := `
		INSERT INTO plants (id, name, capacity, current_stock, location, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Capacity, p.CurrentStock, p.Location, p.Status, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert plant: %w", err)
	}
	return nil
}

// GetByID obtiene una planta por ID.
func (r *PlantRepo) GetByID(id string) (*entity.Plant, error) {
	return r.scanOne(`SELECT `+plantColumns+` FROM plants WHERE id = $1`, id)
}

// GetForUpdate obtiene la planta y bloquea la fila (SELECT FOR UPDATE). Solo
// tiene sentido dentro de una transacción.
func (r *PlantRepo) GetForUpdate(id string) (*entity.Plant, error) {
	return r.scanOne(`SELECT `+plantColumns+` FROM plants WHERE id = $1 FOR UPDATE`, id)
}

// List lista todas las plantas.
func (r *PlantRepo) List() ([]*entity.Plant, error) {
	query := `SELECT ` + plantColumns + ` FROM plants ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Plant
	for rows.Next() {
		var p entity.Plant
		if err := rows.Scan(&p.ID, &p.Name, &p.Capacity, &p.CurrentStock, &p.Location, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan plant: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// UpdateStock escribe current_stock. Única escritura del contador; el caller ya
// validó cota superior e inferior bajo el lock de GetForUpdate.
func (r *PlantRepo) UpdateStock(id string, stock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE plants SET current_stock = $2 WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("update plant stock: %w", err)
	}
	return nil
}

// Delete elimina una planta. La FK con RESTRICT convierte una baja referenciada
// en ErrConflict aunque el caller no haya contado referencias.
func (r *PlantRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM plants WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete plant: %w", err)
	}
	return nil
}

func (r *PlantRepo) scanOne(query string, arg any) (*entity.Plant, error) {
	var p entity.Plant
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Name, &p.Capacity, &p.CurrentStock, &p.Location, &p.Status, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plant: %w", err)
	}
	return &p, nil
}
