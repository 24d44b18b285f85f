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

var _ repository.PortRepository = (*PortRepo)(nil)

// PortRepo implementación sobre PostgreSQL (usable con pool o tx).
type PortRepo struct {
	q Querier
}

// NewPortRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPortRepository(q Querier) *PortRepo {
	return &PortRepo{q: q}
}

const portColumns = `id, name, capacity, current_stock, location, status, created_at`

// Create persiste un puerto.
func (r *PortRepo) Create(p *entity.Port) error {
	query := `
		INSERT INTO ports (id, name, capacity, current_stock, location, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Capacity, p.CurrentStock, p.Location, p.Status, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert port: %w", err)
	}
	return nil
}

// GetByID obtiene un puerto por ID.
func (r *PortRepo) GetByID(id string) (*entity.Port, error) {
	return r.scanOne(`SELECT `+portColumns+` FROM ports WHERE id = $1`, id)
}

// GetForUpdate obtiene el puerto y bloquea la fila (SELECT FOR UPDATE). Solo
// tiene sentido dentro de una transacción.
func (r *PortRepo) GetForUpdate(id string) (*entity.Port, error) {
	return r.scanOne(`SELECT `+portColumns+` FROM ports WHERE id = $1 FOR UPDATE`, id)
}

// List lista todos los puertos.
func (r *PortRepo) List() ([]*entity.Port, error) {
	query := `SELECT ` + portColumns + ` FROM ports ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list ports: %w", err)
	}
	defer rows.Close()
	var list []*entity.Port
	for rows.Next() {
		var p entity.Port
		if err := rows.Scan(&p.ID, &p.Name, &p.Capacity, &p.CurrentStock, &p.Location, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan port: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// UpdateStock escribe current_stock. Única escritura del contador; el caller ya
// validó cota superior e inferior bajo el lock de GetForUpdate.
func (r *PortRepo) UpdateStock(id string, stock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE ports SET current_stock = $2 WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("update port stock: %w", err)
	}
	return nil
}

// Delete elimina un puerto. La FK con RESTRICT convierte una baja referenciada
// en ErrConflict aunque el caller no haya contado referencias.
func (r *PortRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ports WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete port: %w", err)
	}
	return nil
}

func (r *PortRepo) scanOne(query string, arg any) (*entity.Port, error) {
	var p entity.Port
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Name, &p.Capacity, &p.CurrentStock, &p.Location, &p.Status, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get port: %w", err)
	}
	return &p, nil
}
