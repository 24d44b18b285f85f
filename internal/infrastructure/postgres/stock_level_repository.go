package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/logitrack-api/internal/domain/entity"
	"github.com/jhoicas/logitrack-api/internal/domain/repository"
)

var _ repository.StockLevelRepository = (*StockLevelRepo)(nil)

// StockLevelRepo historial de fotos de stock sobre PostgreSQL.
type StockLevelRepo struct {
	q Querier
}

func NewStockLevelRepository(q Querier) *StockLevelRepo {
	return &StockLevelRepo{q: q}
}

// Create inserta una foto. Se llama dentro de la tx que mutó el stock.
func (r *StockLevelRepo) Create(s *entity.StockSnapshot) error {
	query := `
		INSERT INTO stock_levels (id, port_id, plant_id, stock_level, timestamp)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.PortID, s.PlantID, s.StockLevel, s.Timestamp)
	if err != nil {
		return fmt.Errorf("insert stock snapshot: %w", err)
	}
	return nil
}

// ListRecent devuelve las fotos más recientes primero.
func (r *StockLevelRepo) ListRecent(limit int) ([]*entity.StockSnapshot, error) {
	query := `
		SELECT id, port_id, plant_id, stock_level, timestamp
		FROM stock_levels
		ORDER BY timestamp DESC LIMIT $1`
	return r.list(query, limit)
}

// ListAll devuelve el historial completo, más reciente primero.
func (r *StockLevelRepo) ListAll() ([]*entity.StockSnapshot, error) {
	query := `
		SELECT id, port_id, plant_id, stock_level, timestamp
		FROM stock_levels
		ORDER BY timestamp DESC`
	return r.list(query)
}

func (r *StockLevelRepo) list(query string, args ...any) ([]*entity.StockSnapshot, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock snapshots: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockSnapshot
	for rows.Next() {
		var s entity.StockSnapshot
		if err := rows.Scan(&s.ID, &s.PortID, &s.PlantID, &s.StockLevel, &s.Timestamp); err != nil {
			return nil, fmt.Errorf("scan stock snapshot: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
