package repository

import "github.com/jhoicas/logitrack-api/internal/domain/entity"

// StockLevelRepository fotos históricas de stock. Create se invoca dentro de la
// transacción que mutó el stock para que la historia y el contador sean consistentes.
type StockLevelRepository interface {
	Create(s *entity.StockSnapshot) error
	ListRecent(limit int) ([]*entity.StockSnapshot, error)
	ListAll() ([]*entity.StockSnapshot, error)
}
