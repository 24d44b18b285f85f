package schedule

import (
	"context"

	"github.com/jhoicas/logitrack-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a ella.
// Si fn retorna error se hace Rollback; si no, Commit. Es la unidad atómica del
// motor de mutación de stock: estado del schedule, contadores y snapshots salen
// de la misma transacción o no salen.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		schedRepo repository.ScheduleRepository,
		portRepo repository.PortRepository,
		plantRepo repository.PlantRepository,
		snapRepo repository.StockLevelRepository,
	) error) error
}
