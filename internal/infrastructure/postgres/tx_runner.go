package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/logitrack-api/internal/application/schedule"
	"github.com/jhoicas/logitrack-api/internal/domain/repository"
)

// Ensure TxRunner implements schedule.TxRunner.
var _ schedule.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit
// o Rollback. El Rollback diferido garantiza que ningún camino de salida deje la
// transacción abierta.
func (r *TxRunner) Run(ctx context.Context, fn func(
	schedRepo repository.ScheduleRepository,
	portRepo repository.PortRepository,
	plantRepo repository.PlantRepository,
	snapRepo repository.StockLevelRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	schedRepo := NewScheduleRepository(tx)
	portRepo := NewPortRepository(tx)
	plantRepo := NewPlantRepository(tx)
	snapRepo := NewStockLevelRepository(tx)

	if err := fn(schedRepo, portRepo, plantRepo, snapRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
