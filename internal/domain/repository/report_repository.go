package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// PortUtilizationRow utilización porcentual de un puerto (stock * 100 / capacidad,
// truncado a 2 decimales en SQL).
type PortUtilizationRow struct {
	Port        string
	Utilization decimal.Decimal
}

// ReportRepository consultas de solo lectura para los reportes.
type ReportRepository interface {
	CountSchedules(ctx context.Context) (int, error)
	CountSchedulesByStatus(ctx context.Context, status string) (int, error)
	PortUtilization(ctx context.Context) ([]PortUtilizationRow, error)
}
