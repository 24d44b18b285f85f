package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/logitrack-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura para los reportes.
type ReportRepo struct {
	q Querier
}

func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

func (r *ReportRepo) CountSchedules(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM schedules`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count schedules: %w", err)
	}
	return n, nil
}

func (r *ReportRepo) CountSchedulesByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM schedules WHERE status = $1`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count schedules by status: %w", err)
	}
	return n, nil
}

// PortUtilization stock * 100 / capacidad por puerto, truncado en SQL para que el
// API y el PDF muestren el mismo número. Puertos con capacidad 0 quedan fuera.
func (r *ReportRepo) PortUtilization(ctx context.Context) ([]repository.PortUtilizationRow, error) {
	query := `
		SELECT name, TRUNC((current_stock * 100.0 / capacity), 2)
		FROM ports
		WHERE capacity > 0
		ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("port utilization: %w", err)
	}
	defer rows.Close()
	var list []repository.PortUtilizationRow
	for rows.Next() {
		var row repository.PortUtilizationRow
		if err := rows.Scan(&row.Port, &row.Utilization); err != nil {
			return nil, fmt.Errorf("scan port utilization: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
