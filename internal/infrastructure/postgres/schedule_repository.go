package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/logitrack-api/internal/domain/entity"
	"github.com/jhoicas/logitrack-api/internal/domain/repository"
)

var _ repository.ScheduleRepository = (*ScheduleRepo)(nil)

// ScheduleRepo implementación sobre PostgreSQL (usable con pool o tx).
type ScheduleRepo struct {
	q Querier
}

// NewScheduleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewScheduleRepository(q Querier) *ScheduleRepo {
	return &ScheduleRepo{q: q}
}

const scheduleColumns = `
	s.id, s.type, s.supplier_id, s.port_id, s.plant_id, s.vessel_id, s.rake_id,
	s.quantity, s.scheduled_date, s.status, s.created_by, s.created_at`

const scheduleJoins = `
	LEFT JOIN suppliers su ON s.supplier_id = su.id
	LEFT JOIN ports p ON s.port_id = p.id
	LEFT JOIN plants pl ON s.plant_id = pl.id`

// Create persiste un schedule nuevo.
func (r *ScheduleRepo) Create(s *entity.Schedule) error {
	query := `
		INSERT INTO schedules (id, type, supplier_id, port_id, plant_id, vessel_id, rake_id,
			quantity, scheduled_date, status, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Type, s.SupplierID, s.PortID, s.PlantID, s.VesselID, s.RakeID,
		s.Quantity, s.ScheduledDate, s.Status, s.CreatedBy, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert schedule: %w", err)
	}
	return nil
}

// GetByID obtiene un schedule por ID.
func (r *ScheduleRepo) GetByID(id string) (*entity.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules s WHERE s.id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene el schedule y bloquea la fila (SELECT FOR UPDATE). La
// segunda transacción concurrente espera aquí y relee el estado ya escrito.
func (r *ScheduleRepo) GetForUpdate(id string) (*entity.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules s WHERE s.id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

// List devuelve todos los schedules con nombres resueltos, scheduled_date DESC.
func (r *ScheduleRepo) List() ([]*entity.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `,
			COALESCE(su.name, '') AS supplier_name,
			COALESCE(p.name, '') AS port_name,
			COALESCE(pl.name, '') AS plant_name
		FROM schedules s` + scheduleJoins + `
		ORDER BY s.scheduled_date DESC`
	return r.listJoined(query)
}

// ListRecent devuelve los últimos schedules creados (created_at DESC).
func (r *ScheduleRepo) ListRecent(limit int) ([]*entity.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `,
			COALESCE(su.name, '') AS supplier_name,
			COALESCE(p.name, '') AS port_name,
			COALESCE(pl.name, '') AS plant_name
		FROM schedules s` + scheduleJoins + `
		ORDER BY s.created_at DESC LIMIT $1`
	return r.listJoined(query, limit)
}

// ListByStatuses filtra por estados.
func (r *ScheduleRepo) ListByStatuses(statuses ...string) ([]*entity.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `,
			COALESCE(su.name, '') AS supplier_name,
			COALESCE(p.name, '') AS port_name,
			COALESCE(pl.name, '') AS plant_name
		FROM schedules s` + scheduleJoins + `
		WHERE s.status = ANY($1)
		ORDER BY s.scheduled_date DESC`
	return r.listJoined(query, statuses)
}

// UpdateStatus escribe el estado. La validación de transición es del caso de uso,
// bajo el lock de GetForUpdate.
func (r *ScheduleRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE schedules SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update schedule status: %w", err)
	}
	return nil
}

// CountByPort cuenta schedules que referencian un puerto.
func (r *ScheduleRepo) CountByPort(portID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM schedules WHERE port_id = $1`, portID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count schedules by port: %w", err)
	}
	return n, nil
}

// CountByPlant cuenta schedules que referencian una planta.
func (r *ScheduleRepo) CountByPlant(plantID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM schedules WHERE plant_id = $1`, plantID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count schedules by plant: %w", err)
	}
	return n, nil
}

func (r *ScheduleRepo) scanOne(query string, arg any) (*entity.Schedule, error) {
	var s entity.Schedule
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.Type, &s.SupplierID, &s.PortID, &s.PlantID, &s.VesselID, &s.RakeID,
		&s.Quantity, &s.ScheduledDate, &s.Status, &s.CreatedBy, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get schedule: %w", err)
	}
	return &s, nil
}

func (r *ScheduleRepo) listJoined(query string, args ...any) ([]*entity.Schedule, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer rows.Close()
	var list []*entity.Schedule
	for rows.Next() {
		var s entity.Schedule
		if err := rows.Scan(
			&s.ID, &s.Type, &s.SupplierID, &s.PortID, &s.PlantID, &s.VesselID, &s.RakeID,
			&s.Quantity, &s.ScheduledDate, &s.Status, &s.CreatedBy, &s.CreatedAt,
			&s.SupplierName, &s.PortName, &s.PlantName,
		); err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
