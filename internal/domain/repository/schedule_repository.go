package repository

import "github.com/jhoicas/logitrack-api/internal/domain/entity"

// ScheduleRepository puerto de persistencia del libro de movimientos.
// Los métodos de lectura retornan (nil, nil) cuando no hay fila.
type ScheduleRepository interface {
	Create(s *entity.Schedule) error
	GetByID(id string) (*entity.Schedule, error)
	// GetForUpdate bloquea la fila del schedule (SELECT FOR UPDATE). Es la guarda
	// contra la doble aplicación del delta de stock bajo requests concurrentes.
	GetForUpdate(id string) (*entity.Schedule, error)
	// List devuelve todos los schedules con nombres resueltos, scheduled_date DESC.
	List() ([]*entity.Schedule, error)
	// ListRecent devuelve los últimos creados (created_at DESC) para el dashboard.
	ListRecent(limit int) ([]*entity.Schedule, error)
	// ListByStatuses filtra por uno o más estados.
	ListByStatuses(statuses ...string) ([]*entity.Schedule, error)
	UpdateStatus(id, status string) error
	// CountByPort / CountByPlant cuentan referencias para bloquear bajas de
	// entidades aún referenciadas.
	CountByPort(portID string) (int, error)
	CountByPlant(plantID string) (int, error)
}
