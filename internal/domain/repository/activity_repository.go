package repository

import "github.com/jhoicas/logitrack-api/internal/domain/entity"

// ActivityRepository bitácora append-only: no existe update ni delete.
type ActivityRepository interface {
	Create(rec *entity.ActivityRecord) error
	ListRecent(limit int) ([]*entity.ActivityRecord, error)
}
