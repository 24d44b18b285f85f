package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/logitrack-api/internal/domain/entity"
	"github.com/jhoicas/logitrack-api/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo registro de actividad append-only sobre PostgreSQL.
type ActivityRepo struct {
	q Querier
}

func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

// Create inserta un registro. Nunca se actualiza ni se borra.
func (r *ActivityRepo) Create(a *entity.ActivityRecord) error {
	query := `
		INSERT INTO user_activities (id, user_email, action, details, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.UserEmail, a.Action, a.Details, a.Timestamp)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// ListRecent devuelve la actividad más reciente primero.
func (r *ActivityRepo) ListRecent(limit int) ([]*entity.ActivityRecord, error) {
	query := `
		SELECT id, user_email, action, details, created_at
		FROM user_activities
		ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()
	var list []*entity.ActivityRecord
	for rows.Next() {
		var a entity.ActivityRecord
		if err := rows.Scan(&a.ID, &a.UserEmail, &a.Action, &a.Details, &a.Timestamp); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
