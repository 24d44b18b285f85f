package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/logitrack-api/internal/application/dto"
	"github.com/jhoicas/logitrack-api/internal/domain/entity"
	"github.com/jhoicas/logitrack-api/internal/domain/repository"
	"github.com/jhoicas/logitrack-api/pkg/logger"
)

// ActivityUseCase bitácora de acciones de usuario. La escritura es best-effort:
// un fallo se registra en el log y nunca aborta la operación de negocio que la
// disparó.
type ActivityUseCase struct {
	repo repository.ActivityRepository
	log  *logger.Logger
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(repo repository.ActivityRepository, log *logger.Logger) *ActivityUseCase {
	return &ActivityUseCase{repo: repo, log: log.Component("activity")}
}

// Record agrega una entrada a la bitácora. Nunca retorna error.
func (uc *ActivityUseCase) Record(userEmail, action, details string) {
	rec := &entity.ActivityRecord{
		ID:        uuid.New().String(),
		UserEmail: userEmail,
		Action:    action,
		Details:   details,
		Timestamp: time.Now(),
	}
	if err := uc.repo.Create(rec); err != nil {
		uc.log.Warn().
			Err(err).
			Str("user", userEmail).
			Str("action", action).
			Msg("no se pudo escribir la bitácora")
	}
}

// ListRecent devuelve las entradas más recientes de la bitácora.
func (uc *ActivityUseCase) ListRecent(limit int) ([]dto.ActivityRecordDTO, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	recs, err := uc.repo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActivityRecordDTO, 0, len(recs))
	for _, r := range recs {
		out = append(out, dto.ActivityRecordDTO{
			ID:        r.ID,
			UserEmail: r.UserEmail,
			Action:    r.Action,
			Details:   r.Details,
			Timestamp: r.Timestamp,
		})
	}
	return out, nil
}
