package usecase

import (
	"math/rand"

	"github.com/jhoicas/logitrack-api/internal/application/dto"
	"github.com/jhoicas/logitrack-api/internal/domain/entity"
	"github.com/jhoicas/logitrack-api/internal/domain/repository"
)

// PlannerUseCase endpoints placeholder de optimización y predicción de atrasos.
// No hay algoritmo detrás: las respuestas son valores sintéticos y se marcan
// con Mock=true. Si producto define lógica real, reemplaza este caso de uso.
type PlannerUseCase struct {
	schedRepo repository.ScheduleRepository
}

// NewPlannerUseCase construye el caso de uso.
func NewPlannerUseCase(schedRepo repository.ScheduleRepository) *PlannerUseCase {
	return &PlannerUseCase{schedRepo: schedRepo}
}

var delayReasons = []string{"Weather conditions", "Vessel maintenance", "Port congestion"}

// Optimize devuelve un ahorro estimado sintético.
func (uc *PlannerUseCase) Optimize() *dto.OptimizeResponse {
	return &dto.OptimizeResponse{
		Mock:             true,
		Message:          "Optimization completed",
		EstimatedSavings: 1000 + rand.Intn(9001),
	}
}

// PredictDelays marca ~30% de los schedules activos como posibles atrasos, con
// motivo y días sintéticos.
func (uc *PlannerUseCase) PredictDelays() (*dto.DelayPredictionsResponse, error) {
	list, err := uc.schedRepo.ListByStatuses(entity.ScheduleStatusScheduled, entity.ScheduleStatusInProgress)
	if err != nil {
		return nil, err
	}
	out := &dto.DelayPredictionsResponse{Mock: true, DelayedSchedules: []dto.DelayPredictionDTO{}}
	for _, s := range list {
		if rand.Float64() < 0.3 {
			out.DelayedSchedules = append(out.DelayedSchedules, dto.DelayPredictionDTO{
				ScheduleID:         s.ID,
				Reason:             delayReasons[rand.Intn(len(delayReasons))],
				EstimatedDelayDays: 1 + rand.Intn(7),
			})
		}
	}
	return out, nil
}
