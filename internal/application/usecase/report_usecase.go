package usecase

import (
	"context"

	"github.com/jhoicas/logitrack-api/internal/application/dto"
	"github.com/jhoicas/logitrack-api/internal/domain/entity"
	"github.com/jhoicas/logitrack-api/internal/domain/repository"
)

// ReportUseCase agregados de solo lectura para reportes y la vista de stock.
type ReportUseCase struct {
	repo     repository.ReportRepository
	snapRepo repository.StockLevelRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository, snapRepo repository.StockLevelRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo, snapRepo: snapRepo}
}

// Summary devuelve los contadores de schedules y la utilización por puerto.
func (uc *ReportUseCase) Summary(ctx context.Context) (*dto.ReportResponse, error) {
	total, err := uc.repo.CountSchedules(ctx)
	if err != nil {
		return nil, err
	}
	completed, err := uc.repo.CountSchedulesByStatus(ctx, entity.ScheduleStatusCompleted)
	if err != nil {
		return nil, err
	}
	delayed, err := uc.repo.CountSchedulesByStatus(ctx, entity.ScheduleStatusDelayed)
	if err != nil {
		return nil, err
	}
	rows, err := uc.repo.PortUtilization(ctx)
	if err != nil {
		return nil, err
	}
	utilization := make([]dto.PortUtilizationDTO, 0, len(rows))
	for _, r := range rows {
		utilization = append(utilization, dto.PortUtilizationDTO{Port: r.Port, Utilization: r.Utilization})
	}
	return &dto.ReportResponse{
		TotalSchedules:     total,
		CompletedSchedules: completed,
		DelayedSchedules:   delayed,
		PortUtilization:    utilization,
	}, nil
}

// RecentSnapshots devuelve las últimas fotos de stock.
func (uc *ReportUseCase) RecentSnapshots(limit int) ([]dto.StockSnapshotDTO, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	snaps, err := uc.snapRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockSnapshotDTO, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, dto.StockSnapshotDTO{
			ID: s.ID, PortID: s.PortID, PlantID: s.PlantID,
			StockLevel: s.StockLevel, Timestamp: s.Timestamp,
		})
	}
	return out, nil
}
