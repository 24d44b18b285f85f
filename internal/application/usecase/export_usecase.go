package usecase

import (
	"strconv"
	"time"

	"github.com/jhoicas/logitrack-api/internal/domain"
	"github.com/jhoicas/logitrack-api/internal/domain/repository"
)

// Datasets exportables. Lista cerrada: cualquier otro identificador se rechaza
// antes de ejecutar consulta alguna.
const (
	DatasetSchedules   = "schedules"
	DatasetStockLevels = "stock_levels"
)

// Dataset tabla lista para serializar (CSV, XLSX o XML).
type Dataset struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// ExportUseCase arma los datasets exportables.
type ExportUseCase struct {
	schedRepo repository.ScheduleRepository
	snapRepo  repository.StockLevelRepository
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(schedRepo repository.ScheduleRepository, snapRepo repository.StockLevelRepository) *ExportUseCase {
	return &ExportUseCase{schedRepo: schedRepo, snapRepo: snapRepo}
}

// Dataset devuelve el dataset pedido o ErrInvalidInput si el identificador no
// está en la lista cerrada.
func (uc *ExportUseCase) Dataset(name string) (*Dataset, error) {
	switch name {
	case DatasetSchedules:
		return uc.schedulesDataset()
	case DatasetStockLevels:
		return uc.stockLevelsDataset()
	}
	return nil, domain.ErrInvalidInput
}

func (uc *ExportUseCase) schedulesDataset() (*Dataset, error) {
	list, err := uc.schedRepo.List()
	if err != nil {
		return nil, err
	}
	ds := &Dataset{
		Name: DatasetSchedules,
		Headers: []string{
			"id", "type", "supplier_id", "port_id", "plant_id", "vessel_id", "rake_id",
			"quantity", "scheduled_date", "status", "created_by", "created_at",
		},
	}
	for _, s := range list {
		ds.Rows = append(ds.Rows, []string{
			s.ID, s.Type,
			deref(s.SupplierID), deref(s.PortID), deref(s.PlantID), deref(s.VesselID), deref(s.RakeID),
			strconv.Itoa(s.Quantity),
			s.ScheduledDate.Format("2006-01-02"),
			s.Status, s.CreatedBy,
			s.CreatedAt.Format(time.RFC3339),
		})
	}
	return ds, nil
}

func (uc *ExportUseCase) stockLevelsDataset() (*Dataset, error) {
	snaps, err := uc.snapRepo.ListAll()
	if err != nil {
		return nil, err
	}
	ds := &Dataset{
		Name:    DatasetStockLevels,
		Headers: []string{"id", "port_id", "plant_id", "stock_level", "timestamp"},
	}
	for _, s := range snaps {
		ds.Rows = append(ds.Rows, []string{
			s.ID, deref(s.PortID), deref(s.PlantID),
			strconv.Itoa(s.StockLevel),
			s.Timestamp.Format(time.RFC3339),
		})
	}
	return ds, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
