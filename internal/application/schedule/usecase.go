package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/logitrack-api/internal/application/dto"
	"github.com/jhoicas/logitrack-api/internal/application/usecase"
	"github.com/jhoicas/logitrack-api/internal/domain"
	"github.com/jhoicas/logitrack-api/internal/domain/entity"
	"github.com/jhoicas/logitrack-api/internal/domain/repository"
)

// ScheduleUseCase libro de schedules y motor de transiciones de estado.
// Completar un schedule es la única operación que muta current_stock, y lo hace
// dentro de una transacción con bloqueo de filas (SELECT FOR UPDATE).
type ScheduleUseCase struct {
	txRunner     TxRunner
	schedRepo    repository.ScheduleRepository
	supplierRepo repository.SupplierRepository
	portRepo     repository.PortRepository
	plantRepo    repository.PlantRepository
	vesselRepo   repository.VesselRepository
	rakeRepo     repository.RakeRepository
	activity     *usecase.ActivityUseCase
}

// NewScheduleUseCase construye el caso de uso.
func NewScheduleUseCase(
	txRunner TxRunner,
	schedRepo repository.ScheduleRepository,
	supplierRepo repository.SupplierRepository,
	portRepo repository.PortRepository,
	plantRepo repository.PlantRepository,
	vesselRepo repository.VesselRepository,
	rakeRepo repository.RakeRepository,
	activity *usecase.ActivityUseCase,
) *ScheduleUseCase {
	return &ScheduleUseCase{
		txRunner:     txRunner,
		schedRepo:    schedRepo,
		supplierRepo: supplierRepo,
		portRepo:     portRepo,
		plantRepo:    plantRepo,
		vesselRepo:   vesselRepo,
		rakeRepo:     rakeRepo,
		activity:     activity,
	}
}

// Create valida y persiste un schedule nuevo. Estado inicial siempre "scheduled";
// se admiten fechas pasadas. Las entidades referenciadas deben existir.
func (uc *ScheduleUseCase) Create(in dto.CreateScheduleRequest, createdBy string) (*dto.ScheduleResponse, error) {
	if !entity.IsValidScheduleType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.PortID == nil || *in.PortID == "" {
		return nil, domain.ErrInvalidInput
	}
	scheduledDate, err := time.Parse("2006-01-02", in.ScheduledDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	switch in.Type {
	case entity.ScheduleTypeVesselToPort:
		if in.VesselID == nil || *in.VesselID == "" {
			return nil, domain.ErrInvalidInput
		}
	case entity.ScheduleTypePortToPlant:
		if in.PlantID == nil || *in.PlantID == "" {
			return nil, domain.ErrInvalidInput
		}
	}
	if err := uc.checkReferences(in); err != nil {
		return nil, err
	}

	s := &entity.Schedule{
		ID:            uuid.New().String(),
		Type:          in.Type,
		SupplierID:    in.SupplierID,
		PortID:        in.PortID,
		PlantID:       in.PlantID,
		VesselID:      in.VesselID,
		RakeID:        in.RakeID,
		Quantity:      in.Quantity,
		ScheduledDate: scheduledDate,
		Status:        entity.ScheduleStatusScheduled,
		CreatedBy:     createdBy,
		CreatedAt:     time.Now(),
	}
	if err := uc.schedRepo.Create(s); err != nil {
		return nil, err
	}
	uc.activity.Record(createdBy, entity.ActivityCreateSchedule, fmt.Sprintf("Creó schedule %s (%s, qty %d)", s.ID, s.Type, s.Quantity))
	return toScheduleResponse(s), nil
}

// checkReferences verifica que cada entidad referenciada exista.
func (uc *ScheduleUseCase) checkReferences(in dto.CreateScheduleRequest) error {
	port, err := uc.portRepo.GetByID(*in.PortID)
	if err != nil {
		return err
	}
	if port == nil {
		return domain.ErrNotFound
	}
	if in.PlantID != nil && *in.PlantID != "" {
		plant, err := uc.plantRepo.GetByID(*in.PlantID)
		if err != nil {
			return err
		}
		if plant == nil {
			return domain.ErrNotFound
		}
	}
	if in.SupplierID != nil && *in.SupplierID != "" {
		sup, err := uc.supplierRepo.GetByID(*in.SupplierID)
		if err != nil {
			return err
		}
		if sup == nil {
			return domain.ErrNotFound
		}
	}
	if in.VesselID != nil && *in.VesselID != "" {
		v, err := uc.vesselRepo.GetByID(*in.VesselID)
		if err != nil {
			return err
		}
		if v == nil {
			return domain.ErrNotFound
		}
	}
	if in.RakeID != nil && *in.RakeID != "" {
		r, err := uc.rakeRepo.GetByID(*in.RakeID)
		if err != nil {
			return err
		}
		if r == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// List devuelve todos los schedules con nombres resueltos (scheduled_date DESC).
func (uc *ScheduleUseCase) List() ([]dto.ScheduleResponse, error) {
	list, err := uc.schedRepo.List()
	if err != nil {
		return nil, err
	}
	return toScheduleResponses(list), nil
}

// ListRecent devuelve los últimos schedules creados, para el dashboard.
func (uc *ScheduleUseCase) ListRecent(limit int) ([]dto.ScheduleResponse, error) {
	list, err := uc.schedRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	return toScheduleResponses(list), nil
}

// ListActive devuelve los schedules en estados no terminales ni atrasados,
// insumo del predictor de atrasos.
func (uc *ScheduleUseCase) ListActive() ([]dto.ScheduleResponse, error) {
	list, err := uc.schedRepo.ListByStatuses(entity.ScheduleStatusScheduled, entity.ScheduleStatusInProgress)
	if err != nil {
		return nil, err
	}
	return toScheduleResponses(list), nil
}

// Get devuelve un schedule por ID o ErrNotFound.
func (uc *ScheduleUseCase) Get(id string) (*dto.ScheduleResponse, error) {
	s, err := uc.schedRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toScheduleResponse(s), nil
}

// Transition cambia el estado de un schedule. Si el estado nuevo es "completed"
// aplica el delta de stock en la misma transacción:
//
//	vessel-to-port: port.current_stock += quantity
//	port-to-plant:  port.current_stock -= quantity; plant.current_stock += quantity
//
// La fila del schedule se bloquea primero (FOR UPDATE): dos completions
// concurrentes no pueden aplicar el delta dos veces — la segunda relee el estado
// terminal y falla con ErrInvalidTransition. Las guardas de capacidad y de stock
// negativo rechazan (no recortan) y revierten toda la transacción.
func (uc *ScheduleUseCase) Transition(ctx context.Context, scheduleID, newStatus, actor string) error {
	if !entity.IsValidScheduleStatus(newStatus) {
		return domain.ErrInvalidStatus
	}

	var stockNote string
	err := uc.txRunner.Run(ctx, func(
		schedRepo repository.ScheduleRepository,
		portRepo repository.PortRepository,
		plantRepo repository.PlantRepository,
		snapRepo repository.StockLevelRepository,
	) error {
		sched, err := schedRepo.GetForUpdate(scheduleID)
		if err != nil {
			return err
		}
		if sched == nil {
			return domain.ErrNotFound
		}
		if entity.IsTerminalStatus(sched.Status) {
			return domain.ErrInvalidTransition
		}

		if newStatus == entity.ScheduleStatusCompleted {
			note, err := applyStockDelta(sched, portRepo, plantRepo, snapRepo)
			if err != nil {
				return err
			}
			stockNote = note
		}

		return schedRepo.UpdateStatus(sched.ID, newStatus)
	})
	if err != nil {
		return err
	}

	details := fmt.Sprintf("Schedule %s pasó a '%s'", scheduleID, newStatus)
	if stockNote != "" {
		details = fmt.Sprintf("Completó schedule %s y actualizó stock (%s)", scheduleID, stockNote)
	}
	uc.activity.Record(actor, entity.ActivityUpdateStatus, details)
	return nil
}

// applyStockDelta muta los contadores de stock para un schedule que se completa.
// Orden de bloqueo fijo: puerto antes que planta.
func applyStockDelta(
	sched *entity.Schedule,
	portRepo repository.PortRepository,
	plantRepo repository.PlantRepository,
	snapRepo repository.StockLevelRepository,
) (string, error) {
	switch sched.Type {
	case entity.ScheduleTypeVesselToPort:
		if sched.PortID == nil {
			return "", domain.ErrInvalidInput
		}
		port, err := portRepo.GetForUpdate(*sched.PortID)
		if err != nil {
			return "", err
		}
		if port == nil {
			return "", domain.ErrNotFound
		}
		newStock := port.CurrentStock + sched.Quantity
		if newStock > port.Capacity {
			return "", domain.ErrCapacityExceeded
		}
		if err := portRepo.UpdateStock(port.ID, newStock); err != nil {
			return "", err
		}
		if err := snapshotPort(snapRepo, port.ID, newStock); err != nil {
			return "", err
		}
		return fmt.Sprintf("puerto %s: %d -> %d", port.Name, port.CurrentStock, newStock), nil

	case entity.ScheduleTypePortToPlant:
		if sched.PortID == nil || sched.PlantID == nil {
			return "", domain.ErrInvalidInput
		}
		port, err := portRepo.GetForUpdate(*sched.PortID)
		if err != nil {
			return "", err
		}
		if port == nil {
			return "", domain.ErrNotFound
		}
		portStock := port.CurrentStock - sched.Quantity
		if portStock < 0 {
			return "", domain.ErrInsufficientStock
		}
		plant, err := plantRepo.GetForUpdate(*sched.PlantID)
		if err != nil {
			return "", err
		}
		if plant == nil {
			return "", domain.ErrNotFound
		}
		plantStock := plant.CurrentStock + sched.Quantity
		if plantStock > plant.Capacity {
			return "", domain.ErrCapacityExceeded
		}
		if err := portRepo.UpdateStock(port.ID, portStock); err != nil {
			return "", err
		}
		if err := plantRepo.UpdateStock(plant.ID, plantStock); err != nil {
			return "", err
		}
		if err := snapshotPort(snapRepo, port.ID, portStock); err != nil {
			return "", err
		}
		if err := snapshotPlant(snapRepo, plant.ID, plantStock); err != nil {
			return "", err
		}
		return fmt.Sprintf("puerto %s -> planta %s, qty %d", port.Name, plant.Name, sched.Quantity), nil
	}
	return "", domain.ErrInvalidInput
}

func snapshotPort(snapRepo repository.StockLevelRepository, portID string, level int) error {
	return snapRepo.Create(&entity.StockSnapshot{
		ID:         uuid.New().String(),
		PortID:     &portID,
		StockLevel: level,
		Timestamp:  time.Now(),
	})
}

func snapshotPlant(snapRepo repository.StockLevelRepository, plantID string, level int) error {
	return snapRepo.Create(&entity.StockSnapshot{
		ID:         uuid.New().String(),
		PlantID:    &plantID,
		StockLevel: level,
		Timestamp:  time.Now(),
	})
}

func toScheduleResponse(s *entity.Schedule) *dto.ScheduleResponse {
	return &dto.ScheduleResponse{
		ID:            s.ID,
		Type:          s.Type,
		SupplierID:    s.SupplierID,
		PortID:        s.PortID,
		PlantID:       s.PlantID,
		VesselID:      s.VesselID,
		RakeID:        s.RakeID,
		Quantity:      s.Quantity,
		ScheduledDate: s.ScheduledDate,
		Status:        s.Status,
		CreatedBy:     s.CreatedBy,
		CreatedAt:     s.CreatedAt,
		SupplierName:  s.SupplierName,
		PortName:      s.PortName,
		PlantName:     s.PlantName,
	}
}

func toScheduleResponses(list []*entity.Schedule) []dto.ScheduleResponse {
	out := make([]dto.ScheduleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toScheduleResponse(s))
	}
	return out
}
