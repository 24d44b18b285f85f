package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/logitrack-api/internal/application/dto"
	"github.com/jhoicas/logitrack-api/internal/domain"
	"github.com/jhoicas/logitrack-api/internal/domain/entity"
	"github.com/jhoicas/logitrack-api/internal/domain/repository"
)

// Tipos admitidos por el alta/baja de ubicaciones. Variante cerrada: cualquier
// otro valor es ErrInvalidInput, nunca un nombre de tabla.
const (
	LocationTypePort  = "port"
	LocationTypePlant = "plant"
)

// LocationUseCase administración de entidades logísticas. El alta/baja de
// puertos y plantas se despacha a operaciones tipadas por entidad.
type LocationUseCase struct {
	supplierRepo repository.SupplierRepository
	portRepo     repository.PortRepository
	plantRepo    repository.PlantRepository
	vesselRepo   repository.VesselRepository
	rakeRepo     repository.RakeRepository
	schedRepo    repository.ScheduleRepository
	activity     *ActivityUseCase
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(
	supplierRepo repository.SupplierRepository,
	portRepo repository.PortRepository,
	plantRepo repository.PlantRepository,
	vesselRepo repository.VesselRepository,
	rakeRepo repository.RakeRepository,
	schedRepo repository.ScheduleRepository,
	activity *ActivityUseCase,
) *LocationUseCase {
	return &LocationUseCase{
		supplierRepo: supplierRepo,
		portRepo:     portRepo,
		plantRepo:    plantRepo,
		vesselRepo:   vesselRepo,
		rakeRepo:     rakeRepo,
		schedRepo:    schedRepo,
		activity:     activity,
	}
}

// Add crea un puerto o una planta según el tipo. Capacidad positiva obligatoria.
func (uc *LocationUseCase) Add(in dto.AddLocationRequest, actor string) error {
	if in.Name == "" || in.Capacity <= 0 {
		return domain.ErrInvalidInput
	}
	switch in.Type {
	case LocationTypePort:
		if err := uc.portRepo.Create(&entity.Port{
			ID:        uuid.New().String(),
			Name:      in.Name,
			Capacity:  in.Capacity,
			Location:  in.Location,
			Status:    "operational",
			CreatedAt: time.Now(),
		}); err != nil {
			return err
		}
	case LocationTypePlant:
		if err := uc.plantRepo.Create(&entity.Plant{
			ID:        uuid.New().String(),
			Name:      in.Name,
			Capacity:  in.Capacity,
			Location:  in.Location,
			Status:    "operational",
			CreatedAt: time.Now(),
		}); err != nil {
			return err
		}
	default:
		return domain.ErrInvalidInput
	}
	uc.activity.Record(actor, entity.ActivityAddLocation, fmt.Sprintf("Agregó %s: %s", in.Type, in.Name))
	return nil
}

// Delete elimina un puerto o una planta. Se bloquea la baja si algún schedule la
// referencia (ErrConflict); la FK con RESTRICT respalda la misma regla en la DB.
func (uc *LocationUseCase) Delete(in dto.DeleteLocationRequest, actor string) error {
	if in.ID == "" {
		return domain.ErrInvalidInput
	}
	switch in.Type {
	case LocationTypePort:
		port, err := uc.portRepo.GetByID(in.ID)
		if err != nil {
			return err
		}
		if port == nil {
			return domain.ErrNotFound
		}
		refs, err := uc.schedRepo.CountByPort(in.ID)
		if err != nil {
			return err
		}
		if refs > 0 {
			return domain.ErrConflict
		}
		if err := uc.portRepo.Delete(in.ID); err != nil {
			return err
		}
	case LocationTypePlant:
		plant, err := uc.plantRepo.GetByID(in.ID)
		if err != nil {
			return err
		}
		if plant == nil {
			return domain.ErrNotFound
		}
		refs, err := uc.schedRepo.CountByPlant(in.ID)
		if err != nil {
			return err
		}
		if refs > 0 {
			return domain.ErrConflict
		}
		if err := uc.plantRepo.Delete(in.ID); err != nil {
			return err
		}
	default:
		return domain.ErrInvalidInput
	}
	uc.activity.Record(actor, entity.ActivityDeleteLocation, fmt.Sprintf("Eliminó %s %s", in.Type, in.ID))
	return nil
}

// Suppliers lista los proveedores.
func (uc *LocationUseCase) Suppliers() ([]dto.SupplierResponse, error) {
	list, err := uc.supplierRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SupplierResponse{
			ID: s.ID, Name: s.Name, Location: s.Location, Contact: s.Contact,
			Status: s.Status, CreatedAt: s.CreatedAt,
		})
	}
	return out, nil
}

// Ports lista los puertos.
func (uc *LocationUseCase) Ports() ([]dto.PortResponse, error) {
	list, err := uc.portRepo.List()
	if err != nil {
		return nil, err
	}
	return ToPortResponses(list), nil
}

// Plants lista las plantas.
func (uc *LocationUseCase) Plants() ([]dto.PlantResponse, error) {
	list, err := uc.plantRepo.List()
	if err != nil {
		return nil, err
	}
	return ToPlantResponses(list), nil
}

// Vessels lista los buques.
func (uc *LocationUseCase) Vessels() ([]dto.FleetAssetResponse, error) {
	list, err := uc.vesselRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.FleetAssetResponse, 0, len(list))
	for _, v := range list {
		out = append(out, dto.FleetAssetResponse{
			ID: v.ID, Name: v.Name, Capacity: v.Capacity, Status: v.Status,
			CurrentLocation: v.CurrentLocation, CreatedAt: v.CreatedAt,
		})
	}
	return out, nil
}

// Rakes lista las formaciones ferroviarias.
func (uc *LocationUseCase) Rakes() ([]dto.FleetAssetResponse, error) {
	list, err := uc.rakeRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.FleetAssetResponse, 0, len(list))
	for _, r := range list {
		out = append(out, dto.FleetAssetResponse{
			ID: r.ID, Name: r.Name, Capacity: r.Capacity, Status: r.Status,
			CurrentLocation: r.CurrentLocation, CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}

// Locations devuelve la vista de administración completa (proveedores,
// puertos, plantas, buques y rakes).
func (uc *LocationUseCase) Locations() (*dto.LocationsResponse, error) {
	suppliers, err := uc.Suppliers()
	if err != nil {
		return nil, err
	}
	ports, err := uc.Ports()
	if err != nil {
		return nil, err
	}
	plants, err := uc.Plants()
	if err != nil {
		return nil, err
	}
	vessels, err := uc.Vessels()
	if err != nil {
		return nil, err
	}
	rakes, err := uc.Rakes()
	if err != nil {
		return nil, err
	}
	return &dto.LocationsResponse{Suppliers: suppliers, Ports: ports, Plants: plants, Vessels: vessels, Rakes: rakes}, nil
}

// ToPortResponses mapea puertos a DTOs.
func ToPortResponses(list []*entity.Port) []dto.PortResponse {
	out := make([]dto.PortResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.PortResponse{
			ID: p.ID, Name: p.Name, Capacity: p.Capacity, CurrentStock: p.CurrentStock,
			Location: p.Location, Status: p.Status, CreatedAt: p.CreatedAt,
		})
	}
	return out
}

// ToPlantResponses mapea plantas a DTOs.
func ToPlantResponses(list []*entity.Plant) []dto.PlantResponse {
	out := make([]dto.PlantResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.PlantResponse{
			ID: p.ID, Name: p.Name, Capacity: p.Capacity, CurrentStock: p.CurrentStock,
			Location: p.Location, Status: p.Status, CreatedAt: p.CreatedAt,
		})
	}
	return out
}
