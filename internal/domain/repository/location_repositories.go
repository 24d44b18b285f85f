package repository

import "github.com/jhoicas/logitrack-api/internal/domain/entity"

// Puertos de persistencia para las entidades logísticas. Un tipo por tabla:
// el alta/baja se despacha a operaciones tipadas, nunca a nombres de tabla
// interpolados.

// SupplierRepository proveedores.
type SupplierRepository interface {
	Create(s *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
}

// PortRepository puertos con stock. GetForUpdate bloquea la fila (SELECT FOR UPDATE)
// y UpdateStock es la única escritura de current_stock; ambos solo se usan dentro
// de la transacción de completar un schedule.
type PortRepository interface {
	Create(p *entity.Port) error
	GetByID(id string) (*entity.Port, error)
	GetForUpdate(id string) (*entity.Port, error)
	List() ([]*entity.Port, error)
	UpdateStock(id string, stock int) error
	Delete(id string) error
}

// PlantRepository plantas con stock. Mismas reglas de bloqueo que PortRepository.
type PlantRepository interface {
	Create(p *entity.Plant) error
	GetByID(id string) (*entity.Plant, error)
	GetForUpdate(id string) (*entity.Plant, error)
	List() ([]*entity.Plant, error)
	UpdateStock(id string, stock int) error
	Delete(id string) error
}

// VesselRepository buques.
type VesselRepository interface {
	Create(v *entity.Vessel) error
	GetByID(id string) (*entity.Vessel, error)
	List() ([]*entity.Vessel, error)
}

// RakeRepository formaciones ferroviarias.
type RakeRepository interface {
	Create(r *entity.Rake) error
	GetByID(id string) (*entity.Rake, error)
	List() ([]*entity.Rake, error)
}
