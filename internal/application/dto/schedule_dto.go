package dto

import "time"

// CreateScheduleRequest entrada para crear un schedule. Las referencias son
// opcionales según el tipo; la fecha admite valores en el pasado.
type CreateScheduleRequest struct {
	Type          string  `json:"type" validate:"required,oneof=vessel-to-port port-to-plant"`
	SupplierID    *string `json:"supplier_id"`
	PortID        *string `json:"port_id" validate:"required"`
	PlantID       *string `json:"plant_id"`
	VesselID      *string `json:"vessel_id"`
	RakeID        *string `json:"rake_id"`
	Quantity      int     `json:"quantity" validate:"required,gt=0"`
	ScheduledDate string  `json:"scheduled_date" validate:"required"` // YYYY-MM-DD
}

// UpdateStatusRequest entrada para transicionar el estado de un schedule.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled in-progress delayed completed canceled"`
}

// ScheduleResponse salida de un schedule con nombres resueltos.
type ScheduleResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	SupplierID    *string   `json:"supplier_id,omitempty"`
	PortID        *string   `json:"port_id,omitempty"`
	PlantID       *string   `json:"plant_id,omitempty"`
	VesselID      *string   `json:"vessel_id,omitempty"`
	RakeID        *string   `json:"rake_id,omitempty"`
	Quantity      int       `json:"quantity"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Status        string    `json:"status"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	SupplierName  string    `json:"supplier_name,omitempty"`
	PortName      string    `json:"port_name,omitempty"`
	PlantName     string    `json:"plant_name,omitempty"`
}

// ScheduleListResponse listado de schedules.
type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	CanEdit   bool               `json:"can_edit"`
}
