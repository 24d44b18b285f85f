package entity

import "time"

// Tipos de schedule: qué tramo de la cadena cubre el movimiento.
const (
	ScheduleTypeVesselToPort = "vessel-to-port" // buque descarga en puerto
	ScheduleTypePortToPlant  = "port-to-plant"  // puerto despacha a planta
)

// Estados del ciclo de vida de un schedule.
// completed y canceled son terminales: no admiten más transiciones, ni al mismo valor.
const (
	ScheduleStatusScheduled  = "scheduled"
	ScheduleStatusInProgress = "in-progress"
	ScheduleStatusDelayed    = "delayed"
	ScheduleStatusCompleted  = "completed"
	ScheduleStatusCanceled   = "canceled"
)

// Schedule movimiento planificado de material entre entidades logísticas.
// Las referencias son opcionales según el tipo: vessel-to-port usa VesselID,
// port-to-plant usa PlantID (y opcionalmente RakeID). PortID aplica siempre.
type Schedule struct {
	ID            string
	Type          string
	SupplierID    *string
	PortID        *string
	PlantID       *string
	VesselID      *string
	RakeID        *string
	Quantity      int
	ScheduledDate time.Time
	Status        string
	CreatedBy     string // email del creador
	CreatedAt     time.Time

	// Nombres resueltos por JOIN para listados; vacíos fuera de ellos.
	SupplierName string
	PortName     string
	PlantName    string
}

// IsValidScheduleStatus valida un estado reconocido.
func IsValidScheduleStatus(status string) bool {
	switch status {
	case ScheduleStatusScheduled, ScheduleStatusInProgress, ScheduleStatusDelayed,
		ScheduleStatusCompleted, ScheduleStatusCanceled:
		return true
	}
	return false
}

// IsTerminalStatus indica si el estado no admite más transiciones.
func IsTerminalStatus(status string) bool {
	return status == ScheduleStatusCompleted || status == ScheduleStatusCanceled
}

// IsValidScheduleType valida un tipo reconocido.
func IsValidScheduleType(t string) bool {
	return t == ScheduleTypeVesselToPort || t == ScheduleTypePortToPlant
}
