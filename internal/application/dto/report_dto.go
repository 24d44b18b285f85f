package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortUtilizationDTO utilización porcentual de un puerto.
type PortUtilizationDTO struct {
	Port        string          `json:"port"`
	Utilization decimal.Decimal `json:"utilization"`
}

// ReportResponse agregados para la vista de reportes.
type ReportResponse struct {
	TotalSchedules     int                  `json:"total_schedules"`
	CompletedSchedules int                  `json:"completed_schedules"`
	DelayedSchedules   int                  `json:"delayed_schedules"`
	PortUtilization    []PortUtilizationDTO `json:"port_utilization"`
}

// DashboardResponse resumen para el dashboard.
type DashboardResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Ports     []PortResponse     `json:"ports"`
	Plants    []PlantResponse    `json:"plants"`
}

// StockSnapshotDTO foto histórica de stock.
type StockSnapshotDTO struct {
	ID         string    `json:"id"`
	PortID     *string   `json:"port_id,omitempty"`
	PlantID    *string   `json:"plant_id,omitempty"`
	StockLevel int       `json:"stock_level"`
	Timestamp  time.Time `json:"timestamp"`
}

// StockLevelsResponse vista de niveles de stock actuales e históricos.
type StockLevelsResponse struct {
	Ports     []PortResponse     `json:"ports"`
	Plants    []PlantResponse    `json:"plants"`
	Snapshots []StockSnapshotDTO `json:"stock_levels"`
}
