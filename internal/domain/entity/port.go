package entity

import "time"

// Port puerto de acopio. Invariante: 0 <= CurrentStock <= Capacity.
// Solo el motor de transiciones de schedules puede mutar CurrentStock.
type Port struct {
	ID           string
	Name         string
	Capacity     int
	CurrentStock int
	Location     string
	Status       string // operational
	CreatedAt    time.Time
}
