package entity

import "time"

// Plant planta de consumo. Invariante: 0 <= CurrentStock <= Capacity.
// Solo el motor de transiciones de schedules puede mutar CurrentStock.
type Plant struct {
	ID           string
	Name         string
	Capacity     int
	CurrentStock int
	Location     string
	Status       string // operational
	CreatedAt    time.Time
}
