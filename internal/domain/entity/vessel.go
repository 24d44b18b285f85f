package entity

import "time"

// Vessel buque de transporte marítimo.
type Vessel struct {
	ID              string
	Name            string
	Capacity        int
	Status          string // available
	CurrentLocation string
	CreatedAt       time.Time
}
