package entity

import "time"

// Rake formación ferroviaria para el tramo puerto → planta.
type Rake struct {
	ID              string
	Name            string
	Capacity        int
	Status          string // available
	CurrentLocation string
	CreatedAt       time.Time
}
