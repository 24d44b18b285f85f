package entity

import "time"

// Supplier proveedor de material. No maneja stock propio.
type Supplier struct {
	ID        string
	Name      string
	Location  string
	Contact   string
	Status    string // active
	CreatedAt time.Time
}
