package dto

import "time"

// AddLocationRequest alta de puerto o planta. El tipo es una variante cerrada
// {port, plant}; cualquier otro valor se rechaza antes de tocar la DB.
type AddLocationRequest struct {
	Type     string `json:"type" validate:"required,oneof=port plant"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Capacity int    `json:"capacity" validate:"required,gt=0"`
	Location string `json:"location" validate:"omitempty,max=200"`
}

// DeleteLocationRequest baja de puerto o planta.
type DeleteLocationRequest struct {
	Type string `json:"type" validate:"required,oneof=port plant"`
	ID   string `json:"id" validate:"required"`
}

// PortResponse salida de un puerto.
type PortResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Capacity     int       `json:"capacity"`
	CurrentStock int       `json:"current_stock"`
	Location     string    `json:"location,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// PlantResponse salida de una planta.
type PlantResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Capacity     int       `json:"capacity"`
	CurrentStock int       `json:"current_stock"`
	Location     string    `json:"location,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	Contact   string    `json:"contact,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// FleetAssetResponse salida de un buque o rake.
type FleetAssetResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Capacity        int       `json:"capacity"`
	Status          string    `json:"status"`
	CurrentLocation string    `json:"current_location,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// LocationsResponse todas las entidades administrables (vista manage_data).
type LocationsResponse struct {
	Suppliers []SupplierResponse   `json:"suppliers"`
	Ports     []PortResponse       `json:"ports"`
	Plants    []PlantResponse      `json:"plants"`
	Vessels   []FleetAssetResponse `json:"vessels"`
	Rakes     []FleetAssetResponse `json:"rakes"`
}
