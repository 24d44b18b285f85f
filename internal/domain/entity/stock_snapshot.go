package entity

import "time"

// StockSnapshot foto del nivel de stock de un puerto o planta, tomada dentro de
// la misma transacción que lo modificó. Exactamente uno de PortID/PlantID es no nulo.
type StockSnapshot struct {
	ID         string
	PortID     *string
	PlantID    *string
	StockLevel int
	Timestamp  time.Time
}
