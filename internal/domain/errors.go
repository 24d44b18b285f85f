package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Máquina de estados de schedules.
	ErrInvalidTransition = errors.New("el schedule está en estado terminal")
	ErrInvalidStatus     = errors.New("estado de schedule no reconocido")

	// Guardas de inventario: el stock nunca baja de cero ni supera la capacidad.
	ErrInsufficientStock = errors.New("stock insuficiente en el puerto de origen")
	ErrCapacityExceeded  = errors.New("la capacidad del destino sería superada")
)
