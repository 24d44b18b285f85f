package entity

import "time"

// User usuario de la aplicación. El password nunca sale del dominio en claro:
// solo se persiste el hash bcrypt.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // owner | admin | manager | user
	Verified     bool
	CreatedAt    time.Time
}
