package repository

import "github.com/jhoicas/logitrack-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
// Los métodos de búsqueda retornan (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(user *entity.User) error
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
