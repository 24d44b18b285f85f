package domain

// Roles globales de la aplicación. No hay ACLs por recurso: el rol decide todo.
const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// CanEdit indica si el rol puede crear schedules, actualizar estados y subir archivos.
func CanEdit(role string) bool {
	switch role {
	case RoleManager, RoleAdmin, RoleOwner:
		return true
	}
	return false
}

// IsOwnerTier indica si el rol puede administrar puertos y plantas (agregar/eliminar).
func IsOwnerTier(role string) bool {
	switch role {
	case RoleAdmin, RoleOwner:
		return true
	}
	return false
}

// IsValidRole valida un rol conocido.
func IsValidRole(role string) bool {
	switch role {
	case RoleOwner, RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}
