package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleEmpleado = "empleado"
)

// CanonicalAdminUsername es la cuenta de administrador principal: no se puede
// eliminar ni degradar por las operaciones normales de ajustes.
const CanonicalAdminUsername = "admin"

// ValidRole indica si el rol es uno de los aceptados al crear o reasignar usuarios.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEmpleado
}

// User representa un operador del taller.
type User struct {
	ID           int64
	Name         string // nombre para mostrar
	Username     string // único
	Role         string // admin, empleado
	PasswordHash string // bcrypt, nunca en claro después de persistir
	CreatedAt    time.Time
}

// IsCanonicalAdmin indica si es la cuenta admin protegida.
func (u *User) IsCanonicalAdmin() bool {
	return u.Username == CanonicalAdminUsername && u.Role == RoleAdmin
}
