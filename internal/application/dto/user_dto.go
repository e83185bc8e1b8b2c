package dto

// CreateUserRequest entrada para crear un usuario (password en claro, se hashea en el use case).
type CreateUserRequest struct {
	Nombre   string `json:"nombre" form:"nombre"`
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"` // admin | empleado
}

// UpdateRoleRequest entrada para reasignar el rol de un usuario.
type UpdateRoleRequest struct {
	Role string `json:"role" form:"role"`
}

// UpdatePasswordRequest entrada para cambiar la contraseña de un usuario.
type UpdatePasswordRequest struct {
	Password string `json:"password" form:"password"`
}

// UserResponse salida de un usuario (sin hash).
type UserResponse struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// CreateUserResponse salida al crear un usuario.
type CreateUserResponse struct {
	OK      bool         `json:"ok"`
	Usuario UserResponse `json:"usuario"`
}
