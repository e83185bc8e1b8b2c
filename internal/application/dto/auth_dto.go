package dto

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// LoginResponse salida con el token de sesión (ventana fija de expiración).
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// IdentityResponse identidad de la sesión actual (GET /api/auth/yo).
type IdentityResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Nombre   string `json:"nombre"`
	Role     string `json:"role"`
}
