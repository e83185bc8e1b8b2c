package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrOrderNotFound    = errors.New("orden no encontrada")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrPhotoNotFound    = errors.New("foto no encontrada")
	ErrUsernameTaken    = errors.New("el nombre de usuario ya existe")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidStatus    = errors.New("estatus desconocido")
	ErrInvalidRole      = errors.New("rol inválido")
	ErrUnauthorized     = errors.New("no autenticado")
	ErrForbidden        = errors.New("sin permisos")
	ErrProtectedAccount = errors.New("la cuenta de administrador principal no se puede modificar")
)

// ValidationError agrupa los campos obligatorios ausentes de una petición.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "faltan campos obligatorios"
}
