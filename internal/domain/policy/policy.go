// Package policy centraliza la autorización por rol. Todas las decisiones de
// acceso (rutas y campos) pasan por Allows; los handlers y use cases no
// comparan roles por su cuenta.
package policy

import "github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/entity"

// Action es una operación autorizable del sistema.
type Action string

const (
	ActionOrderCreate    Action = "orden.crear"
	ActionOrderView      Action = "orden.ver"
	ActionOrderUpdate    Action = "orden.actualizar"
	ActionOrderSetCharge Action = "orden.cobro"
	ActionOrderDelete    Action = "orden.eliminar"
	ActionPhotoUpload    Action = "foto.subir"
	ActionPhotoDelete    Action = "foto.eliminar"
	ActionUserManage     Action = "usuarios.administrar"
)

// matrix define qué roles pueden ejecutar cada acción.
var matrix = map[Action][]string{
	ActionOrderCreate:    {entity.RoleAdmin, entity.RoleEmpleado},
	ActionOrderView:      {entity.RoleAdmin, entity.RoleEmpleado},
	ActionOrderUpdate:    {entity.RoleAdmin, entity.RoleEmpleado},
	ActionOrderSetCharge: {entity.RoleAdmin},
	ActionOrderDelete:    {entity.RoleAdmin},
	ActionPhotoUpload:    {entity.RoleAdmin, entity.RoleEmpleado},
	ActionPhotoDelete:    {entity.RoleAdmin},
	ActionUserManage:     {entity.RoleAdmin},
}

// Allows evalúa si el rol puede ejecutar la acción. Roles o acciones
// desconocidos niegan el acceso.
func Allows(role string, action Action) bool {
	for _, r := range matrix[action] {
		if r == role {
			return true
		}
	}
	return false
}
