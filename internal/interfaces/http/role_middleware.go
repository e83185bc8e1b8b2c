package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/dto"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/policy"
)

// RequireAction rechaza con 403 a los roles que la política no autoriza para
// la acción. Debe montarse después de AuthMiddleware.
func RequireAction(action policy.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !policy.Allows(GetRole(c), action) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "sin permisos", Code: "FORBIDDEN"})
		}
		return c.Next()
	}
}
