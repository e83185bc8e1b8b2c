package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/dto"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain"
	"github.com/AlanArratia12/MasterServicioAutomotriz/pkg/logger"
)

// respondError traduce los errores de dominio a códigos HTTP. Los errores no
// reconocidos se registran y responden 500 sin filtrar detalles internos.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "faltan campos obligatorios: " + strings.Join(verr.Missing, ", "),
			Code:  "VALIDATION",
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "datos inválidos", Code: "VALIDATION"})
	case errors.Is(err, domain.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "estatus desconocido", Code: "VALIDATION"})
	case errors.Is(err, domain.ErrInvalidRole):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "rol desconocido", Code: "VALIDATION"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "credenciales inválidas", Code: "UNAUTHORIZED"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "sin permisos", Code: "FORBIDDEN"})
	case errors.Is(err, domain.ErrProtectedAccount):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "la cuenta principal no puede modificarse", Code: "PROTECTED_ACCOUNT"})
	case errors.Is(err, domain.ErrOrderNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "orden no encontrada", Code: "NOT_FOUND"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "usuario no encontrado", Code: "NOT_FOUND"})
	case errors.Is(err, domain.ErrPhotoNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "foto no encontrada", Code: "NOT_FOUND"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "recurso no encontrado", Code: "NOT_FOUND"})
	case errors.Is(err, domain.ErrUsernameTaken):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "el username ya está en uso", Code: "USERNAME_TAKEN"})
	}

	if log != nil {
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno", Code: "INTERNAL"})
}

// parseIDParam lee un parámetro de ruta numérico (":id").
func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return int64(id), nil
}
