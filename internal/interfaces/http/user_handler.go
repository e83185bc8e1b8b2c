package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/dto"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/usecase"
	"github.com/AlanArratia12/MasterServicioAutomotriz/pkg/logger"
)

// UserHandler maneja la administración de cuentas (sección de ajustes).
type UserHandler struct {
	uc  *usecase.UserUseCase
	log *logger.Logger
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         usuarios
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/ajustes/usuarios [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(users)
}

// Create godoc
// @Summary      Crear usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "nombre, username, password, role"
// @Success      201   {object}  dto.CreateUserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ajustes/usuarios [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido", Code: "INVALID_BODY"})
	}
	user, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateUserResponse{OK: true, Usuario: *user})
}

// UpdateRole godoc
// @Summary      Reasignar rol
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateRoleRequest  true  "role"
// @Success      200   {object}  dto.AckResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ajustes/usuarios/{id}/role [patch]
func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	var in dto.UpdateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido", Code: "INVALID_BODY"})
	}
	if err := h.uc.ChangeRole(c.UserContext(), id, in.Role); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.AckResponse{OK: true})
}

// UpdatePassword godoc
// @Summary      Cambiar contraseña
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdatePasswordRequest  true  "password"
// @Success      200   {object}  dto.AckResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ajustes/usuarios/{id}/password [patch]
func (h *UserHandler) UpdatePassword(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	var in dto.UpdatePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido", Code: "INVALID_BODY"})
	}
	if err := h.uc.ChangePassword(c.UserContext(), id, in.Password); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.AckResponse{OK: true})
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         usuarios
// @Produce      json
// @Success      200  {object}  dto.AckResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ajustes/usuarios/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.AckResponse{OK: true})
}
