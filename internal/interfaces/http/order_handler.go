package http

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/dto"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/orders"
	"github.com/AlanArratia12/MasterServicioAutomotriz/pkg/logger"
)

// OrderHandler maneja la recepción, consulta y ciclo de vida de las órdenes.
type OrderHandler struct {
	uc     *orders.OrdersUseCase
	ticket *orders.TicketUseCase
	log    *logger.Logger
}

// NewOrderHandler construye el handler de órdenes.
func NewOrderHandler(uc *orders.OrdersUseCase, ticket *orders.TicketUseCase, log *logger.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, ticket: ticket, log: log}
}

// Create godoc
// @Summary      Recepción de vehículo (crea cliente, vehículo y orden)
// @Tags         ordenes
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  dto.CreateOrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ordenes [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido", Code: "INVALID_BODY"})
	}

	// El audio de recepción es opcional; se copia a un temporal para que el
	// caso de uso decida su destino final.
	var audio *orders.AudioUpload
	if file, err := c.FormFile("audios"); err == nil && file != nil {
		tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("audio-%s%s", uuid.NewString(), filepath.Ext(file.Filename)))
		if err := c.SaveFile(file, tmpPath); err == nil {
			audio = &orders.AudioUpload{
				TmpPath:      tmpPath,
				OriginalName: file.Filename,
				MimeType:     file.Header.Get("Content-Type"),
			}
		} else {
			h.log.Warn().Err(err).Msg("no se pudo guardar el audio temporal")
		}
	}

	out, err := h.uc.Intake(c.UserContext(), in, audio)
	if err != nil {
		if audio != nil {
			_ = os.Remove(audio.TmpPath)
		}
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Today godoc
// @Summary      Tablero del día (órdenes de hoy + rezagadas sin entregar)
// @Tags         ordenes
// @Produce      json
// @Success      200  {array}   dto.OrderRow
// @Router       /api/ordenes/hoy [get]
func (h *OrderHandler) Today(c *fiber.Ctx) error {
	rows, err := h.uc.Today(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(rows)
}

// History godoc
// @Summary      Historial con filtros y paginación
// @Tags         ordenes
// @Produce      json
// @Success      200  {object}  dto.HistoryResponse
// @Router       /api/ordenes/historial [get]
func (h *OrderHandler) History(c *fiber.Ctx) error {
	var in dto.HistoryRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "filtros inválidos", Code: "VALIDATION"})
	}
	out, err := h.uc.History(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de una orden
// @Tags         ordenes
// @Produce      json
// @Success      200  {object}  dto.OrderRow
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	row, err := h.uc.Detail(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(row)
}

// Update godoc
// @Summary      Actualización parcial de una orden
// @Tags         ordenes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateOrderRequest  true  "estado, vin, cobro, mecanico"
// @Success      200  {object}  dto.AckResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id} [patch]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido", Code: "INVALID_BODY"})
	}
	if err := h.uc.Update(c.UserContext(), id, in, GetRole(c)); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.AckResponse{OK: true})
}

// Delete godoc
// @Summary      Eliminar una orden y sus adjuntos
// @Tags         ordenes
// @Produce      json
// @Success      200  {object}  dto.AckResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.AckResponse{OK: true})
}

// Ticket godoc
// @Summary      Comprobante de recepción en PDF
// @Tags         ordenes
// @Produce      application/pdf
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id}/pdf [get]
func (h *OrderHandler) Ticket(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	pdf, err := h.ticket.Generate(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="orden-%d.pdf"`, id))
	return c.Send(pdf)
}
