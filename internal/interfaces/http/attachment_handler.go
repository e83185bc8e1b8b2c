package http

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/dto"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/media"
	"github.com/AlanArratia12/MasterServicioAutomotriz/pkg/logger"
)

// AttachmentHandler maneja las fotos de evidencia de una orden.
type AttachmentHandler struct {
	uc  *media.MediaUseCase
	log *logger.Logger
}

// NewAttachmentHandler construye el handler de adjuntos.
func NewAttachmentHandler(uc *media.MediaUseCase, log *logger.Logger) *AttachmentHandler {
	return &AttachmentHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Fotos de una orden
// @Tags         fotos
// @Produce      json
// @Success      200  {array}  dto.PhotoResponse
// @Router       /api/ordenes/{id}/fotos [get]
func (h *AttachmentHandler) List(c *fiber.Ctx) error {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	photos, err := h.uc.List(c.UserContext(), orderID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(photos)
}

// Upload godoc
// @Summary      Subir fotos de evidencia (multipart, campo "fotos")
// @Tags         fotos
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  dto.AckResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id}/fotos [post]
func (h *AttachmentHandler) Upload(c *fiber.Ctx) error {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "formulario inválido", Code: "INVALID_BODY"})
	}
	files := form.File["fotos"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "se requiere al menos una foto", Code: "VALIDATION"})
	}

	uploads := make([]media.PhotoUpload, 0, len(files))
	defer func() {
		for _, u := range uploads {
			_ = os.Remove(u.TmpPath)
		}
	}()
	for _, file := range files {
		tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("foto-%s%s", uuid.NewString(), filepath.Ext(file.Filename)))
		if err := c.SaveFile(file, tmpPath); err != nil {
			return respondError(c, h.log, fmt.Errorf("guardar foto temporal: %w", err))
		}
		uploads = append(uploads, media.PhotoUpload{
			TmpPath:      tmpPath,
			OriginalName: file.Filename,
			MimeType:     file.Header.Get("Content-Type"),
		})
	}

	if err := h.uc.AddPhotos(c.UserContext(), orderID, uploads); err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AckResponse{OK: true})
}

// Delete godoc
// @Summary      Eliminar una foto
// @Tags         fotos
// @Produce      json
// @Success      200  {object}  dto.AckResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fotos/{id} [delete]
func (h *AttachmentHandler) Delete(c *fiber.Ctx) error {
	photoID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.uc.RemovePhoto(c.UserContext(), photoID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.AckResponse{OK: true})
}
