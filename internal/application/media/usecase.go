package media

import (
	"context"
	"fmt"
	"time"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/dto"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/entity"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/repository"
	"github.com/AlanArratia12/MasterServicioAutomotriz/pkg/logger"
)

// PhotoUpload es una foto recibida por multipart, ya volcada a un archivo
// temporal por el handler.
type PhotoUpload struct {
	TmpPath      string
	OriginalName string
	MimeType     string
}

// MediaUseCase administra las fotos de una orden: listado, subida al host
// externo y eliminación.
type MediaUseCase struct {
	tx          TxRunner
	attachments repository.AttachmentRepository
	host        MediaHost
	folder      string // carpeta raíz en el host
	loc         *time.Location
	log         *logger.Logger
}

// NewMediaUseCase construye el caso de uso de adjuntos.
func NewMediaUseCase(
	tx TxRunner,
	attachmentRepo repository.AttachmentRepository,
	host MediaHost,
	folder string,
	loc *time.Location,
	log *logger.Logger,
) *MediaUseCase {
	return &MediaUseCase{
		tx:          tx,
		attachments: attachmentRepo,
		host:        host,
		folder:      folder,
		loc:         loc,
		log:         log,
	}
}

// List devuelve las fotos de la orden, más recientes primero.
func (uc *MediaUseCase) List(ctx context.Context, orderID int64) ([]dto.PhotoResponse, error) {
	photos, err := uc.attachments.ListPhotos(ctx, orderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PhotoResponse, 0, len(photos))
	for _, p := range photos {
		out = append(out, dto.PhotoResponse{
			ID:          p.ID,
			OrderID:     p.OrderID,
			RutaArchivo: p.StorageRef,
			NombreOrig:  p.OriginalName,
			MimeType:    p.MimeType,
			PublicID:    p.PublicID,
		})
	}
	return out, nil
}

// AddPhotos sube cada archivo al host (carpeta particionada por fecha del
// taller) y registra las filas en UNA transacción: si cualquier archivo falla,
// el lote completo se revierte y los ya subidos al host se destruyen
// best-effort para no dejar archivos sin registro.
func (uc *MediaUseCase) AddPhotos(ctx context.Context, orderID int64, files []PhotoUpload) error {
	if len(files) == 0 {
		return domain.ErrInvalidInput
	}
	folder := fmt.Sprintf("%s/%s", uc.folder, time.Now().In(uc.loc).Format("2006/01/02"))

	var uploaded []string
	err := uc.tx.RunAttachments(ctx, func(attachments repository.AttachmentRepository) error {
		for _, f := range files {
			url, publicID, err := uc.host.Upload(ctx, f.TmpPath, folder)
			if err != nil {
				return fmt.Errorf("subir %s: %w", f.OriginalName, err)
			}
			uploaded = append(uploaded, publicID)
			a := &entity.Attachment{
				OrderID:      orderID,
				StorageRef:   url,
				OriginalName: f.OriginalName,
				MimeType:     f.MimeType,
				PublicID:     &publicID,
			}
			if err := attachments.CreatePhoto(ctx, a); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// Liberar lo ya subido: las filas se revirtieron con la transacción.
		for _, publicID := range uploaded {
			if derr := uc.host.Destroy(ctx, publicID); derr != nil {
				uc.log.Warn().Err(derr).Str("public_id", publicID).Msg("no se pudo liberar la foto subida")
			}
		}
		return err
	}
	return nil
}

// RemovePhoto elimina una foto: primero intenta destruirla en el host (un
// fallo ahí se registra pero no detiene la operación) y después borra la fila.
// La autorización (solo admin) se evalúa en la ruta vía policy.
func (uc *MediaUseCase) RemovePhoto(ctx context.Context, photoID int64) error {
	photo, err := uc.attachments.GetPhoto(ctx, photoID)
	if err != nil {
		return err
	}
	if photo == nil {
		return domain.ErrPhotoNotFound
	}
	if photo.PublicID != nil {
		if err := uc.host.Destroy(ctx, *photo.PublicID); err != nil {
			uc.log.Warn().Err(err).Str("public_id", *photo.PublicID).Msg("no se pudo borrar la foto en el host externo")
		}
	}
	affected, err := uc.attachments.DeletePhoto(ctx, photoID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}
