package repository

import (
	"context"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/entity"
)

// AttachmentRepository define el puerto de persistencia para adjuntos de una orden.
// Las fotos viven en orden_fotos y los audios en orden_audios.
type AttachmentRepository interface {
	CreatePhoto(ctx context.Context, a *entity.Attachment) error
	CreateAudio(ctx context.Context, a *entity.Attachment) error
	// ListPhotos devuelve las fotos de la orden, más recientes primero.
	ListPhotos(ctx context.Context, orderID int64) ([]entity.Attachment, error)
	// GetPhoto devuelve (nil, nil) si no existe.
	GetPhoto(ctx context.Context, id int64) (*entity.Attachment, error)
	// DeletePhoto devuelve las filas afectadas.
	DeletePhoto(ctx context.Context, id int64) (int64, error)
	// DeleteByOrder borra los registros de fotos y audios de la orden
	// (los archivos remotos no se purgan aquí).
	DeleteByOrder(ctx context.Context, orderID int64) error
}
