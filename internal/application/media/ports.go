package media

import (
	"context"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/repository"
)

// MediaHost es el host externo de imágenes (Cloudinary). Upload sube el
// archivo a la carpeta indicada y devuelve la URL servible y el public_id
// con el que luego puede destruirse.
type MediaHost interface {
	Upload(ctx context.Context, localPath, folder string) (url, publicID string, err error)
	Destroy(ctx context.Context, publicID string) error
}

// TxRunner ejecuta fn con un repositorio de adjuntos atado a una transacción.
type TxRunner interface {
	RunAttachments(ctx context.Context, fn func(attachments repository.AttachmentRepository) error) error
}
