package entity

// Kinds de adjuntos de una orden.
const (
	AttachmentPhoto = "foto"
	AttachmentAudio = "audio"
)

// Attachment es una foto o audio asociado a exactamente una orden.
// StorageRef es la URL remota (fotos en Cloudinary) o la ruta local (audios).
// PublicID identifica el recurso en el host externo; vacío para archivos locales.
type Attachment struct {
	ID           int64
	OrderID      int64
	StorageRef   string
	OriginalName string
	MimeType     string
	PublicID     *string
}
