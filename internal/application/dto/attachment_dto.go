package dto

// PhotoResponse registro de una foto de la orden.
type PhotoResponse struct {
	ID          int64   `json:"id"`
	OrderID     int64   `json:"orden_id"`
	RutaArchivo string  `json:"ruta_archivo"`
	NombreOrig  string  `json:"nombre_original"`
	MimeType    string  `json:"mime_type"`
	PublicID    *string `json:"public_id"`
}
