package dto

// ErrorResponse cuerpo de error HTTP. El campo "error" es estable para los
// clientes; "code" es un identificador corto para depuración.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// AckResponse respuesta mínima de éxito.
type AckResponse struct {
	OK bool `json:"ok"`
}
