package dto

// CreateOrderRequest campos de la recepción (multipart form). Obligatorios:
// clienteNombre, telefono1, falla, marca y modelo; el resto es opcional.
type CreateOrderRequest struct {
	ClienteNombre string `json:"clienteNombre" form:"clienteNombre"`
	Telefono1     string `json:"telefono1" form:"telefono1"`
	Telefono2     string `json:"telefono2" form:"telefono2"`
	Falla         string `json:"falla" form:"falla"`
	Marca         string `json:"marca" form:"marca"`
	Modelo        string `json:"modelo" form:"modelo"`
	Anio          string `json:"anio" form:"anio"`
	Color         string `json:"color" form:"color"`
	VIN           string `json:"VIN" form:"VIN"`
}

// CreateOrderResponse ids generados por la recepción. AudioWarning se llena
// cuando la orden quedó registrada pero el audio opcional no pudo guardarse.
type CreateOrderResponse struct {
	OK           bool   `json:"ok"`
	OrderID      int64  `json:"id_orden"`
	VehicleID    int64  `json:"id_vehiculo"`
	CustomerID   int64  `json:"id_cliente"`
	AudioWarning string `json:"audio_warning,omitempty"`
}

// UpdateOrderRequest actualización parcial de una orden. Estructura explícita:
// solo estos cuatro campos se reconocen; cualquier otro campo del cuerpo se
// ignora. Un puntero nil significa "no tocar"; cadena vacía limpia el campo
// (cobro y mecánico).
type UpdateOrderRequest struct {
	Estado   *string `json:"estado"`
	VIN      *string `json:"vin"`
	Cobro    *string `json:"cobro"`
	Mecanico *string `json:"mecanico"`
}

// OrderRow fila de los listados y del detalle (orden + vehículo + cliente).
type OrderRow struct {
	OrderID    int64   `json:"id_orden"`
	Fecha      string  `json:"fecha_ingreso"`
	Hora       string  `json:"hora"`
	Cliente    string  `json:"cliente"`
	Telefono1  string  `json:"telefono1"`
	Telefono2  *string `json:"telefono2"`
	Marca      string  `json:"marca"`
	Modelo     string  `json:"modelo"`
	Anio       *int    `json:"anio"`
	Color      *string `json:"color"`
	VIN        *string `json:"VIN"`
	Falla      string  `json:"falla"`
	Cobro      *string `json:"cobro"`
	Mecanico   *string `json:"mecanico"`
	StatusCode int     `json:"id_estatus"`
	Estatus    string  `json:"estatus"`
}

// HistoryRequest filtros y paginación del historial (query string).
type HistoryRequest struct {
	Q      string `query:"q"`
	Activo string `query:"activo"` // "1" excluye entregadas
	Estado string `query:"estado"` // código 1..6
	Marca  string `query:"marca"`
	Modelo string `query:"modelo"`
	Anio   string `query:"anio"`
	Color  string `query:"color"`
	Page   string `query:"page"`
	Limit  string `query:"limit"`
}

// HistoryResponse página del historial con metadatos de paginación.
type HistoryResponse struct {
	OK         bool       `json:"ok"`
	Rows       []OrderRow `json:"rows"`
	Page       int        `json:"page"`
	PerPage    int        `json:"perPage"`
	Total      int        `json:"total"`
	TotalPages int        `json:"totalPages"`
}
