package entity

import "github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain"

// Status es el estatus del ciclo de vida de una orden. Se persiste como código
// numérico 1..6; el mapeo etiqueta <-> código es total y cerrado.
//
// El flujo normal avanza hacia adelante, pero cualquier estatus es alcanzable
// desde cualquier otro por selección directa (se permite corregir o revertir).
// Una orden Entregada sigue siendo editable.
type Status int

const (
	StatusReceived  Status = 1 // Recibido
	StatusDiagnosis Status = 2 // Diagnóstico
	StatusParts     Status = 3 // Espera de refacciones
	StatusRepair    Status = 4 // Reparación
	StatusReady     Status = 5 // Listo
	StatusDelivered Status = 6 // Entregado
)

var statusLabels = map[Status]string{
	StatusReceived:  "Recibido",
	StatusDiagnosis: "Diagnóstico",
	StatusParts:     "En espera de refacciones",
	StatusRepair:    "Reparación",
	StatusReady:     "Listo",
	StatusDelivered: "Entregado",
}

// Valid indica si el código está dentro del rango 1..6.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// String devuelve la etiqueta en español del estatus, o "" si es inválido.
func (s Status) String() string {
	return statusLabels[s]
}

// Code devuelve el código numérico persistido.
func (s Status) Code() int {
	return int(s)
}

// ParseStatusLabel convierte una etiqueta a su Status. Una etiqueta desconocida
// retorna ErrInvalidStatus: nunca se asume Recibido por defecto.
func ParseStatusLabel(label string) (Status, error) {
	for s, l := range statusLabels {
		if l == label {
			return s, nil
		}
	}
	return 0, domain.ErrInvalidStatus
}

// StatusFromCode valida y convierte un código persistido.
func StatusFromCode(code int) (Status, error) {
	s := Status(code)
	if !s.Valid() {
		return 0, domain.ErrInvalidStatus
	}
	return s, nil
}
