package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/entity"
)

// OrderPatch es la actualización parcial de una orden. Cada campo es
// independiente: los flags Set* distinguen "no tocar" de "asignar NULL".
type OrderPatch struct {
	Status      *entity.Status
	SetCharge   bool
	Charge      *decimal.Decimal // nil con SetCharge=true limpia el cobro
	SetMechanic bool
	Mechanic    *string // nil con SetMechanic=true limpia el mecánico
}

// Empty indica si el patch no toca ningún campo de la orden.
func (p OrderPatch) Empty() bool {
	return p.Status == nil && !p.SetCharge && !p.SetMechanic
}

// HistoryFilter son los filtros del historial; se combinan con AND.
// Los substrings llegan ya plegados (minúsculas sin diacríticos) desde el use case.
type HistoryFilter struct {
	Text       string // busca en nombre, teléfonos, marca, modelo, color y VIN
	Make       string
	Model      string
	Color      string
	Year       *int
	Status     *entity.Status
	ActiveOnly bool // excluye Entregado
	Limit      int
	Offset     int
}

// OrderRepository define el puerto de persistencia para órdenes de servicio.
type OrderRepository interface {
	// Create inserta la orden y asigna el ID generado sobre la entidad.
	Create(ctx context.Context, order *entity.Order) error
	// GetSummary devuelve la vista orden+vehículo+cliente; (nil, nil) si no existe.
	GetSummary(ctx context.Context, orderID int64) (*entity.OrderSummary, error)
	// GetVehicleID devuelve el vehículo ligado a la orden; domain.ErrOrderNotFound si no existe.
	GetVehicleID(ctx context.Context, orderID int64) (int64, error)
	// UpdateFields aplica el patch sobre la fila de la orden.
	UpdateFields(ctx context.Context, orderID int64, patch OrderPatch) error
	// ListToday devuelve las órdenes con fecha de ingreso = today (YYYY-MM-DD)
	// más las de días anteriores aún no entregadas; fecha DESC, hora DESC.
	ListToday(ctx context.Context, today string) ([]entity.OrderSummary, error)
	// SearchCount cuenta el total de filas que satisfacen el filtro.
	SearchCount(ctx context.Context, f HistoryFilter) (int, error)
	// Search devuelve la página de resultados; fecha DESC, hora DESC, id DESC.
	Search(ctx context.Context, f HistoryFilter) ([]entity.OrderSummary, error)
	// Delete elimina la orden y devuelve las filas afectadas.
	Delete(ctx context.Context, orderID int64) (int64, error)
}
