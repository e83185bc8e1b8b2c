package repository

import (
	"context"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para clientes.
// Create asigna el ID generado sobre la entidad.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
}
