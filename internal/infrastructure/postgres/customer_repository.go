package postgres

import (
	"context"
	"fmt"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/entity"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un cliente nuevo y asigna el id generado.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO clientes (nombre, telefono1, telefono2)
		VALUES ($1, $2, $3)
		RETURNING id_cliente`
	err := r.q.QueryRow(ctx, query, customer.Name, customer.Phone1, customer.Phone2).
		Scan(&customer.ID)
	if err != nil {
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}
