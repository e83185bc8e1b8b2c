package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/media"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/orders"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/repository"
)

// Verificar en tiempo de compilación que TxRunner implementa ambos puertos.
var _ orders.TxRunner = (*TxRunner)(nil)
var _ media.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. El Rollback diferido cubre todos los caminos de salida.
func (r *TxRunner) Run(ctx context.Context, fn func(repos orders.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := orders.TxRepos{
		Customers:   NewCustomerRepository(tx),
		Vehicles:    NewVehicleRepository(tx),
		Orders:      NewOrderRepository(tx),
		Attachments: NewAttachmentRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAttachments inicia una transacción solo con el repo de adjuntos (lotes de fotos).
func (r *TxRunner) RunAttachments(ctx context.Context, fn func(attachments repository.AttachmentRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewAttachmentRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
