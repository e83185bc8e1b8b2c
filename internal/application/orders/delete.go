package orders

import (
	"context"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain"
)

// Delete elimina la orden y los REGISTROS de sus adjuntos en una sola
// transacción. Los archivos alojados en el host externo no se purgan aquí;
// quedan huérfanos. La autorización (solo admin) se evalúa en la ruta vía policy.
func (uc *OrdersUseCase) Delete(ctx context.Context, orderID int64) error {
	return uc.tx.Run(ctx, func(r TxRepos) error {
		if err := r.Attachments.DeleteByOrder(ctx, orderID); err != nil {
			return err
		}
		affected, err := r.Orders.Delete(ctx, orderID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrOrderNotFound
		}
		return nil
	})
}
