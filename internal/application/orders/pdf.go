package orders

import (
	"context"
	"fmt"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/dto"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/repository"
)

// TicketGenerator puerto del generador del comprobante de recepción imprimible.
type TicketGenerator interface {
	GenerateTicket(ctx context.Context, order dto.OrderRow) ([]byte, error)
}

// TicketUseCase genera el comprobante de recepción en PDF de una orden.
type TicketUseCase struct {
	orders    repository.OrderRepository
	generator TicketGenerator
}

// NewTicketUseCase construye el caso de uso.
func NewTicketUseCase(orders repository.OrderRepository, generator TicketGenerator) *TicketUseCase {
	return &TicketUseCase{orders: orders, generator: generator}
}

// Generate devuelve los bytes del PDF del comprobante de la orden.
func (uc *TicketUseCase) Generate(ctx context.Context, orderID int64) ([]byte, error) {
	summary, err := uc.orders.GetSummary(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("consultar orden %d: %w", orderID, err)
	}
	if summary == nil {
		return nil, domain.ErrOrderNotFound
	}
	pdf, err := uc.generator.GenerateTicket(ctx, toOrderRow(*summary))
	if err != nil {
		return nil, fmt.Errorf("generar comprobante de la orden %d: %w", orderID, err)
	}
	return pdf, nil
}
