package orders

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/dto"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/entity"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/policy"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/repository"
)

// Update aplica una actualización parcial sobre la orden. Cada campo del patch
// es independiente:
//
//   - estado y mecánico: cualquier operador autenticado.
//   - cobro: solo si la política lo permite (admin); para los demás se ignora
//     en silencio mientras el resto del patch sí se aplica.
//   - vin: se corrige sobre el VEHÍCULO ligado a la orden, dentro de la misma
//     transacción.
//
// Una etiqueta de estatus desconocida se rechaza con ErrInvalidStatus (no se
// asume Recibido). Devuelve ErrOrderNotFound si la orden no existe.
func (uc *OrdersUseCase) Update(ctx context.Context, orderID int64, in dto.UpdateOrderRequest, role string) error {
	var patch repository.OrderPatch

	if in.Estado != nil {
		status, err := entity.ParseStatusLabel(strings.TrimSpace(*in.Estado))
		if err != nil {
			return err
		}
		patch.Status = &status
	}

	if in.Cobro != nil && policy.Allows(role, policy.ActionOrderSetCharge) {
		patch.SetCharge = true
		if s := strings.TrimSpace(*in.Cobro); s != "" {
			amount, err := decimal.NewFromString(s)
			if err != nil {
				return domain.ErrInvalidInput
			}
			patch.Charge = &amount
		}
	}

	if in.Mecanico != nil {
		patch.SetMechanic = true
		patch.Mechanic = optional(*in.Mecanico)
	}

	return uc.tx.Run(ctx, func(r TxRepos) error {
		vehicleID, err := r.Orders.GetVehicleID(ctx, orderID)
		if err != nil {
			return err
		}
		if !patch.Empty() {
			if err := r.Orders.UpdateFields(ctx, orderID, patch); err != nil {
				return err
			}
		}
		if in.VIN != nil {
			if err := r.Vehicles.UpdateVIN(ctx, vehicleID, optional(*in.VIN)); err != nil {
				return err
			}
		}
		return nil
	})
}
