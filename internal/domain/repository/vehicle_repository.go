package repository

import (
	"context"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/entity"
)

// VehicleRepository define el puerto de persistencia para vehículos.
type VehicleRepository interface {
	// Create asigna el ID generado sobre la entidad.
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	// UpdateVIN corrige el VIN del vehículo; vin nil lo limpia.
	UpdateVIN(ctx context.Context, vehicleID int64, vin *string) error
}
