package postgres

import (
	"context"
	"fmt"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/entity"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo implementación de VehicleRepository (usable con pool o tx).
type VehicleRepo struct {
	q Querier
}

// NewVehicleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVehicleRepository(q Querier) *VehicleRepo {
	return &VehicleRepo{q: q}
}

// Create persiste un vehículo nuevo y asigna el id generado.
func (r *VehicleRepo) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	query := `
		INSERT INTO vehiculos (id_cliente, marca, modelo, anio, color, vin)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_vehiculo`
	err := r.q.QueryRow(ctx, query,
		vehicle.CustomerID, vehicle.Make, vehicle.Model, vehicle.Year, vehicle.Color, vehicle.VIN,
	).Scan(&vehicle.ID)
	if err != nil {
		return fmt.Errorf("insert vehiculo: %w", err)
	}
	return nil
}

// UpdateVIN corrige el VIN del vehículo; vin nil lo limpia.
func (r *VehicleRepo) UpdateVIN(ctx context.Context, vehicleID int64, vin *string) error {
	_, err := r.q.Exec(ctx, `UPDATE vehiculos SET vin = $2 WHERE id_vehiculo = $1`, vehicleID, vin)
	if err != nil {
		return fmt.Errorf("update vin: %w", err)
	}
	return nil
}
