package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/entity"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// summarySelect es la vista desnormalizada orden + vehículo + cliente.
const summarySelect = `
	SELECT
		o.id_orden,
		to_char(o.fecha_ingreso, 'YYYY-MM-DD'),
		to_char(o.hora_ingreso, 'HH24:MI'),
		c.nombre,
		c.telefono1,
		c.telefono2,
		v.marca,
		v.modelo,
		v.anio,
		v.color,
		v.vin,
		o.falla_reportada,
		o.cobro,
		o.mecanico,
		o.id_estatus
	FROM ordenes o
	JOIN vehiculos v ON v.id_vehiculo = o.id_vehiculo
	JOIN clientes  c ON c.id_cliente  = v.id_cliente`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSummary(row rowScanner) (entity.OrderSummary, error) {
	var s entity.OrderSummary
	var charge decimal.NullDecimal
	err := row.Scan(
		&s.OrderID, &s.IntakeDate, &s.IntakeTime,
		&s.CustomerName, &s.Phone1, &s.Phone2,
		&s.Make, &s.Model, &s.Year, &s.Color, &s.VIN,
		&s.ReportedIssue, &charge, &s.Mechanic, &s.StatusCode,
	)
	if err != nil {
		return s, err
	}
	if charge.Valid {
		s.Charge = &charge.Decimal
	}
	return s, nil
}

// Create inserta la orden y asigna el id generado.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO ordenes (id_vehiculo, fecha_ingreso, hora_ingreso, falla_reportada, id_estatus)
		VALUES ($1, $2::date, $3::time, $4, $5)
		RETURNING id_orden`
	err := r.q.QueryRow(ctx, query,
		order.VehicleID, order.IntakeDate, order.IntakeTime, order.ReportedIssue, order.Status.Code(),
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert orden: %w", err)
	}
	return nil
}

// GetSummary devuelve la vista de una orden; (nil, nil) si no existe.
func (r *OrderRepo) GetSummary(ctx context.Context, orderID int64) (*entity.OrderSummary, error) {
	s, err := scanSummary(r.q.QueryRow(ctx, summarySelect+` WHERE o.id_orden = $1`, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden: %w", err)
	}
	return &s, nil
}

// GetVehicleID devuelve el vehículo ligado a la orden.
func (r *OrderRepo) GetVehicleID(ctx context.Context, orderID int64) (int64, error) {
	var vehicleID int64
	err := r.q.QueryRow(ctx, `SELECT id_vehiculo FROM ordenes WHERE id_orden = $1`, orderID).
		Scan(&vehicleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrOrderNotFound
		}
		return 0, fmt.Errorf("get orden vehiculo: %w", err)
	}
	return vehicleID, nil
}

// UpdateFields aplica el patch con un SET dinámico; sin campos no hace nada.
func (r *OrderRepo) UpdateFields(ctx context.Context, orderID int64, patch repository.OrderPatch) error {
	set := make([]string, 0, 3)
	args := []any{orderID}

	if patch.Status != nil {
		args = append(args, patch.Status.Code())
		set = append(set, fmt.Sprintf("id_estatus = $%d", len(args)))
	}
	if patch.SetCharge {
		charge := decimal.NullDecimal{}
		if patch.Charge != nil {
			charge = decimal.NullDecimal{Decimal: *patch.Charge, Valid: true}
		}
		args = append(args, charge)
		set = append(set, fmt.Sprintf("cobro = $%d", len(args)))
	}
	if patch.SetMechanic {
		args = append(args, patch.Mechanic)
		set = append(set, fmt.Sprintf("mecanico = $%d", len(args)))
	}
	if len(set) == 0 {
		return nil
	}

	query := fmt.Sprintf("UPDATE ordenes SET %s WHERE id_orden = $1", strings.Join(set, ", "))
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update orden: %w", err)
	}
	return nil
}

// ListToday devuelve las órdenes de hoy (cualquier estatus) más las de días
// anteriores que no estén entregadas.
func (r *OrderRepo) ListToday(ctx context.Context, today string) ([]entity.OrderSummary, error) {
	query := summarySelect + `
	WHERE o.fecha_ingreso = $1::date
	   OR (o.fecha_ingreso < $1::date AND o.id_estatus <> 6)
	ORDER BY o.fecha_ingreso DESC, o.hora_ingreso DESC`
	rows, err := r.q.Query(ctx, query, today)
	if err != nil {
		return nil, fmt.Errorf("list hoy: %w", err)
	}
	defer rows.Close()
	return collectSummaries(rows)
}

// buildHistoryWhere arma el WHERE del historial. Los filtros de texto llegan
// ya plegados (minúsculas sin acentos); las columnas se pliegan con
// unaccent(lower(...)) para comparar en la misma forma.
func buildHistoryWhere(f repository.HistoryFilter) (string, []any) {
	var where []string
	var args []any

	like := func(expr string, value string) {
		args = append(args, "%"+value+"%")
		where = append(where, fmt.Sprintf(expr, len(args)))
	}

	if f.Text != "" {
		args = append(args, "%"+f.Text+"%")
		n := len(args)
		where = append(where, fmt.Sprintf(`(
			unaccent(lower(c.nombre)) LIKE $%[1]d
			OR c.telefono1 LIKE $%[1]d
			OR COALESCE(c.telefono2, '') LIKE $%[1]d
			OR unaccent(lower(v.marca)) LIKE $%[1]d
			OR unaccent(lower(v.modelo)) LIKE $%[1]d
			OR unaccent(lower(COALESCE(v.color, ''))) LIKE $%[1]d
			OR lower(COALESCE(v.vin, '')) LIKE $%[1]d
		)`, n))
	}
	if f.Make != "" {
		like("unaccent(lower(v.marca)) LIKE $%d", f.Make)
	}
	if f.Model != "" {
		like("unaccent(lower(v.modelo)) LIKE $%d", f.Model)
	}
	if f.Color != "" {
		like("unaccent(lower(COALESCE(v.color, ''))) LIKE $%d", f.Color)
	}
	if f.Year != nil {
		args = append(args, *f.Year)
		where = append(where, fmt.Sprintf("v.anio = $%d", len(args)))
	}
	if f.Status != nil {
		args = append(args, f.Status.Code())
		where = append(where, fmt.Sprintf("o.id_estatus = $%d", len(args)))
	}
	if f.ActiveOnly {
		where = append(where, "o.id_estatus <> 6")
	}

	if len(where) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(where, " AND "), args
}

// SearchCount cuenta el total de filas del filtro.
func (r *OrderRepo) SearchCount(ctx context.Context, f repository.HistoryFilter) (int, error) {
	whereSQL, args := buildHistoryWhere(f)
	query := `
	SELECT COUNT(*)
	FROM ordenes o
	JOIN vehiculos v ON v.id_vehiculo = o.id_vehiculo
	JOIN clientes  c ON c.id_cliente  = v.id_cliente` + whereSQL
	var total int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count historial: %w", err)
	}
	return total, nil
}

// Search devuelve la página del historial; el orden fecha DESC, hora DESC,
// id DESC es estable para que la paginación sea determinística.
func (r *OrderRepo) Search(ctx context.Context, f repository.HistoryFilter) ([]entity.OrderSummary, error) {
	whereSQL, args := buildHistoryWhere(f)
	args = append(args, f.Limit)
	limitPos := len(args)
	args = append(args, f.Offset)
	offsetPos := len(args)

	query := summarySelect + whereSQL + fmt.Sprintf(`
	ORDER BY o.fecha_ingreso DESC, o.hora_ingreso DESC, o.id_orden DESC
	LIMIT $%d OFFSET $%d`, limitPos, offsetPos)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("historial: %w", err)
	}
	defer rows.Close()
	return collectSummaries(rows)
}

// Delete elimina la orden y devuelve las filas afectadas.
func (r *OrderRepo) Delete(ctx context.Context, orderID int64) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM ordenes WHERE id_orden = $1`, orderID)
	if err != nil {
		return 0, fmt.Errorf("delete orden: %w", err)
	}
	return tag.RowsAffected(), nil
}

func collectSummaries(rows pgx.Rows) ([]entity.OrderSummary, error) {
	var list []entity.OrderSummary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan orden: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
