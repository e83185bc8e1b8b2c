package orders

import (
	"context"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/dto"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/entity"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/repository"
)

// Límites de paginación del historial.
const (
	defaultPageSize = 200
	maxPageSize     = 1000
)

// Today lista las órdenes con ingreso hoy (zona horaria del taller) más todas
// las de días anteriores que aún no se entregan, para que nada pendiente
// desaparezca del tablero a medianoche.
func (uc *OrdersUseCase) Today(ctx context.Context) ([]dto.OrderRow, error) {
	today := time.Now().In(uc.loc).Format("2006-01-02")
	rows, err := uc.orders.ListToday(ctx, today)
	if err != nil {
		return nil, err
	}
	return toOrderRows(rows), nil
}

// Detail devuelve la vista completa de una orden; ErrOrderNotFound si no existe.
func (uc *OrdersUseCase) Detail(ctx context.Context, orderID int64) (*dto.OrderRow, error) {
	summary, err := uc.orders.GetSummary(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return nil, domain.ErrOrderNotFound
	}
	row := toOrderRow(*summary)
	return &row, nil
}

// History busca en el historial con filtros combinados por AND y paginación.
// El tamaño de página se acota a [1, 1000]; pedir una página más allá del
// total devuelve la última página válida, nunca una página vacía.
func (uc *OrdersUseCase) History(ctx context.Context, in dto.HistoryRequest) (*dto.HistoryResponse, error) {
	limit := defaultPageSize
	if n, err := strconv.Atoi(in.Limit); err == nil {
		limit = n
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	page := 1
	if n, err := strconv.Atoi(in.Page); err == nil && n > 1 {
		page = n
	}

	filter := repository.HistoryFilter{
		Text:       foldSearch(in.Q),
		Make:       foldSearch(in.Marca),
		Model:      foldSearch(in.Modelo),
		Color:      foldSearch(in.Color),
		ActiveOnly: in.Activo == "1",
		Limit:      limit,
	}
	if n, err := strconv.Atoi(strings.TrimSpace(in.Anio)); err == nil {
		filter.Year = &n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(in.Estado)); err == nil {
		if status, err := entity.StatusFromCode(n); err == nil {
			filter.Status = &status
		}
	}

	total, err := uc.orders.SearchCount(ctx, filter)
	if err != nil {
		return nil, err
	}
	totalPages := 1
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	if page > totalPages {
		page = totalPages
	}
	filter.Offset = (page - 1) * limit

	rows, err := uc.orders.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.HistoryResponse{
		OK:         true,
		Rows:       toOrderRows(rows),
		Page:       page,
		PerPage:    limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// foldSearch normaliza un filtro de búsqueda: minúsculas y sin diacríticos,
// para que "Martínez" y "martinez" coincidan. El SQL aplica unaccent() sobre
// las columnas, así que ambos lados comparan en la misma forma.
func foldSearch(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

func toOrderRows(list []entity.OrderSummary) []dto.OrderRow {
	rows := make([]dto.OrderRow, 0, len(list))
	for _, s := range list {
		rows = append(rows, toOrderRow(s))
	}
	return rows
}

func toOrderRow(s entity.OrderSummary) dto.OrderRow {
	var cobro *string
	if s.Charge != nil {
		v := s.Charge.String()
		cobro = &v
	}
	return dto.OrderRow{
		OrderID:    s.OrderID,
		Fecha:      s.IntakeDate,
		Hora:       s.IntakeTime,
		Cliente:    s.CustomerName,
		Telefono1:  s.Phone1,
		Telefono2:  s.Phone2,
		Marca:      s.Make,
		Modelo:     s.Model,
		Anio:       s.Year,
		Color:      s.Color,
		VIN:        s.VIN,
		Falla:      s.ReportedIssue,
		Cobro:      cobro,
		Mecanico:   s.Mechanic,
		StatusCode: s.StatusCode,
		Estatus:    entity.Status(s.StatusCode).String(),
	}
}
