package orders

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/dto"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/entity"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/repository"
	"github.com/AlanArratia12/MasterServicioAutomotriz/pkg/logger"
)

// AudioUpload es el audio opcional capturado durante la recepción, ya guardado
// en un archivo temporal por el handler.
type AudioUpload struct {
	TmpPath      string
	OriginalName string
	MimeType     string
}

// OrdersUseCase reúne los casos de uso de órdenes de servicio: recepción,
// actualización parcial, listados, historial y eliminación.
type OrdersUseCase struct {
	tx          TxRunner
	orders      repository.OrderRepository
	attachments repository.AttachmentRepository
	audio       AudioStore
	loc         *time.Location
	log         *logger.Logger
}

// NewOrdersUseCase construye el caso de uso. loc es la zona horaria operativa
// del taller (fechas de ingreso y cortes de "hoy").
func NewOrdersUseCase(
	tx TxRunner,
	orderRepo repository.OrderRepository,
	attachmentRepo repository.AttachmentRepository,
	audio AudioStore,
	loc *time.Location,
	log *logger.Logger,
) *OrdersUseCase {
	return &OrdersUseCase{
		tx:          tx,
		orders:      orderRepo,
		attachments: attachmentRepo,
		audio:       audio,
		loc:         loc,
		log:         log,
	}
}

// Intake registra cliente, vehículo y orden como una sola transacción; la
// orden nace en Recibido con la fecha y hora actuales del taller.
//
// El audio opcional se registra DESPUÉS del commit, cuando ya existe el id de
// la orden: si falla, la recepción queda confirmada y el problema se reporta
// como advertencia, nunca como error de la operación.
func (uc *OrdersUseCase) Intake(ctx context.Context, in dto.CreateOrderRequest, audioFile *AudioUpload) (*dto.CreateOrderResponse, error) {
	var missing []string
	if strings.TrimSpace(in.ClienteNombre) == "" {
		missing = append(missing, "clienteNombre")
	}
	if strings.TrimSpace(in.Telefono1) == "" {
		missing = append(missing, "telefono1")
	}
	if strings.TrimSpace(in.Falla) == "" {
		missing = append(missing, "falla")
	}
	if strings.TrimSpace(in.Marca) == "" {
		missing = append(missing, "marca")
	}
	if strings.TrimSpace(in.Modelo) == "" {
		missing = append(missing, "modelo")
	}
	if len(missing) > 0 {
		return nil, &domain.ValidationError{Missing: missing}
	}

	var year *int
	if s := strings.TrimSpace(in.Anio); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			year = &n
		}
	}

	now := time.Now().In(uc.loc)
	order := &entity.Order{
		IntakeDate:    now.Format("2006-01-02"),
		IntakeTime:    now.Format("15:04:05"),
		ReportedIssue: strings.TrimSpace(in.Falla),
		Status:        entity.StatusReceived,
	}
	customer := &entity.Customer{
		Name:   strings.TrimSpace(in.ClienteNombre),
		Phone1: strings.TrimSpace(in.Telefono1),
		Phone2: optional(in.Telefono2),
	}
	vehicle := &entity.Vehicle{
		Make:  strings.TrimSpace(in.Marca),
		Model: strings.TrimSpace(in.Modelo),
		Year:  year,
		Color: optional(in.Color),
		VIN:   optional(in.VIN),
	}

	err := uc.tx.Run(ctx, func(r TxRepos) error {
		if err := r.Customers.Create(ctx, customer); err != nil {
			return err
		}
		vehicle.CustomerID = customer.ID
		if err := r.Vehicles.Create(ctx, vehicle); err != nil {
			return err
		}
		order.VehicleID = vehicle.ID
		return r.Orders.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.CreateOrderResponse{
		OK:         true,
		OrderID:    order.ID,
		VehicleID:  vehicle.ID,
		CustomerID: customer.ID,
	}

	if audioFile != nil {
		if warn := uc.registerAudio(ctx, order.ID, audioFile); warn != "" {
			resp.AudioWarning = warn
		}
	}
	return resp, nil
}

// registerAudio guarda el audio y su registro; devuelve la advertencia en caso
// de fallo (la orden ya está confirmada en este punto).
func (uc *OrdersUseCase) registerAudio(ctx context.Context, orderID int64, audio *AudioUpload) string {
	path, err := uc.audio.SaveOrderAudio(ctx, orderID, audio.TmpPath, audio.OriginalName)
	if err != nil {
		uc.log.Warn().Err(err).Int64("orden", orderID).Msg("no se pudo guardar el audio de recepción")
		return "el audio no pudo guardarse"
	}
	a := &entity.Attachment{
		OrderID:      orderID,
		StorageRef:   path,
		OriginalName: audio.OriginalName,
		MimeType:     audio.MimeType,
	}
	if err := uc.attachments.CreateAudio(ctx, a); err != nil {
		uc.log.Warn().Err(err).Int64("orden", orderID).Msg("no se pudo registrar el audio de recepción")
		return "el audio no pudo registrarse"
	}
	return ""
}

// optional convierte una cadena de formulario en puntero: vacío -> nil.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
