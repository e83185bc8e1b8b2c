package orders_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/dto"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/orders"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/entity"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/repository"
	"github.com/AlanArratia12/MasterServicioAutomotriz/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	created []*entity.Customer
	err     error
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	if f.err != nil {
		return f.err
	}
	c.ID = int64(len(f.created) + 1)
	f.created = append(f.created, c)
	return nil
}

type fakeVehicleRepo struct {
	created  []*entity.Vehicle
	vinCalls []struct {
		VehicleID int64
		VIN       *string
	}
	err error
}

func (f *fakeVehicleRepo) Create(_ context.Context, v *entity.Vehicle) error {
	if f.err != nil {
		return f.err
	}
	v.ID = int64(len(f.created) + 1)
	f.created = append(f.created, v)
	return nil
}

func (f *fakeVehicleRepo) UpdateVIN(_ context.Context, vehicleID int64, vin *string) error {
	f.vinCalls = append(f.vinCalls, struct {
		VehicleID int64
		VIN       *string
	}{vehicleID, vin})
	return f.err
}

type fakeOrderRepo struct {
	created    []*entity.Order
	vehicleIDs map[int64]int64 // orden -> vehículo
	summaries  map[int64]entity.OrderSummary
	patches    map[int64]repository.OrderPatch
	total      int
	lastFilter repository.HistoryFilter
	rows       []entity.OrderSummary
	deleted    []int64
	createErr  error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		vehicleIDs: map[int64]int64{},
		summaries:  map[int64]entity.OrderSummary{},
		patches:    map[int64]repository.OrderPatch{},
	}
}

func (f *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	o.ID = int64(len(f.created) + 100)
	f.created = append(f.created, o)
	return nil
}

func (f *fakeOrderRepo) GetSummary(_ context.Context, orderID int64) (*entity.OrderSummary, error) {
	s, ok := f.summaries[orderID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeOrderRepo) GetVehicleID(_ context.Context, orderID int64) (int64, error) {
	id, ok := f.vehicleIDs[orderID]
	if !ok {
		return 0, domain.ErrOrderNotFound
	}
	return id, nil
}

func (f *fakeOrderRepo) UpdateFields(_ context.Context, orderID int64, patch repository.OrderPatch) error {
	f.patches[orderID] = patch
	return nil
}

func (f *fakeOrderRepo) ListToday(_ context.Context, _ string) ([]entity.OrderSummary, error) {
	return f.rows, nil
}

func (f *fakeOrderRepo) SearchCount(_ context.Context, filter repository.HistoryFilter) (int, error) {
	f.lastFilter = filter
	return f.total, nil
}

func (f *fakeOrderRepo) Search(_ context.Context, filter repository.HistoryFilter) ([]entity.OrderSummary, error) {
	f.lastFilter = filter
	return f.rows, nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, orderID int64) (int64, error) {
	if _, ok := f.vehicleIDs[orderID]; !ok {
		return 0, nil
	}
	f.deleted = append(f.deleted, orderID)
	return 1, nil
}

type fakeAttachmentRepo struct {
	audios        []*entity.Attachment
	photos        []*entity.Attachment
	deletedOrders []int64
	audioErr      error
}

func (f *fakeAttachmentRepo) CreatePhoto(_ context.Context, a *entity.Attachment) error {
	a.ID = int64(len(f.photos) + 1)
	f.photos = append(f.photos, a)
	return nil
}

func (f *fakeAttachmentRepo) CreateAudio(_ context.Context, a *entity.Attachment) error {
	if f.audioErr != nil {
		return f.audioErr
	}
	a.ID = int64(len(f.audios) + 1)
	f.audios = append(f.audios, a)
	return nil
}

func (f *fakeAttachmentRepo) ListPhotos(_ context.Context, orderID int64) ([]entity.Attachment, error) {
	var out []entity.Attachment
	for _, p := range f.photos {
		if p.OrderID == orderID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeAttachmentRepo) GetPhoto(_ context.Context, id int64) (*entity.Attachment, error) {
	for _, p := range f.photos {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeAttachmentRepo) DeletePhoto(_ context.Context, id int64) (int64, error) {
	for i, p := range f.photos {
		if p.ID == id {
			f.photos = append(f.photos[:i], f.photos[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeAttachmentRepo) DeleteByOrder(_ context.Context, orderID int64) error {
	f.deletedOrders = append(f.deletedOrders, orderID)
	return nil
}

// fakeTxRunner ejecuta fn directamente sobre los fakes; el error de fn se
// propaga igual que lo haría un rollback real.
type fakeTxRunner struct {
	repos orders.TxRepos
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(r orders.TxRepos) error) error {
	return fn(f.repos)
}

type fakeAudioStore struct {
	saved []string
	err   error
}

func (f *fakeAudioStore) SaveOrderAudio(_ context.Context, orderID int64, tmpPath, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	path := "uploads/ordenes/audio.webm"
	f.saved = append(f.saved, tmpPath)
	return path, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type ordersFixture struct {
	uc          *orders.OrdersUseCase
	customers   *fakeCustomerRepo
	vehicles    *fakeVehicleRepo
	orders      *fakeOrderRepo
	attachments *fakeAttachmentRepo
	audio       *fakeAudioStore
}

func newOrdersFixture(t *testing.T) *ordersFixture {
	t.Helper()
	customers := &fakeCustomerRepo{}
	vehicles := &fakeVehicleRepo{}
	orderRepo := newFakeOrderRepo()
	attachments := &fakeAttachmentRepo{}
	audio := &fakeAudioStore{}
	tx := &fakeTxRunner{repos: orders.TxRepos{
		Customers:   customers,
		Vehicles:    vehicles,
		Orders:      orderRepo,
		Attachments: attachments,
	}}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	uc := orders.NewOrdersUseCase(tx, orderRepo, attachments, audio, time.UTC, log)
	return &ordersFixture{
		uc:          uc,
		customers:   customers,
		vehicles:    vehicles,
		orders:      orderRepo,
		attachments: attachments,
		audio:       audio,
	}
}

func validIntake() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		ClienteNombre: "Juan Pérez",
		Telefono1:     "5551234567",
		Falla:         "No enciende",
		Marca:         "Nissan",
		Modelo:        "Tsuru",
		Anio:          "2004",
		Color:         "Blanco",
	}
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Recepción
// ──────────────────────────────────────────────────────────────────────────────

func TestIntake_CreaClienteVehiculoYOrden(t *testing.T) {
	f := newOrdersFixture(t)

	resp, err := f.uc.Intake(context.Background(), validIntake(), nil)
	require.NoError(t, err)

	assert.True(t, resp.OK)
	assert.Equal(t, int64(100), resp.OrderID)
	assert.Equal(t, int64(1), resp.VehicleID)
	assert.Equal(t, int64(1), resp.CustomerID)
	assert.Empty(t, resp.AudioWarning)

	require.Len(t, f.orders.created, 1)
	order := f.orders.created[0]
	assert.Equal(t, entity.StatusReceived, order.Status, "la orden debe nacer en Recibido")
	assert.Equal(t, resp.VehicleID, order.VehicleID)

	require.Len(t, f.vehicles.created, 1)
	vehicle := f.vehicles.created[0]
	assert.Equal(t, resp.CustomerID, vehicle.CustomerID)
	require.NotNil(t, vehicle.Year)
	assert.Equal(t, 2004, *vehicle.Year)

	require.Len(t, f.customers.created, 1)
	assert.Nil(t, f.customers.created[0].Phone2, "teléfono 2 vacío debe guardarse como NULL")
}

func TestIntake_FaltanCamposObligatorios(t *testing.T) {
	f := newOrdersFixture(t)

	in := validIntake()
	in.ClienteNombre = "  "
	in.Marca = ""

	_, err := f.uc.Intake(context.Background(), in, nil)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"clienteNombre", "marca"}, verr.Missing)
	assert.Empty(t, f.customers.created, "no debe crearse nada si la validación falla")
}

func TestIntake_ErrorEnTransaccionNoConfirma(t *testing.T) {
	f := newOrdersFixture(t)
	f.orders.createErr = errors.New("fallo de base de datos")

	_, err := f.uc.Intake(context.Background(), validIntake(), nil)
	require.Error(t, err)
	assert.Empty(t, f.orders.created)
}

func TestIntake_AudioFallidoEsAdvertenciaNoError(t *testing.T) {
	f := newOrdersFixture(t)
	f.audio.err = errors.New("disco lleno")

	resp, err := f.uc.Intake(context.Background(), validIntake(), &orders.AudioUpload{
		TmpPath:      "/tmp/audio.webm",
		OriginalName: "nota.webm",
		MimeType:     "audio/webm",
	})
	require.NoError(t, err, "el fallo del audio no debe tirar la recepción")
	assert.True(t, resp.OK)
	assert.NotEmpty(t, resp.AudioWarning)
	assert.Len(t, f.orders.created, 1, "la orden queda confirmada de todas formas")
}

func TestIntake_AudioRegistrado(t *testing.T) {
	f := newOrdersFixture(t)

	resp, err := f.uc.Intake(context.Background(), validIntake(), &orders.AudioUpload{
		TmpPath:      "/tmp/audio.webm",
		OriginalName: "nota.webm",
		MimeType:     "audio/webm",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.AudioWarning)
	require.Len(t, f.attachments.audios, 1)
	assert.Equal(t, resp.OrderID, f.attachments.audios[0].OrderID)
	assert.Equal(t, "audio/webm", f.attachments.audios[0].MimeType)
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualización parcial
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_EstatusDesconocidoSeRechaza(t *testing.T) {
	f := newOrdersFixture(t)
	f.orders.vehicleIDs[7] = 3

	err := f.uc.Update(context.Background(), 7, dto.UpdateOrderRequest{
		Estado: strPtr("Pintura"),
	}, entity.RoleAdmin)
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
	assert.Empty(t, f.orders.patches, "no debe aplicarse ningún cambio")
}

func TestUpdate_CobroIgnoradoParaEmpleado(t *testing.T) {
	f := newOrdersFixture(t)
	f.orders.vehicleIDs[7] = 3

	err := f.uc.Update(context.Background(), 7, dto.UpdateOrderRequest{
		Estado: strPtr("Listo"),
		Cobro:  strPtr("1500.00"),
	}, entity.RoleEmpleado)
	require.NoError(t, err)

	patch := f.orders.patches[7]
	require.NotNil(t, patch.Status)
	assert.Equal(t, entity.StatusReady, *patch.Status, "el estatus sí se aplica")
	assert.False(t, patch.SetCharge, "el cobro de un empleado se ignora en silencio")
}

func TestUpdate_CobroDeAdmin(t *testing.T) {
	f := newOrdersFixture(t)
	f.orders.vehicleIDs[7] = 3

	err := f.uc.Update(context.Background(), 7, dto.UpdateOrderRequest{
		Cobro: strPtr("1500.50"),
	}, entity.RoleAdmin)
	require.NoError(t, err)

	patch := f.orders.patches[7]
	require.True(t, patch.SetCharge)
	require.NotNil(t, patch.Charge)
	assert.True(t, patch.Charge.Equal(decimal.RequireFromString("1500.50")))
}

func TestUpdate_CobroVacioLimpiaElCampo(t *testing.T) {
	f := newOrdersFixture(t)
	f.orders.vehicleIDs[7] = 3

	err := f.uc.Update(context.Background(), 7, dto.UpdateOrderRequest{
		Cobro: strPtr(""),
	}, entity.RoleAdmin)
	require.NoError(t, err)

	patch := f.orders.patches[7]
	assert.True(t, patch.SetCharge)
	assert.Nil(t, patch.Charge, "cobro vacío significa poner NULL")
}

func TestUpdate_CobroInvalido(t *testing.T) {
	f := newOrdersFixture(t)
	f.orders.vehicleIDs[7] = 3

	err := f.uc.Update(context.Background(), 7, dto.UpdateOrderRequest{
		Cobro: strPtr("mil quinientos"),
	}, entity.RoleAdmin)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_VINCorrigeElVehiculoLigado(t *testing.T) {
	f := newOrdersFixture(t)
	f.orders.vehicleIDs[7] = 31

	err := f.uc.Update(context.Background(), 7, dto.UpdateOrderRequest{
		VIN: strPtr("3N1EB31S04K123456"),
	}, entity.RoleEmpleado)
	require.NoError(t, err)

	require.Len(t, f.vehicles.vinCalls, 1)
	assert.Equal(t, int64(31), f.vehicles.vinCalls[0].VehicleID)
	require.NotNil(t, f.vehicles.vinCalls[0].VIN)
	assert.Equal(t, "3N1EB31S04K123456", *f.vehicles.vinCalls[0].VIN)
	assert.Empty(t, f.orders.patches, "sin otros campos no se toca la fila de la orden")
}

func TestUpdate_OrdenInexistente(t *testing.T) {
	f := newOrdersFixture(t)

	err := f.uc.Update(context.Background(), 404, dto.UpdateOrderRequest{
		Estado: strPtr("Listo"),
	}, entity.RoleAdmin)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestUpdate_MecanicoVacioLimpia(t *testing.T) {
	f := newOrdersFixture(t)
	f.orders.vehicleIDs[7] = 3

	err := f.uc.Update(context.Background(), 7, dto.UpdateOrderRequest{
		Mecanico: strPtr(""),
	}, entity.RoleEmpleado)
	require.NoError(t, err)

	patch := f.orders.patches[7]
	assert.True(t, patch.SetMechanic)
	assert.Nil(t, patch.Mechanic)
}

// ──────────────────────────────────────────────────────────────────────────────
// Historial
// ──────────────────────────────────────────────────────────────────────────────

func TestHistory_LimiteSeAcota(t *testing.T) {
	f := newOrdersFixture(t)
	f.orders.total = 10

	out, err := f.uc.History(context.Background(), dto.HistoryRequest{Limit: "5000"})
	require.NoError(t, err)
	assert.Equal(t, 1000, out.PerPage, "el tamaño de página se acota a 1000")

	out, err = f.uc.History(context.Background(), dto.HistoryRequest{Limit: "-3"})
	require.NoError(t, err)
	assert.Equal(t, 1, out.PerPage)

	out, err = f.uc.History(context.Background(), dto.HistoryRequest{Limit: "basura"})
	require.NoError(t, err)
	assert.Equal(t, 200, out.PerPage, "sin límite válido aplica el default")
}

func TestHistory_PaginaMasAllaDelTotalDevuelveLaUltima(t *testing.T) {
	f := newOrdersFixture(t)
	f.orders.total = 10

	out, err := f.uc.History(context.Background(), dto.HistoryRequest{Limit: "5", Page: "99"})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Page)
	assert.Equal(t, 2, out.TotalPages)
	assert.Equal(t, 5, f.orders.lastFilter.Offset, "el offset corresponde a la última página")
}

func TestHistory_SinResultadosSigueSiendoPagina1(t *testing.T) {
	f := newOrdersFixture(t)
	f.orders.total = 0

	out, err := f.uc.History(context.Background(), dto.HistoryRequest{Page: "5"})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 1, out.TotalPages)
	assert.Equal(t, 0, out.Total)
}

func TestHistory_FiltrosSePlieganSinAcentos(t *testing.T) {
	f := newOrdersFixture(t)

	_, err := f.uc.History(context.Background(), dto.HistoryRequest{
		Q:     "Martínez",
		Marca: "CITROËN",
	})
	require.NoError(t, err)
	assert.Equal(t, "martinez", f.orders.lastFilter.Text)
	assert.Equal(t, "citroen", f.orders.lastFilter.Make)
}

func TestHistory_EstadoInvalidoSeIgnora(t *testing.T) {
	f := newOrdersFixture(t)

	_, err := f.uc.History(context.Background(), dto.HistoryRequest{Estado: "9"})
	require.NoError(t, err)
	assert.Nil(t, f.orders.lastFilter.Status)

	_, err = f.uc.History(context.Background(), dto.HistoryRequest{Estado: "6", Activo: "1"})
	require.NoError(t, err)
	require.NotNil(t, f.orders.lastFilter.Status)
	assert.Equal(t, entity.StatusDelivered, *f.orders.lastFilter.Status)
	assert.True(t, f.orders.lastFilter.ActiveOnly)
}

// ──────────────────────────────────────────────────────────────────────────────
// Detalle y eliminación
// ──────────────────────────────────────────────────────────────────────────────

func TestDetail_OrdenInexistente(t *testing.T) {
	f := newOrdersFixture(t)

	_, err := f.uc.Detail(context.Background(), 404)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestDetail_MapeaEtiquetaDeEstatus(t *testing.T) {
	f := newOrdersFixture(t)
	charge := decimal.RequireFromString("850")
	f.orders.summaries[7] = entity.OrderSummary{
		OrderID:      7,
		IntakeDate:   "2026-08-30",
		IntakeTime:   "10:15",
		CustomerName: "Juan Pérez",
		Phone1:       "5551234567",
		Make:         "Nissan",
		Model:        "Tsuru",
		Charge:       &charge,
		StatusCode:   3,
	}

	row, err := f.uc.Detail(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 3, row.StatusCode)
	assert.Equal(t, "En espera de refacciones", row.Estatus)
	require.NotNil(t, row.Cobro)
	assert.Equal(t, "850", *row.Cobro)
}

func TestDelete_EliminaAdjuntosYOrden(t *testing.T) {
	f := newOrdersFixture(t)
	f.orders.vehicleIDs[7] = 3

	require.NoError(t, f.uc.Delete(context.Background(), 7))
	assert.Equal(t, []int64{7}, f.attachments.deletedOrders)
	assert.Equal(t, []int64{7}, f.orders.deleted)
}

func TestDelete_OrdenInexistente(t *testing.T) {
	f := newOrdersFixture(t)

	err := f.uc.Delete(context.Background(), 404)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}
