package orders

import (
	"context"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/repository"
)

// TxRepos son los repositorios atados a una misma transacción.
type TxRepos struct {
	Customers   repository.CustomerRepository
	Vehicles    repository.VehicleRepository
	Orders      repository.OrderRepository
	Attachments repository.AttachmentRepository
}

// TxRunner ejecuta fn dentro de una transacción: todo se confirma junto o se
// revierte completo ante cualquier error.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}

// AudioStore mueve el audio de recepción desde su ubicación temporal al
// almacenamiento definitivo particionado por orden. Devuelve la ruta final.
type AudioStore interface {
	SaveOrderAudio(ctx context.Context, orderID int64, tmpPath, originalName string) (string, error)
}
