package repository

import (
	"context"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para usuarios del taller.
// Los métodos Get* devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error // domain.ErrUsernameTaken si el username ya existe
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error) // orden id ASC
	UpdateRole(ctx context.Context, id int64, role string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
	// UpsertCanonicalAdmin crea o restaura la cuenta admin principal (seed).
	UpsertCanonicalAdmin(ctx context.Context, name, username, passwordHash string) error
}
