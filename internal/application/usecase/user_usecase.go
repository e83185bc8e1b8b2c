package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/dto"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/entity"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/repository"
)

// UserUseCase administración de cuentas (pantalla de ajustes, solo admin).
// La cuenta admin canónica no puede eliminarse ni cambiar de rol; su
// contraseña sí puede rotarse.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve todos los usuarios, id ascendente.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Create da de alta un usuario con rol admin o empleado; username duplicado
// responde ErrUsernameTaken.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	username := strings.TrimSpace(in.Username)
	password := strings.TrimSpace(in.Password)
	role := strings.TrimSpace(in.Role)

	if nombre == "" || username == "" || password == "" || role == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	existing, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Name:         nombre,
		Username:     username,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// ChangeRole reasigna el rol de un usuario. La cuenta admin canónica está
// protegida: ErrProtectedAccount sin modificar nada.
func (uc *UserUseCase) ChangeRole(ctx context.Context, id int64, role string) error {
	role = strings.TrimSpace(role)
	if role == "" {
		return domain.ErrInvalidInput
	}
	if !entity.ValidRole(role) {
		return domain.ErrInvalidRole
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.IsCanonicalAdmin() {
		return domain.ErrProtectedAccount
	}
	return uc.repo.UpdateRole(ctx, id, role)
}

// Delete elimina un usuario; la cuenta admin canónica nunca se elimina.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.IsCanonicalAdmin() {
		return domain.ErrProtectedAccount
	}
	return uc.repo.Delete(ctx, id)
}

// ChangePassword rota la contraseña (permitido también para la cuenta canónica).
func (uc *UserUseCase) ChangePassword(ctx context.Context, id int64, password string) error {
	password = strings.TrimSpace(password)
	if password == "" {
		return domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.repo.UpdatePassword(ctx, id, string(hash))
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Nombre:   u.Name,
		Username: u.Username,
		Role:     u.Role,
	}
}
