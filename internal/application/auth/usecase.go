package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/dto"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/repository"
	"github.com/AlanArratia12/MasterServicioAutomotriz/pkg/jwt"
)

// SessionStore registra sesiones revocadas (logout) hasta su expiración natural.
// Una implementación que falla no debe bloquear a los usuarios: los errores de
// consulta se tratan como "no revocada".
type SessionStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// JWTConfig configuración para emisión de tokens de sesión.
type JWTConfig struct {
	Secret       string
	SessionHours int
	Issuer       string
}

// AuthUseCase casos de uso de autenticación: login y logout.
type AuthUseCase struct {
	users    repository.UserRepository
	sessions SessionStore
	cfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, sessions SessionStore, cfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, sessions: sessions, cfg: cfg}
}

// SessionTTL duración de la sesión desde su emisión (ventana fija, no deslizante).
func (uc *AuthUseCase) SessionTTL() time.Duration {
	return time.Duration(uc.cfg.SessionHours) * time.Hour
}

// Login verifica username/password contra el hash bcrypt y emite el token de
// sesión. Usuario inexistente y contraseña incorrecta responden el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	user, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, _, err := jwt.Generate(uc.cfg.Secret, user.ID, user.Username, user.Role, uc.cfg.Issuer, uc.cfg.SessionHours)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:       user.ID,
			Nombre:   user.Name,
			Username: user.Username,
			Role:     user.Role,
		},
	}, nil
}

// Identity devuelve los datos del usuario de la sesión actual.
func (uc *AuthUseCase) Identity(ctx context.Context, userID int64) (*dto.IdentityResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.IdentityResponse{
		ID:       user.ID,
		Username: user.Username,
		Nombre:   user.Name,
		Role:     user.Role,
	}, nil
}

// Logout revoca la sesión: el jti queda en la lista negra hasta que el token
// hubiera expirado por sí mismo.
func (uc *AuthUseCase) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil // ya expirada, nada que revocar
	}
	return uc.sessions.Revoke(ctx, jti, ttl)
}
