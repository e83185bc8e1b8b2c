package cache

import (
	"context"
	"time"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/auth"
)

const revokedKeyPrefix = "sesion:revocada:"

// SessionStore lleva la lista negra de sesiones cerradas. La clave vive en
// redis hasta que el token hubiera expirado de forma natural.
type SessionStore struct {
	cache *Client
}

var _ auth.SessionStore = (*SessionStore)(nil)

// NewSessionStore crea el store de sesiones revocadas.
func NewSessionStore(cache *Client) *SessionStore {
	return &SessionStore{cache: cache}
}

// Revoke marca el jti como revocado durante el TTL indicado.
func (s *SessionStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.cache.Set(ctx, revokedKeyPrefix+jti, []byte("1"), ttl)
}

// IsRevoked indica si el jti fue revocado. Si redis no responde, la sesión
// se considera válida para no bloquear el taller por una caída del cache.
func (s *SessionStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	data, err := s.cache.Get(ctx, revokedKeyPrefix+jti)
	if err != nil {
		return false, nil
	}
	return data != nil, nil
}
