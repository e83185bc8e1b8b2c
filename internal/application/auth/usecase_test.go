package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/auth"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/dto"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/entity"
	pkgjwt "github.com/AlanArratia12/MasterServicioAutomotriz/pkg/jwt"
)

type fakeUserRepo struct {
	byUsername map[string]*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, _ *entity.User) error { return nil }

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return f.byUsername[username], nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) { return nil, nil }

func (f *fakeUserRepo) UpdateRole(_ context.Context, _ int64, _ string) error { return nil }

func (f *fakeUserRepo) UpdatePassword(_ context.Context, _ int64, _ string) error { return nil }

func (f *fakeUserRepo) Delete(_ context.Context, _ int64) error { return nil }

func (f *fakeUserRepo) UpsertCanonicalAdmin(_ context.Context, _, _, _ string) error { return nil }

type fakeSessions struct {
	revoked map[string]time.Duration
}

func (f *fakeSessions) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	f.revoked[jti] = ttl
	return nil
}

func (f *fakeSessions) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := f.revoked[jti]
	return ok, nil
}

func newAuthFixture(t *testing.T) (*auth.AuthUseCase, *fakeSessions) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeUserRepo{byUsername: map[string]*entity.User{
		"pedro": {ID: 2, Name: "Pedro López", Username: "pedro", Role: entity.RoleEmpleado, PasswordHash: string(hash)},
	}}
	sessions := &fakeSessions{revoked: map[string]time.Duration{}}
	uc := auth.NewAuthUseCase(repo, sessions, auth.JWTConfig{
		Secret:       "test-secret",
		SessionHours: 8,
		Issuer:       "master-servicio-test",
	})
	return uc, sessions
}

func TestLogin_EmiteTokenConIdentidad(t *testing.T) {
	uc, _ := newAuthFixture(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: " pedro ", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, "pedro", out.User.Username)
	assert.Equal(t, entity.RoleEmpleado, out.User.Role)

	claims, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(2), claims.UserID)
	assert.Equal(t, entity.RoleEmpleado, claims.Role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "pedro", Password: "otra"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistenteMismoError(t *testing.T) {
	uc, _ := newAuthFixture(t)

	// Mismo error que una contraseña incorrecta: no se revela si el usuario existe.
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "secreta123"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogout_RevocaHastaLaExpiracionNatural(t *testing.T) {
	uc, sessions := newAuthFixture(t)

	expiresAt := time.Now().Add(3 * time.Hour)
	require.NoError(t, uc.Logout(context.Background(), "jti-1", expiresAt))

	ttl, ok := sessions.revoked["jti-1"]
	require.True(t, ok)
	assert.InDelta(t, (3 * time.Hour).Seconds(), ttl.Seconds(), 5,
		"el TTL de la lista negra debe cubrir la vida restante del token")
}

func TestLogout_TokenYaExpiradoNoRegistraNada(t *testing.T) {
	uc, sessions := newAuthFixture(t)

	require.NoError(t, uc.Logout(context.Background(), "jti-2", time.Now().Add(-time.Minute)))
	assert.Empty(t, sessions.revoked)
}

func TestIdentity_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, err := uc.Identity(context.Background(), 404)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestIdentity_DevuelveDatosDeSesion(t *testing.T) {
	uc, _ := newAuthFixture(t)

	out, err := uc.Identity(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Pedro López", out.Nombre)
	assert.Equal(t, "pedro", out.Username)
}
