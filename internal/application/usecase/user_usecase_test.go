package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/dto"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/usecase"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/entity"
)

// fakeUserRepo guarda usuarios en memoria respetando el contrato del puerto.
type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo(seed ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{users: map[int64]*entity.User{}, nextID: 1}
	for _, u := range seed {
		u.ID = f.nextID
		f.users[u.ID] = u
		f.nextID++
	}
	return f
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range f.users {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	user.ID = f.nextID
	f.users[user.ID] = user
	f.nextID++
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.users))
	for id := int64(1); id < f.nextID; id++ {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, id int64, role string) error {
	u, ok := f.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	u, ok := f.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) UpsertCanonicalAdmin(_ context.Context, name, username, passwordHash string) error {
	for _, u := range f.users {
		if u.Username == username {
			u.Name = name
			u.Role = entity.RoleAdmin
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return f.Create(context.Background(), &entity.User{
		Name: name, Username: username, Role: entity.RoleAdmin, PasswordHash: passwordHash,
	})
}

func canonicalAdmin() *entity.User {
	return &entity.User{Name: "Administrador", Username: "admin", Role: entity.RoleAdmin}
}

func TestCreate_HasheaLaContrasena(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Nombre:   "Pedro López",
		Username: "pedro",
		Password: "secreta123",
		Role:     entity.RoleEmpleado,
	})
	require.NoError(t, err)
	assert.Equal(t, "pedro", out.Username)

	stored := repo.users[out.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")))
}

func TestCreate_UsernameDuplicado(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{Name: "Pedro", Username: "pedro", Role: entity.RoleEmpleado})
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Nombre:   "Otro Pedro",
		Username: "pedro",
		Password: "secreta123",
		Role:     entity.RoleEmpleado,
	})
	require.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestCreate_RolDesconocido(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Nombre:   "Pedro",
		Username: "pedro",
		Password: "secreta123",
		Role:     "gerente",
	})
	require.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestCreate_CamposVacios(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Nombre: "  ", Username: "pedro", Password: "x", Role: entity.RoleEmpleado,
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChangeRole_CuentaCanonicaProtegida(t *testing.T) {
	repo := newFakeUserRepo(canonicalAdmin())
	uc := usecase.NewUserUseCase(repo)

	err := uc.ChangeRole(context.Background(), 1, entity.RoleEmpleado)
	require.ErrorIs(t, err, domain.ErrProtectedAccount)
	assert.Equal(t, entity.RoleAdmin, repo.users[1].Role, "el rol no debe cambiar")
}

func TestChangeRole_UsuarioNormal(t *testing.T) {
	repo := newFakeUserRepo(canonicalAdmin(), &entity.User{Name: "Pedro", Username: "pedro", Role: entity.RoleEmpleado})
	uc := usecase.NewUserUseCase(repo)

	require.NoError(t, uc.ChangeRole(context.Background(), 2, entity.RoleAdmin))
	assert.Equal(t, entity.RoleAdmin, repo.users[2].Role)
}

func TestDelete_CuentaCanonicaProtegida(t *testing.T) {
	repo := newFakeUserRepo(canonicalAdmin())
	uc := usecase.NewUserUseCase(repo)

	err := uc.Delete(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrProtectedAccount)
	assert.Contains(t, repo.users, int64(1))
}

func TestDelete_UsuarioInexistente(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	err := uc.Delete(context.Background(), 404)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestChangePassword_PermitidoParaLaCuentaCanonica(t *testing.T) {
	repo := newFakeUserRepo(canonicalAdmin())
	uc := usecase.NewUserUseCase(repo)

	require.NoError(t, uc.ChangePassword(context.Background(), 1, "nueva-clave"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.users[1].PasswordHash), []byte("nueva-clave")))
}

func TestChangePassword_Vacia(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo(canonicalAdmin()))

	err := uc.ChangePassword(context.Background(), 1, "   ")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
