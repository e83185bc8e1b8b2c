package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/entity"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario; username repetido -> ErrUsernameTaken.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO usuarios (nombre, username, role, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		user.Name, user.Username, user.Role, user.PasswordHash,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por id; (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `
		SELECT id, nombre, username, role, password_hash, created_at
		FROM usuarios WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetByUsername obtiene un usuario por username; (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT id, nombre, username, role, password_hash, created_at
		FROM usuarios WHERE username = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(ctx, query, username))
}

func (r *UserRepo) scanOne(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Name, &u.Username, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// List devuelve todos los usuarios, id ascendente.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	query := `
		SELECT id, nombre, username, role, password_hash, created_at
		FROM usuarios ORDER BY id ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.Role, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// UpdateRole reasigna el rol; ErrUserNotFound si no afectó filas.
func (r *UserRepo) UpdateRole(ctx context.Context, id int64, role string) error {
	tag, err := r.q.Exec(ctx, `UPDATE usuarios SET role = $2 WHERE id = $1`, id, role)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdatePassword rota el hash; ErrUserNotFound si no afectó filas.
func (r *UserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	tag, err := r.q.Exec(ctx, `UPDATE usuarios SET password_hash = $2 WHERE id = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete elimina un usuario; ErrUserNotFound si no afectó filas.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpsertCanonicalAdmin crea o restaura la cuenta admin principal (seed):
// siempre termina con role admin y el hash indicado.
func (r *UserRepo) UpsertCanonicalAdmin(ctx context.Context, name, username, passwordHash string) error {
	query := `
		INSERT INTO usuarios (nombre, username, role, password_hash)
		VALUES ($1, $2, 'admin', $3)
		ON CONFLICT (username) DO UPDATE SET
			nombre = EXCLUDED.nombre,
			role = 'admin',
			password_hash = EXCLUDED.password_hash`
	if _, err := r.q.Exec(ctx, query, name, username, passwordHash); err != nil {
		return fmt.Errorf("upsert admin: %w", err)
	}
	return nil
}
