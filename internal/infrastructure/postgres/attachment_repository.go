package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/entity"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/repository"
)

var _ repository.AttachmentRepository = (*AttachmentRepo)(nil)

// AttachmentRepo implementación de AttachmentRepository (usable con pool o tx).
// Fotos en orden_fotos; audios de recepción en orden_audios.
type AttachmentRepo struct {
	q Querier
}

// NewAttachmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAttachmentRepository(q Querier) *AttachmentRepo {
	return &AttachmentRepo{q: q}
}

// CreatePhoto registra una foto subida al host externo.
func (r *AttachmentRepo) CreatePhoto(ctx context.Context, a *entity.Attachment) error {
	query := `
		INSERT INTO orden_fotos (orden_id, ruta_archivo, nombre_original, mime_type, public_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		a.OrderID, a.StorageRef, a.OriginalName, a.MimeType, a.PublicID,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert foto: %w", err)
	}
	return nil
}

// CreateAudio registra un audio de recepción almacenado localmente.
func (r *AttachmentRepo) CreateAudio(ctx context.Context, a *entity.Attachment) error {
	query := `
		INSERT INTO orden_audios (orden_id, ruta_archivo, nombre_original, mime_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		a.OrderID, a.StorageRef, a.OriginalName, a.MimeType,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert audio: %w", err)
	}
	return nil
}

// ListPhotos devuelve las fotos de la orden, más recientes primero.
func (r *AttachmentRepo) ListPhotos(ctx context.Context, orderID int64) ([]entity.Attachment, error) {
	query := `
		SELECT id, orden_id, ruta_archivo, nombre_original, mime_type, public_id
		FROM orden_fotos
		WHERE orden_id = $1
		ORDER BY id DESC`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list fotos: %w", err)
	}
	defer rows.Close()

	var list []entity.Attachment
	for rows.Next() {
		var a entity.Attachment
		if err := rows.Scan(&a.ID, &a.OrderID, &a.StorageRef, &a.OriginalName, &a.MimeType, &a.PublicID); err != nil {
			return nil, fmt.Errorf("scan foto: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// GetPhoto devuelve (nil, nil) si la foto no existe.
func (r *AttachmentRepo) GetPhoto(ctx context.Context, id int64) (*entity.Attachment, error) {
	query := `
		SELECT id, orden_id, ruta_archivo, nombre_original, mime_type, public_id
		FROM orden_fotos WHERE id = $1`
	var a entity.Attachment
	err := r.q.QueryRow(ctx, query, id).
		Scan(&a.ID, &a.OrderID, &a.StorageRef, &a.OriginalName, &a.MimeType, &a.PublicID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get foto: %w", err)
	}
	return &a, nil
}

// DeletePhoto elimina la fila y devuelve las filas afectadas.
func (r *AttachmentRepo) DeletePhoto(ctx context.Context, id int64) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM orden_fotos WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete foto: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByOrder borra los registros de fotos y audios de la orden.
func (r *AttachmentRepo) DeleteByOrder(ctx context.Context, orderID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM orden_fotos WHERE orden_id = $1`, orderID); err != nil {
		return fmt.Errorf("delete fotos de la orden: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM orden_audios WHERE orden_id = $1`, orderID); err != nil {
		return fmt.Errorf("delete audios de la orden: %w", err)
	}
	return nil
}
