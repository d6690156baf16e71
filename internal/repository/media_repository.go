package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"peduli-kasih/internal/domain"
)

type MediaRepository interface {
	Create(ctx context.Context, media *domain.Media) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Media, error)
	ListByOwner(ctx context.Context, ownerType domain.MediaOwnerType, ownerID uuid.UUID) ([]domain.Media, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type mediaRepository struct {
	db *sqlx.DB
}

func NewMediaRepository(db *sqlx.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, media *domain.Media) error {
	query := `
		INSERT INTO media (id, owner_type, owner_id, object_key, url, content_type, size_bytes, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		media.ID, media.OwnerType, media.OwnerID, media.ObjectKey,
		media.URL, media.ContentType, media.SizeBytes, media.UploadedBy,
	).Scan(&media.CreatedAt)
}

func (r *mediaRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Media, error) {
	var media domain.Media
	query := `SELECT * FROM media WHERE id = $1`

	err := r.db.GetContext(ctx, &media, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrMediaNotFound
	}
	if err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) ListByOwner(ctx context.Context, ownerType domain.MediaOwnerType, ownerID uuid.UUID) ([]domain.Media, error) {
	var media []domain.Media
	query := `SELECT * FROM media WHERE owner_type = $1 AND owner_id = $2 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &media, query, ownerType, ownerID)
	return media, err
}

func (r *mediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM media WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrMediaNotFound
	}
	return nil
}
