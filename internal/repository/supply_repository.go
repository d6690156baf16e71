package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"peduli-kasih/internal/domain"
)

type SupplyRepository interface {
	Create(ctx context.Context, supply *domain.Supply) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Supply, error)
	List(ctx context.Context, params domain.PaginationParams) ([]domain.Supply, int64, error)
	Update(ctx context.Context, supply *domain.Supply) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type supplyRepository struct {
	db *sqlx.DB
}

func NewSupplyRepository(db *sqlx.DB) SupplyRepository {
	return &supplyRepository{db: db}
}

func (r *supplyRepository) Create(ctx context.Context, supply *domain.Supply) error {
	query := `
		INSERT INTO supplies (id, name, category, unit, unit_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		supply.ID, supply.Name, supply.Category, supply.Unit, supply.UnitPrice,
	).Scan(&supply.CreatedAt, &supply.UpdatedAt)
}

func (r *supplyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Supply, error) {
	var supply domain.Supply
	query := `SELECT * FROM supplies WHERE id = $1`

	err := r.db.GetContext(ctx, &supply, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSupplyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &supply, nil
}

func (r *supplyRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.Supply, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM supplies`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	var supplies []domain.Supply
	query := `
		SELECT * FROM supplies
		ORDER BY category, name
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &supplies, query, params.PageSize, params.Offset())
	return supplies, total, err
}

func (r *supplyRepository) Update(ctx context.Context, supply *domain.Supply) error {
	query := `
		UPDATE supplies
		SET name = $2, category = $3, unit = $4, unit_price = $5, updated_at = NOW()
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		supply.ID, supply.Name, supply.Category, supply.Unit, supply.UnitPrice,
	)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrSupplyNotFound
	}
	return nil
}

func (r *supplyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM supplies WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrSupplyNotFound
	}
	return nil
}
