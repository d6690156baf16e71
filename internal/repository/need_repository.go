package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"peduli-kasih/internal/domain"
)

type NeedRepository interface {
	Create(ctx context.Context, need *domain.SupplyNeed) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SupplyNeed, error)
	List(ctx context.Context, status *domain.NeedStatus, params domain.PaginationParams) ([]domain.SupplyNeed, int64, error)
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.SupplyNeed, error)
	ListByBatch(ctx context.Context, batchID uuid.UUID) ([]domain.SupplyNeed, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.NeedStatus) error
	MarkCollected(ctx context.Context, id uuid.UUID, batchID *uuid.UUID, pickupDate time.Time) error
	CountByStatus(ctx context.Context, status domain.NeedStatus) (int64, error)
}

type needRepository struct {
	db *sqlx.DB
}

func NewNeedRepository(db *sqlx.DB) NeedRepository {
	return &needRepository{db: db}
}

func (r *needRepository) Create(ctx context.Context, need *domain.SupplyNeed) error {
	query := `
		INSERT INTO supply_needs (id, case_id, supply_id, quantity, status, apply_date, requested_by, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		need.ID, need.CaseID, need.SupplyID, need.Quantity,
		need.Status, need.ApplyDate, need.RequestedBy, need.Note,
	).Scan(&need.CreatedAt, &need.UpdatedAt)
}

func (r *needRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SupplyNeed, error) {
	var need domain.SupplyNeed
	query := `SELECT * FROM supply_needs WHERE id = $1`

	err := r.db.GetContext(ctx, &need, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNeedNotFound
	}
	if err != nil {
		return nil, err
	}

	need.Status = domain.NormalizeNeedStatus(string(need.Status))
	return &need, nil
}

func (r *needRepository) List(ctx context.Context, status *domain.NeedStatus, params domain.PaginationParams) ([]domain.SupplyNeed, int64, error) {
	params.Validate()

	var total int64
	var needs []domain.SupplyNeed

	if status != nil {
		countQuery := `SELECT COUNT(*) FROM supply_needs WHERE status = $1`
		if err := r.db.GetContext(ctx, &total, countQuery, *status); err != nil {
			return nil, 0, err
		}

		query := `
			SELECT * FROM supply_needs
			WHERE status = $1
			ORDER BY apply_date DESC
			LIMIT $2 OFFSET $3`
		if err := r.db.SelectContext(ctx, &needs, query, *status, params.PageSize, params.Offset()); err != nil {
			return nil, 0, err
		}
	} else {
		countQuery := `SELECT COUNT(*) FROM supply_needs`
		if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
			return nil, 0, err
		}

		query := `
			SELECT * FROM supply_needs
			ORDER BY apply_date DESC
			LIMIT $1 OFFSET $2`
		if err := r.db.SelectContext(ctx, &needs, query, params.PageSize, params.Offset()); err != nil {
			return nil, 0, err
		}
	}

	for i := range needs {
		needs[i].Status = domain.NormalizeNeedStatus(string(needs[i].Status))
	}
	return needs, total, nil
}

func (r *needRepository) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.SupplyNeed, error) {
	var needs []domain.SupplyNeed
	query := `SELECT * FROM supply_needs WHERE case_id = $1 ORDER BY apply_date DESC`

	if err := r.db.SelectContext(ctx, &needs, query, caseID); err != nil {
		return nil, err
	}

	for i := range needs {
		needs[i].Status = domain.NormalizeNeedStatus(string(needs[i].Status))
	}
	return needs, nil
}

func (r *needRepository) ListByBatch(ctx context.Context, batchID uuid.UUID) ([]domain.SupplyNeed, error) {
	var needs []domain.SupplyNeed
	query := `SELECT * FROM supply_needs WHERE batch_id = $1 ORDER BY apply_date`

	if err := r.db.SelectContext(ctx, &needs, query, batchID); err != nil {
		return nil, err
	}

	for i := range needs {
		needs[i].Status = domain.NormalizeNeedStatus(string(needs[i].Status))
	}
	return needs, nil
}

func (r *needRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.NeedStatus) error {
	query := `UPDATE supply_needs SET status = $2, updated_at = NOW() WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrNeedNotFound
	}
	return nil
}

func (r *needRepository) MarkCollected(ctx context.Context, id uuid.UUID, batchID *uuid.UUID, pickupDate time.Time) error {
	query := `
		UPDATE supply_needs
		SET status = $2, batch_id = $3, pickup_date = $4, updated_at = NOW()
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, domain.NeedStatusCollected, batchID, pickupDate)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrNeedNotFound
	}
	return nil
}

func (r *needRepository) CountByStatus(ctx context.Context, status domain.NeedStatus) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM supply_needs WHERE status = $1`
	err := r.db.GetContext(ctx, &count, query, status)
	return count, err
}
