package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"peduli-kasih/internal/domain"
)

type BatchRepository interface {
	Create(ctx context.Context, batch *domain.DistributionBatch) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DistributionBatch, error)
	List(ctx context.Context, status *domain.BatchStatus, params domain.PaginationParams) ([]domain.DistributionBatch, int64, error)
	Approve(ctx context.Context, id, approvedBy uuid.UUID) error
	RejectWithRollback(ctx context.Context, id, rejectedBy uuid.UUID, reason string) (int64, error)
	CountPending(ctx context.Context) (int64, error)
}

type batchRepository struct {
	db *sqlx.DB
}

func NewBatchRepository(db *sqlx.DB) BatchRepository {
	return &batchRepository{db: db}
}

func (r *batchRepository) Create(ctx context.Context, batch *domain.DistributionBatch) error {
	query := `
		INSERT INTO distribution_batches (id, distribution_date, case_count, total_supply_items, status, created_by, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		batch.ID, batch.DistributionDate, batch.CaseCount, batch.TotalSupplyItems,
		batch.Status, batch.CreatedBy, batch.Notes,
	).Scan(&batch.CreatedAt, &batch.UpdatedAt)
}

func (r *batchRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.DistributionBatch, error) {
	var batch domain.DistributionBatch
	query := `SELECT * FROM distribution_batches WHERE id = $1`

	err := r.db.GetContext(ctx, &batch, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBatchNotFound
	}
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

func (r *batchRepository) List(ctx context.Context, status *domain.BatchStatus, params domain.PaginationParams) ([]domain.DistributionBatch, int64, error) {
	params.Validate()

	var total int64
	var batches []domain.DistributionBatch

	if status != nil {
		countQuery := `SELECT COUNT(*) FROM distribution_batches WHERE status = $1`
		if err := r.db.GetContext(ctx, &total, countQuery, *status); err != nil {
			return nil, 0, err
		}

		query := `
			SELECT * FROM distribution_batches
			WHERE status = $1
			ORDER BY distribution_date DESC
			LIMIT $2 OFFSET $3`
		err := r.db.SelectContext(ctx, &batches, query, *status, params.PageSize, params.Offset())
		return batches, total, err
	}

	countQuery := `SELECT COUNT(*) FROM distribution_batches`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM distribution_batches
		ORDER BY distribution_date DESC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &batches, query, params.PageSize, params.Offset())
	return batches, total, err
}

func (r *batchRepository) Approve(ctx context.Context, id, approvedBy uuid.UUID) error {
	query := `
		UPDATE distribution_batches
		SET status = $2, approved_by = $3, approved_at = NOW(), updated_at = NOW()
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, domain.BatchStatusApproved, approvedBy)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrBatchNotFound
	}
	return nil
}

// RejectWithRollback undoes the collection of every need attached to the
// batch and marks the batch rejected, all inside one transaction. Member
// needs return to APPROVED with batch_id cleared so they can be re-collected
// into a future batch. Returns the number of needs rolled back.
func (r *batchRepository) RejectWithRollback(ctx context.Context, id, rejectedBy uuid.UUID, reason string) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	needsQuery := `
		UPDATE supply_needs
		SET status = $2, batch_id = NULL, updated_at = NOW()
		WHERE batch_id = $1`

	res, err := tx.ExecContext(ctx, needsQuery, id, domain.NeedStatusApproved)
	if err != nil {
		return 0, err
	}
	rolledBack, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	batchQuery := `
		UPDATE distribution_batches
		SET status = $2, approved_by = $3, approved_at = NOW(), notes = $4, updated_at = NOW()
		WHERE id = $1`

	bres, err := tx.ExecContext(ctx, batchQuery, id, domain.BatchStatusRejected, rejectedBy, reason)
	if err != nil {
		return 0, err
	}
	if rows, _ := bres.RowsAffected(); rows == 0 {
		return 0, domain.ErrBatchNotFound
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return rolledBack, nil
}

func (r *batchRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM distribution_batches WHERE status = $1`
	err := r.db.GetContext(ctx, &count, query, domain.BatchStatusPending)
	return count, err
}
