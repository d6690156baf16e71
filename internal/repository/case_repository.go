package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"peduli-kasih/internal/domain"
)

type CaseRepository interface {
	Create(ctx context.Context, c *domain.Case) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Case, error)
	List(ctx context.Context, status *domain.CaseStatus, params domain.PaginationParams) ([]domain.Case, int64, error)
	Update(ctx context.Context, c *domain.Case) error
	CountActive(ctx context.Context) (int64, error)
}

type caseRepository struct {
	db *sqlx.DB
}

func NewCaseRepository(db *sqlx.DB) CaseRepository {
	return &caseRepository{db: db}
}

func (r *caseRepository) Create(ctx context.Context, c *domain.Case) error {
	query := `
		INSERT INTO cases (id, case_number, full_name, address, phone, birth_date, family_size, status, assigned_worker_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		c.ID, c.CaseNumber, c.FullName, c.Address, c.Phone,
		c.BirthDate, c.FamilySize, c.Status, c.AssignedWorkerID,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

func (r *caseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Case, error) {
	var c domain.Case
	query := `SELECT * FROM cases WHERE id = $1`

	err := r.db.GetContext(ctx, &c, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCaseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *caseRepository) List(ctx context.Context, status *domain.CaseStatus, params domain.PaginationParams) ([]domain.Case, int64, error) {
	params.Validate()

	var total int64
	var cases []domain.Case

	if status != nil {
		countQuery := `SELECT COUNT(*) FROM cases WHERE status = $1`
		if err := r.db.GetContext(ctx, &total, countQuery, *status); err != nil {
			return nil, 0, err
		}

		query := `
			SELECT * FROM cases
			WHERE status = $1
			ORDER BY full_name
			LIMIT $2 OFFSET $3`
		err := r.db.SelectContext(ctx, &cases, query, *status, params.PageSize, params.Offset())
		return cases, total, err
	}

	countQuery := `SELECT COUNT(*) FROM cases`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM cases
		ORDER BY full_name
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &cases, query, params.PageSize, params.Offset())
	return cases, total, err
}

func (r *caseRepository) Update(ctx context.Context, c *domain.Case) error {
	query := `
		UPDATE cases
		SET full_name = $2, address = $3, phone = $4, family_size = $5,
		    status = $6, assigned_worker_id = $7, photo_url = $8, updated_at = NOW()
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		c.ID, c.FullName, c.Address, c.Phone, c.FamilySize,
		c.Status, c.AssignedWorkerID, c.PhotoURL,
	)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrCaseNotFound
	}
	return nil
}

func (r *caseRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM cases WHERE status = $1`
	err := r.db.GetContext(ctx, &count, query, domain.CaseStatusActive)
	return count, err
}
