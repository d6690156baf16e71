package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"peduli-kasih/internal/domain"
)

type WorkerRepository interface {
	Create(ctx context.Context, worker *domain.Worker) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Worker, error)
	GetByEmail(ctx context.Context, email string) (*domain.Worker, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, params domain.PaginationParams) ([]domain.Worker, int64, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type workerRepository struct {
	db *sqlx.DB
}

func NewWorkerRepository(db *sqlx.DB) WorkerRepository {
	return &workerRepository{db: db}
}

func (r *workerRepository) Create(ctx context.Context, worker *domain.Worker) error {
	query := `
		INSERT INTO workers (id, email, password_hash, full_name, role, phone, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		worker.ID, worker.Email, worker.PasswordHash, worker.FullName,
		worker.Role, worker.Phone, worker.IsActive,
	).Scan(&worker.CreatedAt, &worker.UpdatedAt)
}

func (r *workerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Worker, error) {
	var worker domain.Worker
	query := `SELECT * FROM workers WHERE id = $1`

	err := r.db.GetContext(ctx, &worker, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrWorkerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *workerRepository) GetByEmail(ctx context.Context, email string) (*domain.Worker, error) {
	var worker domain.Worker
	query := `SELECT * FROM workers WHERE email = $1`

	err := r.db.GetContext(ctx, &worker, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrWorkerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *workerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM workers WHERE email = $1)`
	err := r.db.GetContext(ctx, &exists, query, email)
	return exists, err
}

func (r *workerRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.Worker, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM workers`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	var workers []domain.Worker
	query := `
		SELECT * FROM workers
		ORDER BY full_name
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &workers, query, params.PageSize, params.Offset())
	return workers, total, err
}

func (r *workerRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE workers SET is_active = $2, updated_at = NOW() WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, active)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrWorkerNotFound
	}
	return nil
}
