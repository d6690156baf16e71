package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"peduli-kasih/internal/domain"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	List(ctx context.Context, params domain.PaginationParams) ([]domain.Activity, int64, error)
	Update(ctx context.Context, activity *domain.Activity) error
	AdjustParticipants(ctx context.Context, id uuid.UUID, delta int) error
	CountUpcoming(ctx context.Context) (int64, error)
}

type activityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	query := `
		INSERT INTO activities (id, name, description, location, start_date, end_date, max_participants, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING current_participants, created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		activity.ID, activity.Name, activity.Description, activity.Location,
		activity.StartDate, activity.EndDate, activity.MaxParticipants, activity.CreatedBy,
	).Scan(&activity.CurrentParticipants, &activity.CreatedAt, &activity.UpdatedAt)
}

func (r *activityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	var activity domain.Activity
	query := `SELECT * FROM activities WHERE id = $1`

	err := r.db.GetContext(ctx, &activity, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrActivityNotFound
	}
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.Activity, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM activities`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	var activities []domain.Activity
	query := `
		SELECT * FROM activities
		ORDER BY start_date DESC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &activities, query, params.PageSize, params.Offset())
	return activities, total, err
}

// Update never touches current_participants: that column is shared with a
// database trigger and must only be moved by AdjustParticipants.
func (r *activityRepository) Update(ctx context.Context, activity *domain.Activity) error {
	query := `
		UPDATE activities
		SET name = $2, description = $3, location = $4, start_date = $5,
		    end_date = $6, max_participants = $7, photo_url = $8, updated_at = NOW()
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		activity.ID, activity.Name, activity.Description, activity.Location,
		activity.StartDate, activity.EndDate, activity.MaxParticipants, activity.PhotoURL,
	)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

// AdjustParticipants applies a relative delta as a single statement evaluated
// by the database. An external trigger writes the same column concurrently,
// so a read-modify-write from application memory would lose updates. The
// GREATEST floor keeps racing decrements from driving the counter negative.
func (r *activityRepository) AdjustParticipants(ctx context.Context, id uuid.UUID, delta int) error {
	query := `
		UPDATE activities
		SET current_participants = GREATEST(0, current_participants + $2), updated_at = NOW()
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, delta)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

func (r *activityRepository) CountUpcoming(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM activities WHERE start_date >= NOW()`
	err := r.db.GetContext(ctx, &count, query)
	return count, err
}
