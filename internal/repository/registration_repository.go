package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"peduli-kasih/internal/domain"
)

type RegistrationRepository interface {
	Create(ctx context.Context, reg *domain.ActivityRegistration) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ActivityRegistration, error)
	ListByActivity(ctx context.Context, activityID uuid.UUID) ([]domain.ActivityRegistration, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RegistrationStatus) error
}

type registrationRepository struct {
	db *sqlx.DB
}

func NewRegistrationRepository(db *sqlx.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.ActivityRegistration) error {
	query := `
		INSERT INTO activity_registrations (id, activity_id, registrant_type, case_id, registrant_name, contact_phone, number_of_companions, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		reg.ID, reg.ActivityID, reg.RegistrantType, reg.CaseID,
		reg.RegistrantName, reg.ContactPhone, reg.NumberOfCompanions, reg.Status,
	).Scan(&reg.CreatedAt, &reg.UpdatedAt)
}

func (r *registrationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ActivityRegistration, error) {
	var reg domain.ActivityRegistration
	query := `SELECT * FROM activity_registrations WHERE id = $1`

	err := r.db.GetContext(ctx, &reg, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRegistrationNotFound
	}
	if err != nil {
		return nil, err
	}

	reg.Status = domain.NormalizeRegistrationStatus(string(reg.Status))
	return &reg, nil
}

func (r *registrationRepository) ListByActivity(ctx context.Context, activityID uuid.UUID) ([]domain.ActivityRegistration, error) {
	var regs []domain.ActivityRegistration
	query := `SELECT * FROM activity_registrations WHERE activity_id = $1 ORDER BY created_at`

	if err := r.db.SelectContext(ctx, &regs, query, activityID); err != nil {
		return nil, err
	}

	for i := range regs {
		regs[i].Status = domain.NormalizeRegistrationStatus(string(regs[i].Status))
	}
	return regs, nil
}

func (r *registrationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RegistrationStatus) error {
	query := `UPDATE activity_registrations SET status = $2, updated_at = NOW() WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrRegistrationNotFound
	}
	return nil
}
