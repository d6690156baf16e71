package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"peduli-kasih/internal/domain"
)

type RegistrationRepository struct {
	mock.Mock
}

func (m *RegistrationRepository) Create(ctx context.Context, reg *domain.ActivityRegistration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func (m *RegistrationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ActivityRegistration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActivityRegistration), args.Error(1)
}

func (m *RegistrationRepository) ListByActivity(ctx context.Context, activityID uuid.UUID) ([]domain.ActivityRegistration, error) {
	args := m.Called(ctx, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityRegistration), args.Error(1)
}

func (m *RegistrationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RegistrationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
