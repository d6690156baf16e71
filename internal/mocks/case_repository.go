package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"peduli-kasih/internal/domain"
)

type CaseRepository struct {
	mock.Mock
}

func (m *CaseRepository) Create(ctx context.Context, c *domain.Case) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Case, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Case), args.Error(1)
}

func (m *CaseRepository) List(ctx context.Context, status *domain.CaseStatus, params domain.PaginationParams) ([]domain.Case, int64, error) {
	args := m.Called(ctx, status, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Case), args.Get(1).(int64), args.Error(2)
}

func (m *CaseRepository) Update(ctx context.Context, c *domain.Case) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CaseRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
