package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"peduli-kasih/internal/domain"
)

type SupplyRepository struct {
	mock.Mock
}

func (m *SupplyRepository) Create(ctx context.Context, supply *domain.Supply) error {
	args := m.Called(ctx, supply)
	return args.Error(0)
}

func (m *SupplyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Supply, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supply), args.Error(1)
}

func (m *SupplyRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.Supply, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Supply), args.Get(1).(int64), args.Error(2)
}

func (m *SupplyRepository) Update(ctx context.Context, supply *domain.Supply) error {
	args := m.Called(ctx, supply)
	return args.Error(0)
}

func (m *SupplyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
