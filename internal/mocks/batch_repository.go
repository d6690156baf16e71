package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"peduli-kasih/internal/domain"
)

type BatchRepository struct {
	mock.Mock
}

func (m *BatchRepository) Create(ctx context.Context, batch *domain.DistributionBatch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *BatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.DistributionBatch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DistributionBatch), args.Error(1)
}

func (m *BatchRepository) List(ctx context.Context, status *domain.BatchStatus, params domain.PaginationParams) ([]domain.DistributionBatch, int64, error) {
	args := m.Called(ctx, status, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.DistributionBatch), args.Get(1).(int64), args.Error(2)
}

func (m *BatchRepository) Approve(ctx context.Context, id, approvedBy uuid.UUID) error {
	args := m.Called(ctx, id, approvedBy)
	return args.Error(0)
}

func (m *BatchRepository) RejectWithRollback(ctx context.Context, id, rejectedBy uuid.UUID, reason string) (int64, error) {
	args := m.Called(ctx, id, rejectedBy, reason)
	return args.Get(0).(int64), args.Error(1)
}

func (m *BatchRepository) CountPending(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
