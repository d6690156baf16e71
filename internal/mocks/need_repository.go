package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"peduli-kasih/internal/domain"
)

type NeedRepository struct {
	mock.Mock
}

func (m *NeedRepository) Create(ctx context.Context, need *domain.SupplyNeed) error {
	args := m.Called(ctx, need)
	return args.Error(0)
}

func (m *NeedRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SupplyNeed, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupplyNeed), args.Error(1)
}

func (m *NeedRepository) List(ctx context.Context, status *domain.NeedStatus, params domain.PaginationParams) ([]domain.SupplyNeed, int64, error) {
	args := m.Called(ctx, status, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.SupplyNeed), args.Get(1).(int64), args.Error(2)
}

func (m *NeedRepository) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.SupplyNeed, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupplyNeed), args.Error(1)
}

func (m *NeedRepository) ListByBatch(ctx context.Context, batchID uuid.UUID) ([]domain.SupplyNeed, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupplyNeed), args.Error(1)
}

func (m *NeedRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.NeedStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *NeedRepository) MarkCollected(ctx context.Context, id uuid.UUID, batchID *uuid.UUID, pickupDate time.Time) error {
	args := m.Called(ctx, id, batchID, pickupDate)
	return args.Error(0)
}

func (m *NeedRepository) CountByStatus(ctx context.Context, status domain.NeedStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}
