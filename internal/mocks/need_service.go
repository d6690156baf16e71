package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"peduli-kasih/internal/domain"
	"peduli-kasih/internal/service/notification"
)

type NeedService struct {
	mock.Mock
}

func (m *NeedService) Create(ctx context.Context, workerID uuid.UUID, input domain.CreateNeedInput) (*domain.SupplyNeed, error) {
	args := m.Called(ctx, workerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupplyNeed), args.Error(1)
}

func (m *NeedService) GetByID(ctx context.Context, id uuid.UUID) (*domain.SupplyNeed, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupplyNeed), args.Error(1)
}

func (m *NeedService) List(ctx context.Context, status *domain.NeedStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.SupplyNeed], error) {
	args := m.Called(ctx, status, params)
	return args.Get(0).(domain.PaginatedResponse[domain.SupplyNeed]), args.Error(1)
}

func (m *NeedService) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.SupplyNeed, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupplyNeed), args.Error(1)
}

func (m *NeedService) Approve(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NeedService) Reject(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NeedService) Confirm(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NeedService) SupervisorApprove(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NeedService) SupervisorReject(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NeedService) Collect(ctx context.Context, id, batchID uuid.UUID) error {
	args := m.Called(ctx, id, batchID)
	return args.Error(0)
}

func (m *NeedService) AddMatch(ctx context.Context, workerID uuid.UUID, input domain.CreateMatchInput) (*domain.SupplyMatch, error) {
	args := m.Called(ctx, workerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupplyMatch), args.Error(1)
}

func (m *NeedService) ListMatches(ctx context.Context, needID uuid.UUID) ([]domain.SupplyMatch, error) {
	args := m.Called(ctx, needID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupplyMatch), args.Error(1)
}

func (m *NeedService) SetNotificationService(notifSvc notification.Service) {
	m.Called(notifSvc)
}
