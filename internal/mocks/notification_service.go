package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"peduli-kasih/internal/domain"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) NotifyNeedStatus(ctx context.Context, need *domain.SupplyNeed, status domain.NeedStatus) error {
	args := m.Called(ctx, need, status)
	return args.Error(0)
}

func (m *NotificationService) NotifyBatchDecision(ctx context.Context, batch *domain.DistributionBatch, status domain.BatchStatus, rolledBack int64) error {
	args := m.Called(ctx, batch, status, rolledBack)
	return args.Error(0)
}

func (m *NotificationService) ListByWorker(ctx context.Context, workerID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	args := m.Called(ctx, workerID, unreadOnly, params)
	return args.Get(0).(domain.PaginatedResponse[domain.Notification]), args.Error(1)
}

func (m *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NotificationService) MarkAllAsRead(ctx context.Context, workerID uuid.UUID) error {
	args := m.Called(ctx, workerID)
	return args.Error(0)
}

func (m *NotificationService) CountUnread(ctx context.Context, workerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, workerID)
	return args.Get(0).(int64), args.Error(1)
}
