package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"peduli-kasih/internal/domain"
	"peduli-kasih/internal/repository"
	"peduli-kasih/internal/service/email"
)

type Service interface {
	NotifyNeedStatus(ctx context.Context, need *domain.SupplyNeed, status domain.NeedStatus) error
	NotifyBatchDecision(ctx context.Context, batch *domain.DistributionBatch, status domain.BatchStatus, rolledBack int64) error

	ListByWorker(ctx context.Context, workerID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, workerID uuid.UUID) error
	CountUnread(ctx context.Context, workerID uuid.UUID) (int64, error)
}

type service struct {
	notifRepo  repository.NotificationRepository
	workerRepo repository.WorkerRepository
	emailSvc   email.Service
}

func NewService(notifRepo repository.NotificationRepository, workerRepo repository.WorkerRepository, emailSvc email.Service) Service {
	return &service{
		notifRepo:  notifRepo,
		workerRepo: workerRepo,
		emailSvc:   emailSvc,
	}
}

func (s *service) NotifyNeedStatus(ctx context.Context, need *domain.SupplyNeed, status domain.NeedStatus) error {
	var notifType domain.NotificationType
	var title, message string

	switch status {
	case domain.NeedStatusApproved:
		notifType = domain.NotifNeedApproved
		title = "Supply Request Approved"
		message = "A supply request you submitted has been approved"
	case domain.NeedStatusRejected:
		notifType = domain.NotifNeedRejected
		title = "Supply Request Rejected"
		message = "A supply request you submitted has been rejected"
	case domain.NeedStatusCollected:
		notifType = domain.NotifNeedCollected
		title = "Supply Request Collected"
		message = "A supply request you submitted has been collected for distribution"
	default:
		return nil
	}

	notif := &domain.Notification{
		ID:       uuid.New(),
		WorkerID: need.RequestedBy,
		Type:     notifType,
		Title:    title,
		Message:  message,
		Data:     json.RawMessage(`{"need_id":"` + need.ID.String() + `"}`),
	}

	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return err
	}

	s.sendEmail(ctx, need.RequestedBy, title, message)
	return nil
}

func (s *service) NotifyBatchDecision(ctx context.Context, batch *domain.DistributionBatch, status domain.BatchStatus, rolledBack int64) error {
	var notifType domain.NotificationType
	var title, message string

	switch status {
	case domain.BatchStatusApproved:
		notifType = domain.NotifBatchApproved
		title = "Distribution Batch Approved"
		message = "Your distribution batch has been approved"
	case domain.BatchStatusRejected:
		notifType = domain.NotifBatchRejected
		title = "Distribution Batch Rejected"
		message = fmt.Sprintf("Your distribution batch was rejected; %d requests returned to the approved pool", rolledBack)
	default:
		return nil
	}

	notif := &domain.Notification{
		ID:       uuid.New(),
		WorkerID: batch.CreatedBy,
		Type:     notifType,
		Title:    title,
		Message:  message,
		Data:     json.RawMessage(`{"batch_id":"` + batch.ID.String() + `"}`),
	}

	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return err
	}

	s.sendEmail(ctx, batch.CreatedBy, title, message)
	return nil
}

// sendEmail is best effort; the in-app notification is the source of truth.
func (s *service) sendEmail(ctx context.Context, workerID uuid.UUID, title, message string) {
	if s.emailSvc == nil {
		return
	}

	worker, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return
	}

	go func() {
		_ = s.emailSvc.SendStatusEmail(context.Background(), worker.Email, worker.FullName, title, message)
	}()
}

func (s *service) ListByWorker(ctx context.Context, workerID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	params.Validate()

	notifs, total, err := s.notifRepo.ListByWorker(ctx, workerID, unreadOnly, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}
	return domain.NewPaginatedResponse(notifs, params.Page, params.PageSize, total), nil
}

func (s *service) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.notifRepo.MarkAsRead(ctx, id)
}

func (s *service) MarkAllAsRead(ctx context.Context, workerID uuid.UUID) error {
	return s.notifRepo.MarkAllAsRead(ctx, workerID)
}

func (s *service) CountUnread(ctx context.Context, workerID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, workerID)
}
