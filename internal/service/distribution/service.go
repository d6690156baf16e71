package distribution

import (
	"context"

	"github.com/google/uuid"

	"peduli-kasih/internal/domain"
	"peduli-kasih/internal/repository"
	"peduli-kasih/internal/service/needstatus"
	"peduli-kasih/internal/service/notification"
)

// Service creates distribution batches, attaches collected needs to them,
// and approves or rejects a batch as a unit. Rejection is the one
// compensating transaction in the system: every member need is returned to
// APPROVED with its batch reference cleared, atomically with the batch
// status change.
type Service interface {
	CreateBatch(ctx context.Context, workerID uuid.UUID, input domain.CreateBatchInput) (*domain.DistributionBatch, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DistributionBatch, error)
	List(ctx context.Context, status *domain.BatchStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.DistributionBatch], error)
	ListNeedsInBatch(ctx context.Context, batchID uuid.UUID) ([]domain.SupplyNeed, error)

	CollectNeed(ctx context.Context, batchID, needID uuid.UUID) error
	Approve(ctx context.Context, batchID, workerID uuid.UUID) error
	Reject(ctx context.Context, batchID, workerID uuid.UUID, reason string) (int64, error)

	SetNotificationService(notifSvc notification.Service)
}

type service struct {
	batchRepo repository.BatchRepository
	needRepo  repository.NeedRepository
	needSvc   needstatus.Service
	notifSvc  notification.Service
}

func NewService(
	batchRepo repository.BatchRepository,
	needRepo repository.NeedRepository,
	needSvc needstatus.Service,
) Service {
	return &service{
		batchRepo: batchRepo,
		needRepo:  needRepo,
		needSvc:   needSvc,
	}
}

func (s *service) SetNotificationService(notifSvc notification.Service) {
	s.notifSvc = notifSvc
}

func (s *service) CreateBatch(ctx context.Context, workerID uuid.UUID, input domain.CreateBatchInput) (*domain.DistributionBatch, error) {
	batch := &domain.DistributionBatch{
		ID:               uuid.New(),
		DistributionDate: input.DistributionDate,
		CaseCount:        input.CaseCount,
		TotalSupplyItems: input.TotalSupplyItems,
		Status:           domain.BatchStatusPending,
		CreatedBy:        workerID,
		Notes:            input.Notes,
	}

	if err := s.batchRepo.Create(ctx, batch); err != nil {
		return nil, domain.WrapPersistence("create batch", err)
	}
	return batch, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.DistributionBatch, error) {
	return s.batchRepo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, status *domain.BatchStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.DistributionBatch], error) {
	params.Validate()

	batches, total, err := s.batchRepo.List(ctx, status, params)
	if err != nil {
		return domain.PaginatedResponse[domain.DistributionBatch]{}, err
	}
	return domain.NewPaginatedResponse(batches, params.Page, params.PageSize, total), nil
}

func (s *service) ListNeedsInBatch(ctx context.Context, batchID uuid.UUID) ([]domain.SupplyNeed, error) {
	if _, err := s.batchRepo.GetByID(ctx, batchID); err != nil {
		return nil, err
	}
	return s.needRepo.ListByBatch(ctx, batchID)
}

// CollectNeed attaches one need to a pending batch. Attachment happens one
// need at a time after batch creation, never during it.
func (s *service) CollectNeed(ctx context.Context, batchID, needID uuid.UUID) error {
	batch, err := s.batchRepo.GetByID(ctx, batchID)
	if err != nil {
		return err
	}

	if batch.Status != domain.BatchStatusPending {
		return domain.NewInvalidTransition(string(batch.Status), string(batch.Status),
			"needs can only be collected into a pending batch")
	}

	return s.needSvc.Collect(ctx, needID, batchID)
}

// Approve finalizes the batch. Member needs stay collected: collection is
// final once the batch is approved.
func (s *service) Approve(ctx context.Context, batchID, workerID uuid.UUID) error {
	batch, err := s.batchRepo.GetByID(ctx, batchID)
	if err != nil {
		return err
	}

	if batch.Status != domain.BatchStatusPending {
		return domain.NewInvalidTransition(string(batch.Status), string(domain.BatchStatusApproved),
			"only pending batches can be approved")
	}

	if err := s.batchRepo.Approve(ctx, batchID, workerID); err != nil {
		return domain.WrapPersistence("approve batch", err)
	}

	if s.notifSvc != nil {
		_ = s.notifSvc.NotifyBatchDecision(ctx, batch, domain.BatchStatusApproved, 0)
	}
	return nil
}

// Reject cancels the batch and rolls back every member need in one
// transaction. Returns how many needs were returned to the approved pool.
func (s *service) Reject(ctx context.Context, batchID, workerID uuid.UUID, reason string) (int64, error) {
	batch, err := s.batchRepo.GetByID(ctx, batchID)
	if err != nil {
		return 0, err
	}

	if batch.Status != domain.BatchStatusPending {
		return 0, domain.NewInvalidTransition(string(batch.Status), string(domain.BatchStatusRejected),
			"only pending batches can be rejected")
	}

	rolledBack, err := s.batchRepo.RejectWithRollback(ctx, batchID, workerID, reason)
	if err != nil {
		if domain.IsNotFound(err) {
			return 0, err
		}
		return 0, domain.WrapPersistence("reject batch", err)
	}

	if s.notifSvc != nil {
		_ = s.notifSvc.NotifyBatchDecision(ctx, batch, domain.BatchStatusRejected, rolledBack)
	}
	return rolledBack, nil
}
