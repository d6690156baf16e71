package needstatus

import (
	"context"
	"time"

	"github.com/google/uuid"

	"peduli-kasih/internal/domain"
	"peduli-kasih/internal/repository"
	"peduli-kasih/internal/service/notification"
)

// Service owns the supply-need status machine:
//
//	PENDING → APPROVED → PENDING_SUPERVISOR → COLLECTED
//	PENDING → REJECTED, PENDING_SUPERVISOR → REJECTED
//
// COLLECTED and REJECTED are terminal. Every transition is a single-row
// update; cross-row effects live in the distribution service.
type Service interface {
	Create(ctx context.Context, workerID uuid.UUID, input domain.CreateNeedInput) (*domain.SupplyNeed, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SupplyNeed, error)
	List(ctx context.Context, status *domain.NeedStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.SupplyNeed], error)
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.SupplyNeed, error)

	Approve(ctx context.Context, id uuid.UUID) error
	Reject(ctx context.Context, id uuid.UUID) error
	Confirm(ctx context.Context, id uuid.UUID) error
	SupervisorApprove(ctx context.Context, id uuid.UUID) error
	SupervisorReject(ctx context.Context, id uuid.UUID) error
	Collect(ctx context.Context, id, batchID uuid.UUID) error

	AddMatch(ctx context.Context, workerID uuid.UUID, input domain.CreateMatchInput) (*domain.SupplyMatch, error)
	ListMatches(ctx context.Context, needID uuid.UUID) ([]domain.SupplyMatch, error)

	SetNotificationService(notifSvc notification.Service)
}

type service struct {
	needRepo   repository.NeedRepository
	supplyRepo repository.SupplyRepository
	caseRepo   repository.CaseRepository
	matchRepo  repository.MatchRepository
	notifSvc   notification.Service
}

func NewService(
	needRepo repository.NeedRepository,
	supplyRepo repository.SupplyRepository,
	caseRepo repository.CaseRepository,
	matchRepo repository.MatchRepository,
) Service {
	return &service{
		needRepo:   needRepo,
		supplyRepo: supplyRepo,
		caseRepo:   caseRepo,
		matchRepo:  matchRepo,
	}
}

func (s *service) SetNotificationService(notifSvc notification.Service) {
	s.notifSvc = notifSvc
}

func (s *service) Create(ctx context.Context, workerID uuid.UUID, input domain.CreateNeedInput) (*domain.SupplyNeed, error) {
	if _, err := s.caseRepo.GetByID(ctx, input.CaseID); err != nil {
		return nil, err
	}
	if _, err := s.supplyRepo.GetByID(ctx, input.SupplyID); err != nil {
		return nil, err
	}

	applyDate := time.Now()
	if input.ApplyDate != nil {
		applyDate = *input.ApplyDate
	}

	need := &domain.SupplyNeed{
		ID:          uuid.New(),
		CaseID:      input.CaseID,
		SupplyID:    input.SupplyID,
		Quantity:    input.Quantity,
		Status:      domain.NeedStatusPending,
		ApplyDate:   applyDate,
		RequestedBy: workerID,
		Note:        input.Note,
	}

	if err := s.needRepo.Create(ctx, need); err != nil {
		return nil, domain.WrapPersistence("create need", err)
	}
	return need, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.SupplyNeed, error) {
	need, err := s.needRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.decorate(ctx, need)
	return need, nil
}

func (s *service) List(ctx context.Context, status *domain.NeedStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.SupplyNeed], error) {
	params.Validate()

	needs, total, err := s.needRepo.List(ctx, status, params)
	if err != nil {
		return domain.PaginatedResponse[domain.SupplyNeed]{}, err
	}

	for i := range needs {
		s.decorate(ctx, &needs[i])
	}
	return domain.NewPaginatedResponse(needs, params.Page, params.PageSize, total), nil
}

func (s *service) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.SupplyNeed, error) {
	needs, err := s.needRepo.ListByCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	for i := range needs {
		s.decorate(ctx, &needs[i])
	}
	return needs, nil
}

// decorate fills display-only fields; lookup failures leave them empty.
func (s *service) decorate(ctx context.Context, need *domain.SupplyNeed) {
	if c, err := s.caseRepo.GetByID(ctx, need.CaseID); err == nil {
		need.CaseName = c.FullName
	}
	if supply, err := s.supplyRepo.GetByID(ctx, need.SupplyID); err == nil {
		need.SupplyName = supply.Name
		cost := supply.UnitPrice * float64(need.Quantity)
		need.EstimatedCost = &cost
	}
}

func (s *service) Approve(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, domain.NeedStatusApproved, func(current domain.NeedStatus) error {
		if current != domain.NeedStatusPending {
			return domain.NewInvalidTransition(string(current), string(domain.NeedStatusApproved),
				"only pending requests can be approved")
		}
		return nil
	})
}

func (s *service) Reject(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, domain.NeedStatusRejected, func(current domain.NeedStatus) error {
		if current != domain.NeedStatusPending {
			return domain.NewInvalidTransition(string(current), string(domain.NeedStatusRejected),
				"only pending requests can be rejected")
		}
		return nil
	})
}

func (s *service) Confirm(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, domain.NeedStatusPendingSupervisor, func(current domain.NeedStatus) error {
		if current != domain.NeedStatusApproved {
			return domain.NewInvalidTransition(string(current), string(domain.NeedStatusPendingSupervisor),
				"only approved requests can be confirmed")
		}
		return nil
	})
}

func (s *service) SupervisorApprove(ctx context.Context, id uuid.UUID) error {
	need, err := s.needRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if need.Status != domain.NeedStatusPendingSupervisor {
		return domain.NewInvalidTransition(string(need.Status), string(domain.NeedStatusCollected),
			"only requests awaiting supervisor review can be released")
	}

	if err := s.needRepo.MarkCollected(ctx, id, nil, time.Now()); err != nil {
		return domain.WrapPersistence("supervisor approve need", err)
	}

	s.notify(ctx, need, domain.NeedStatusCollected)
	return nil
}

func (s *service) SupervisorReject(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, domain.NeedStatusRejected, func(current domain.NeedStatus) error {
		if current != domain.NeedStatusPendingSupervisor {
			return domain.NewInvalidTransition(string(current), string(domain.NeedStatusRejected),
				"only requests awaiting supervisor review can be rejected here")
		}
		return nil
	})
}

// Collect attaches the need to a distribution batch and marks it collected.
// Only approved needs (before or after supervisor review) are collectable;
// terminal needs and raw pending requests never reach a batch.
func (s *service) Collect(ctx context.Context, id, batchID uuid.UUID) error {
	need, err := s.needRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if need.Status != domain.NeedStatusApproved && need.Status != domain.NeedStatusPendingSupervisor {
		return domain.NewInvalidTransition(string(need.Status), string(domain.NeedStatusCollected),
			"only approved requests can be collected into a batch")
	}

	if err := s.needRepo.MarkCollected(ctx, id, &batchID, time.Now()); err != nil {
		return domain.WrapPersistence("collect need", err)
	}

	s.notify(ctx, need, domain.NeedStatusCollected)
	return nil
}

// transition loads the need, checks the precondition against the canonical
// current status, and applies a single-row status update. On precondition
// failure the row is untouched.
func (s *service) transition(ctx context.Context, id uuid.UUID, to domain.NeedStatus, check func(domain.NeedStatus) error) error {
	need, err := s.needRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := check(need.Status); err != nil {
		return err
	}

	if err := s.needRepo.UpdateStatus(ctx, id, to); err != nil {
		return domain.WrapPersistence("update need status", err)
	}

	s.notify(ctx, need, to)
	return nil
}

func (s *service) notify(ctx context.Context, need *domain.SupplyNeed, status domain.NeedStatus) {
	if s.notifSvc == nil {
		return
	}
	// Notification failures never fail the transition.
	_ = s.notifSvc.NotifyNeedStatus(ctx, need, status)
}

func (s *service) AddMatch(ctx context.Context, workerID uuid.UUID, input domain.CreateMatchInput) (*domain.SupplyMatch, error) {
	if _, err := s.needRepo.GetByID(ctx, input.NeedID); err != nil {
		return nil, err
	}

	matchDate := time.Now()
	if input.MatchDate != nil {
		matchDate = *input.MatchDate
	}

	match := &domain.SupplyMatch{
		ID:        uuid.New(),
		NeedID:    input.NeedID,
		MatchedBy: workerID,
		MatchDate: matchDate,
		Note:      input.Note,
	}

	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, domain.WrapPersistence("create match", err)
	}
	return match, nil
}

func (s *service) ListMatches(ctx context.Context, needID uuid.UUID) ([]domain.SupplyMatch, error) {
	return s.matchRepo.ListByNeed(ctx, needID)
}
