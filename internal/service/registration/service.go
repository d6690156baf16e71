package registration

import (
	"context"

	"github.com/google/uuid"

	"peduli-kasih/internal/domain"
	"peduli-kasih/internal/repository"
)

// Service coordinates registration status changes with the activity's
// participant counter. The counter column is also written by a database
// trigger, so the delta is applied by the repository as one atomic
// DB-evaluated statement, deliberately outside the transaction that saves
// the status (folding both into one change-tracked write conflicts with the
// trigger).
type Service interface {
	Register(ctx context.Context, input domain.CreateRegistrationInput) (*domain.ActivityRegistration, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ActivityRegistration, error)
	ListByActivity(ctx context.Context, activityID uuid.UUID) ([]domain.ActivityRegistration, error)
	SetStatus(ctx context.Context, id uuid.UUID, newStatus domain.RegistrationStatus) (int, error)
}

type service struct {
	regRepo      repository.RegistrationRepository
	activityRepo repository.ActivityRepository
	caseRepo     repository.CaseRepository
}

func NewService(
	regRepo repository.RegistrationRepository,
	activityRepo repository.ActivityRepository,
	caseRepo repository.CaseRepository,
) Service {
	return &service{
		regRepo:      regRepo,
		activityRepo: activityRepo,
		caseRepo:     caseRepo,
	}
}

func (s *service) Register(ctx context.Context, input domain.CreateRegistrationInput) (*domain.ActivityRegistration, error) {
	if _, err := s.activityRepo.GetByID(ctx, input.ActivityID); err != nil {
		return nil, err
	}

	if input.RegistrantType == domain.RegistrantCase {
		if input.CaseID == nil {
			return nil, domain.ErrCaseNotFound
		}
		if _, err := s.caseRepo.GetByID(ctx, *input.CaseID); err != nil {
			return nil, err
		}
	}

	reg := &domain.ActivityRegistration{
		ID:                 uuid.New(),
		ActivityID:         input.ActivityID,
		RegistrantType:     input.RegistrantType,
		CaseID:             input.CaseID,
		RegistrantName:     input.RegistrantName,
		ContactPhone:       input.ContactPhone,
		NumberOfCompanions: input.NumberOfCompanions,
		Status:             domain.RegistrationPending,
	}

	if err := s.regRepo.Create(ctx, reg); err != nil {
		return nil, domain.WrapPersistence("create registration", err)
	}
	return reg, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.ActivityRegistration, error) {
	return s.regRepo.GetByID(ctx, id)
}

func (s *service) ListByActivity(ctx context.Context, activityID uuid.UUID) ([]domain.ActivityRegistration, error) {
	if _, err := s.activityRepo.GetByID(ctx, activityID); err != nil {
		return nil, err
	}
	return s.regRepo.ListByActivity(ctx, activityID)
}

// SetStatus persists the new status, then applies the matching participant
// delta. Only the Approved boundary moves the counter:
//
//	Approved → Cancelled:  −partySize
//	not Approved → Approved: +partySize
//	anything else:          0
//
// Returns the delta that was applied so callers can report it.
func (s *service) SetStatus(ctx context.Context, id uuid.UUID, newStatus domain.RegistrationStatus) (int, error) {
	reg, err := s.regRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}

	activity, err := s.activityRepo.GetByID(ctx, reg.ActivityID)
	if err != nil {
		return 0, err
	}

	delta := participantDelta(reg, newStatus)

	if err := s.regRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		return 0, domain.WrapPersistence("update registration status", err)
	}

	if delta != 0 {
		if err := s.activityRepo.AdjustParticipants(ctx, activity.ID, delta); err != nil {
			return 0, domain.WrapPersistence("adjust participant count", err)
		}
	}

	return delta, nil
}

func participantDelta(reg *domain.ActivityRegistration, newStatus domain.RegistrationStatus) int {
	partySize := reg.PartySize()

	switch {
	case reg.Status == domain.RegistrationApproved && newStatus == domain.RegistrationCancelled:
		return -partySize
	case reg.Status != domain.RegistrationApproved && newStatus == domain.RegistrationApproved:
		return partySize
	default:
		return 0
	}
}
