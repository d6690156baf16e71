package cases

import (
	"context"

	"github.com/google/uuid"

	"peduli-kasih/internal/domain"
	"peduli-kasih/internal/repository"
)

type Service interface {
	Create(ctx context.Context, input domain.CreateCaseInput) (*domain.Case, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Case, error)
	List(ctx context.Context, status *domain.CaseStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.Case], error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateCaseInput) (*domain.Case, error)
}

type service struct {
	caseRepo   repository.CaseRepository
	workerRepo repository.WorkerRepository
}

func NewService(caseRepo repository.CaseRepository, workerRepo repository.WorkerRepository) Service {
	return &service{
		caseRepo:   caseRepo,
		workerRepo: workerRepo,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateCaseInput) (*domain.Case, error) {
	if input.AssignedWorkerID != nil {
		if _, err := s.workerRepo.GetByID(ctx, *input.AssignedWorkerID); err != nil {
			return nil, err
		}
	}

	c := &domain.Case{
		ID:               uuid.New(),
		CaseNumber:       input.CaseNumber,
		FullName:         input.FullName,
		Address:          input.Address,
		Phone:            input.Phone,
		BirthDate:        input.BirthDate,
		FamilySize:       input.FamilySize,
		Status:           domain.CaseStatusActive,
		AssignedWorkerID: input.AssignedWorkerID,
	}

	if err := s.caseRepo.Create(ctx, c); err != nil {
		return nil, domain.WrapPersistence("create case", err)
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Case, error) {
	return s.caseRepo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, status *domain.CaseStatus, params domain.PaginationParams) (domain.PaginatedResponse[domain.Case], error) {
	params.Validate()

	items, total, err := s.caseRepo.List(ctx, status, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Case]{}, err
	}
	return domain.NewPaginatedResponse(items, params.Page, params.PageSize, total), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateCaseInput) (*domain.Case, error) {
	c, err := s.caseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		c.FullName = *input.FullName
	}
	if input.Address != nil {
		c.Address = input.Address
	}
	if input.Phone != nil {
		c.Phone = input.Phone
	}
	if input.FamilySize != nil {
		c.FamilySize = *input.FamilySize
	}
	if input.Status != nil {
		c.Status = *input.Status
	}
	if input.AssignedWorkerID != nil {
		if _, err := s.workerRepo.GetByID(ctx, *input.AssignedWorkerID); err != nil {
			return nil, err
		}
		c.AssignedWorkerID = input.AssignedWorkerID
	}

	if err := s.caseRepo.Update(ctx, c); err != nil {
		return nil, domain.WrapPersistence("update case", err)
	}
	return c, nil
}
