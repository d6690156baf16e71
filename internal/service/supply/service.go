package supply

import (
	"context"

	"github.com/google/uuid"

	"peduli-kasih/internal/domain"
	"peduli-kasih/internal/repository"
)

type Service interface {
	Create(ctx context.Context, input domain.CreateSupplyInput) (*domain.Supply, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Supply, error)
	List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Supply], error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateSupplyInput) (*domain.Supply, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	supplyRepo repository.SupplyRepository
}

func NewService(supplyRepo repository.SupplyRepository) Service {
	return &service{supplyRepo: supplyRepo}
}

func (s *service) Create(ctx context.Context, input domain.CreateSupplyInput) (*domain.Supply, error) {
	supply := &domain.Supply{
		ID:        uuid.New(),
		Name:      input.Name,
		Category:  input.Category,
		Unit:      input.Unit,
		UnitPrice: input.UnitPrice,
	}

	if err := s.supplyRepo.Create(ctx, supply); err != nil {
		return nil, domain.WrapPersistence("create supply", err)
	}
	return supply, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Supply, error) {
	return s.supplyRepo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Supply], error) {
	params.Validate()

	supplies, total, err := s.supplyRepo.List(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Supply]{}, err
	}
	return domain.NewPaginatedResponse(supplies, params.Page, params.PageSize, total), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateSupplyInput) (*domain.Supply, error) {
	supply, err := s.supplyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		supply.Name = *input.Name
	}
	if input.Category != nil {
		supply.Category = *input.Category
	}
	if input.Unit != nil {
		supply.Unit = *input.Unit
	}
	if input.UnitPrice != nil {
		supply.UnitPrice = *input.UnitPrice
	}

	if err := s.supplyRepo.Update(ctx, supply); err != nil {
		return nil, domain.WrapPersistence("update supply", err)
	}
	return supply, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.supplyRepo.Delete(ctx, id)
}
