package worker

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"peduli-kasih/internal/domain"
	"peduli-kasih/internal/repository"
	"peduli-kasih/internal/service/email"
)

var ErrEmailExists = errors.New("email already registered")

type Service interface {
	Create(ctx context.Context, input domain.CreateWorkerInput) (*domain.Worker, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Worker, error)
	List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Worker], error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type service struct {
	workerRepo repository.WorkerRepository
	emailSvc   email.Service
}

func NewService(workerRepo repository.WorkerRepository, emailSvc email.Service) Service {
	return &service{
		workerRepo: workerRepo,
		emailSvc:   emailSvc,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateWorkerInput) (*domain.Worker, error) {
	exists, err := s.workerRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	worker := &domain.Worker{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: string(hashed),
		FullName:     input.FullName,
		Role:         input.Role,
		Phone:        input.Phone,
		IsActive:     true,
	}

	if err := s.workerRepo.Create(ctx, worker); err != nil {
		return nil, domain.WrapPersistence("create worker", err)
	}

	go func() {
		_ = s.emailSvc.SendWelcomeEmail(context.Background(), worker.Email, worker.FullName, input.Password)
	}()

	return worker, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Worker, error) {
	return s.workerRepo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Worker], error) {
	params.Validate()

	workers, total, err := s.workerRepo.List(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Worker]{}, err
	}
	return domain.NewPaginatedResponse(workers, params.Page, params.PageSize, total), nil
}

func (s *service) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return s.workerRepo.SetActive(ctx, id, active)
}
