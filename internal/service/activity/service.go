package activity

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"peduli-kasih/internal/domain"
	"peduli-kasih/internal/repository"
)

const (
	cacheKeyPrefix = "activity:"
	cacheTTL       = 2 * time.Minute
)

type Service interface {
	Create(ctx context.Context, workerID uuid.UUID, input domain.CreateActivityInput) (*domain.Activity, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Activity], error)
	Update(ctx context.Context, id uuid.UUID, input domain.CreateActivityInput) (*domain.Activity, error)
}

type service struct {
	activityRepo repository.ActivityRepository
	redis        *redis.Client
}

func NewService(activityRepo repository.ActivityRepository, redis *redis.Client) Service {
	return &service{
		activityRepo: activityRepo,
		redis:        redis,
	}
}

func (s *service) Create(ctx context.Context, workerID uuid.UUID, input domain.CreateActivityInput) (*domain.Activity, error) {
	activity := &domain.Activity{
		ID:              uuid.New(),
		Name:            input.Name,
		Description:     input.Description,
		Location:        input.Location,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		MaxParticipants: input.MaxParticipants,
		CreatedBy:       workerID,
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, domain.WrapPersistence("create activity", err)
	}
	return activity, nil
}

// GetByID serves cached reads for the public schedule page. The cache is
// short-lived because current_participants moves underneath us (coordinator
// deltas plus the database trigger).
func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	cacheKey := cacheKeyPrefix + id.String()

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var activity domain.Activity
			if json.Unmarshal([]byte(cached), &activity) == nil {
				return &activity, nil
			}
		}
	}

	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(activity); err == nil {
			s.redis.Set(ctx, cacheKey, data, cacheTTL)
		}
	}
	return activity, nil
}

func (s *service) List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Activity], error) {
	params.Validate()

	activities, total, err := s.activityRepo.List(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Activity]{}, err
	}
	return domain.NewPaginatedResponse(activities, params.Page, params.PageSize, total), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.CreateActivityInput) (*domain.Activity, error) {
	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	activity.Name = input.Name
	activity.Description = input.Description
	activity.Location = input.Location
	activity.StartDate = input.StartDate
	activity.EndDate = input.EndDate
	activity.MaxParticipants = input.MaxParticipants

	if err := s.activityRepo.Update(ctx, activity); err != nil {
		return nil, domain.WrapPersistence("update activity", err)
	}

	if s.redis != nil {
		s.redis.Del(ctx, cacheKeyPrefix+id.String())
	}
	return activity, nil
}
