package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"peduli-kasih/internal/domain"
	"peduli-kasih/internal/repository"
)

type Stats struct {
	ActiveCases        int64 `json:"active_cases"`
	PendingNeeds       int64 `json:"pending_needs"`
	NeedsAwaitingSuper int64 `json:"needs_awaiting_supervisor"`
	PendingBatches     int64 `json:"pending_batches"`
	UpcomingActivities int64 `json:"upcoming_activities"`
}

type Service interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type service struct {
	caseRepo     repository.CaseRepository
	needRepo     repository.NeedRepository
	batchRepo    repository.BatchRepository
	activityRepo repository.ActivityRepository
	redis        *redis.Client
}

func NewService(
	caseRepo repository.CaseRepository,
	needRepo repository.NeedRepository,
	batchRepo repository.BatchRepository,
	activityRepo repository.ActivityRepository,
	redis *redis.Client,
) Service {
	return &service{
		caseRepo:     caseRepo,
		needRepo:     needRepo,
		batchRepo:    batchRepo,
		activityRepo: activityRepo,
		redis:        redis,
	}
}

func (s *service) GetStats(ctx context.Context) (*Stats, error) {
	cacheKey := "dashboard:stats"

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var stats Stats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	activeCases, err := s.caseRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	pendingNeeds, err := s.needRepo.CountByStatus(ctx, domain.NeedStatusPending)
	if err != nil {
		return nil, err
	}

	awaitingSuper, err := s.needRepo.CountByStatus(ctx, domain.NeedStatusPendingSupervisor)
	if err != nil {
		return nil, err
	}

	pendingBatches, err := s.batchRepo.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.activityRepo.CountUpcoming(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		ActiveCases:        activeCases,
		PendingNeeds:       pendingNeeds,
		NeedsAwaitingSuper: awaitingSuper,
		PendingBatches:     pendingBatches,
		UpcomingActivities: upcoming,
	}

	if s.redis != nil {
		if data, err := json.Marshal(stats); err == nil {
			s.redis.Set(ctx, cacheKey, data, 5*time.Minute)
		}
	}

	return stats, nil
}
