package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"peduli-kasih/internal/domain"
)

type MatchRepository struct {
	mock.Mock
}

func (m *MatchRepository) Create(ctx context.Context, match *domain.SupplyMatch) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}

func (m *MatchRepository) ListByNeed(ctx context.Context, needID uuid.UUID) ([]domain.SupplyMatch, error) {
	args := m.Called(ctx, needID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupplyMatch), args.Error(1)
}
