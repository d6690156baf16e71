package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"peduli-kasih/internal/domain"
)

// MatchRepository stores append-only match annotations; matches are never
// updated or deleted.
type MatchRepository interface {
	Create(ctx context.Context, match *domain.SupplyMatch) error
	ListByNeed(ctx context.Context, needID uuid.UUID) ([]domain.SupplyMatch, error)
}

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, match *domain.SupplyMatch) error {
	query := `
		INSERT INTO supply_matches (id, need_id, matched_by, match_date, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		match.ID, match.NeedID, match.MatchedBy, match.MatchDate, match.Note,
	).Scan(&match.CreatedAt)
}

func (r *matchRepository) ListByNeed(ctx context.Context, needID uuid.UUID) ([]domain.SupplyMatch, error) {
	var matches []domain.SupplyMatch
	query := `SELECT * FROM supply_matches WHERE need_id = $1 ORDER BY match_date DESC`
	err := r.db.SelectContext(ctx, &matches, query, needID)
	return matches, err
}
