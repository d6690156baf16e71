package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peduli-kasih/internal/domain"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

// The participant counter is shared with a database trigger, so the delta
// must be applied by exactly one DB-evaluated statement with a floor at zero.
// No SELECT may precede it.
func TestAdjustParticipants_SingleAtomicStatement(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivityRepository(db)

	activityID := uuid.New()

	mock.ExpectExec(`UPDATE activities\s+SET current_participants = GREATEST\(0, current_participants \+ \$2\), updated_at = NOW\(\)\s+WHERE id = \$1`).
		WithArgs(activityID, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AdjustParticipants(context.Background(), activityID, 3)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustParticipants_NegativeDelta(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivityRepository(db)

	activityID := uuid.New()

	mock.ExpectExec(`UPDATE activities\s+SET current_participants = GREATEST\(0, current_participants \+ \$2\)`).
		WithArgs(activityID, -2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AdjustParticipants(context.Background(), activityID, -2)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustParticipants_ActivityMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivityRepository(db)

	activityID := uuid.New()

	mock.ExpectExec(`UPDATE activities`).
		WithArgs(activityID, 1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AdjustParticipants(context.Background(), activityID, 1)

	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
