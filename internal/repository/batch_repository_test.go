package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"peduli-kasih/internal/domain"
)

func TestRejectWithRollback_CommitsNeedsAndBatchTogether(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBatchRepository(db)

	batchID := uuid.New()
	rejectedBy := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE supply_needs\s+SET status = \$2, batch_id = NULL, updated_at = NOW\(\)\s+WHERE batch_id = \$1`).
		WithArgs(batchID, string(domain.NeedStatusApproved)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`UPDATE distribution_batches\s+SET status = \$2, approved_by = \$3, approved_at = NOW\(\), notes = \$4, updated_at = NOW\(\)\s+WHERE id = \$1`).
		WithArgs(batchID, string(domain.BatchStatusRejected), rejectedBy, "bad count").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	count, err := repo.RejectWithRollback(context.Background(), batchID, rejectedBy, "bad count")

	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRejectWithRollback_BatchMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBatchRepository(db)

	batchID := uuid.New()
	rejectedBy := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE supply_needs`).
		WithArgs(batchID, string(domain.NeedStatusApproved)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE distribution_batches`).
		WithArgs(batchID, string(domain.BatchStatusRejected), rejectedBy, "whatever").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	count, err := repo.RejectWithRollback(context.Background(), batchID, rejectedBy, "whatever")

	assert.ErrorIs(t, err, domain.ErrBatchNotFound)
	assert.Zero(t, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failure after the need rows are touched must roll everything back; a
// half-applied rejection would strand needs between two batches.
func TestRejectWithRollback_BatchUpdateFailureRollsBackNeeds(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBatchRepository(db)

	batchID := uuid.New()
	rejectedBy := uuid.New()
	boom := errors.New("connection reset")

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE supply_needs`).
		WithArgs(batchID, string(domain.NeedStatusApproved)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`UPDATE distribution_batches`).
		WithArgs(batchID, string(domain.BatchStatusRejected), rejectedBy, "broken").
		WillReturnError(boom)
	mock.ExpectRollback()

	count, err := repo.RejectWithRollback(context.Background(), batchID, rejectedBy, "broken")

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
