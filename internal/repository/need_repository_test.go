package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peduli-kasih/internal/domain"
)

// Legacy rows carry free-form Indonesian status spellings; reads must hand
// callers the canonical enum.
func TestNeedGetByID_NormalizesLegacyStatus(t *testing.T) {
	tests := []struct {
		stored string
		want   domain.NeedStatus
	}{
		{"Menunggu", domain.NeedStatusPending},
		{"Disetujui", domain.NeedStatusApproved},
		{"Menunggu Atasan", domain.NeedStatusPendingSupervisor},
		{"Sudah Diambil", domain.NeedStatusCollected},
		{"Ditolak", domain.NeedStatusRejected},
		{"something unrecognized", domain.NeedStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.stored, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewNeedRepository(db)

			needID := uuid.New()
			rows := sqlmock.NewRows([]string{"id", "case_id", "supply_id", "quantity", "status", "apply_date", "requested_by", "created_at", "updated_at"}).
				AddRow(needID, uuid.New(), uuid.New(), 1, tt.stored, time.Now(), uuid.New(), time.Now(), time.Now())

			mock.ExpectQuery(`SELECT \* FROM supply_needs WHERE id = \$1`).
				WithArgs(needID).
				WillReturnRows(rows)

			need, err := repo.GetByID(context.Background(), needID)

			require.NoError(t, err)
			assert.Equal(t, tt.want, need.Status)
		})
	}
}

func TestNeedGetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNeedRepository(db)

	needID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM supply_needs WHERE id = \$1`).
		WithArgs(needID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), needID)

	assert.ErrorIs(t, err, domain.ErrNeedNotFound)
}

func TestNeedUpdateStatus_MissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNeedRepository(db)

	needID := uuid.New()
	mock.ExpectExec(`UPDATE supply_needs SET status = \$2, updated_at = NOW\(\) WHERE id = \$1`).
		WithArgs(needID, domain.NeedStatusApproved).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), needID, domain.NeedStatusApproved)

	assert.ErrorIs(t, err, domain.ErrNeedNotFound)
}

func TestNeedMarkCollected_SetsBatchAndPickup(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNeedRepository(db)

	needID := uuid.New()
	batchID := uuid.New()
	pickup := time.Now()

	mock.ExpectExec(`UPDATE supply_needs\s+SET status = \$2, batch_id = \$3, pickup_date = \$4, updated_at = NOW\(\)\s+WHERE id = \$1`).
		WithArgs(needID, domain.NeedStatusCollected, &batchID, pickup).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkCollected(context.Background(), needID, &batchID, pickup)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
