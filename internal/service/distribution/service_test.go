package distribution_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"peduli-kasih/internal/domain"
	"peduli-kasih/internal/mocks"
	"peduli-kasih/internal/service/distribution"
)

type batchFixture struct {
	batchRepo *mocks.BatchRepository
	needRepo  *mocks.NeedRepository
	needSvc   *mocks.NeedService
	svc       distribution.Service
}

func newBatchFixture() *batchFixture {
	f := &batchFixture{
		batchRepo: new(mocks.BatchRepository),
		needRepo:  new(mocks.NeedRepository),
		needSvc:   new(mocks.NeedService),
	}
	f.svc = distribution.NewService(f.batchRepo, f.needRepo, f.needSvc)
	return f
}

func pendingBatch() *domain.DistributionBatch {
	return &domain.DistributionBatch{
		ID:        uuid.New(),
		Status:    domain.BatchStatusPending,
		CreatedBy: uuid.New(),
	}
}

func TestReject_RollsBackMemberNeeds(t *testing.T) {
	f := newBatchFixture()
	batch := pendingBatch()
	supervisorID := uuid.New()

	f.batchRepo.On("GetByID", mock.Anything, batch.ID).Return(batch, nil)
	f.batchRepo.On("RejectWithRollback", mock.Anything, batch.ID, supervisorID, "bad count").
		Return(int64(2), nil)

	rolledBack, err := f.svc.Reject(context.Background(), batch.ID, supervisorID, "bad count")

	require.NoError(t, err)
	assert.Equal(t, int64(2), rolledBack)
	f.batchRepo.AssertExpectations(t)
}

func TestReject_NotifiesRollbackCount(t *testing.T) {
	f := newBatchFixture()
	notifSvc := new(mocks.NotificationService)
	f.svc.SetNotificationService(notifSvc)

	batch := pendingBatch()
	supervisorID := uuid.New()

	f.batchRepo.On("GetByID", mock.Anything, batch.ID).Return(batch, nil)
	f.batchRepo.On("RejectWithRollback", mock.Anything, batch.ID, supervisorID, "wrong cases").
		Return(int64(5), nil)
	notifSvc.On("NotifyBatchDecision", mock.Anything, batch, domain.BatchStatusRejected, int64(5)).Return(nil)

	_, err := f.svc.Reject(context.Background(), batch.ID, supervisorID, "wrong cases")

	require.NoError(t, err)
	notifSvc.AssertExpectations(t)
}

func TestReject_OnlyPendingBatches(t *testing.T) {
	for _, status := range []domain.BatchStatus{
		domain.BatchStatusApproved,
		domain.BatchStatusRejected,
	} {
		t.Run(string(status), func(t *testing.T) {
			f := newBatchFixture()
			batch := pendingBatch()
			batch.Status = status

			f.batchRepo.On("GetByID", mock.Anything, batch.ID).Return(batch, nil)

			_, err := f.svc.Reject(context.Background(), batch.ID, uuid.New(), "late")

			assert.True(t, domain.IsInvalidTransition(err))
			f.batchRepo.AssertNotCalled(t, "RejectWithRollback",
				mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestReject_BatchNotFound(t *testing.T) {
	f := newBatchFixture()
	batchID := uuid.New()

	f.batchRepo.On("GetByID", mock.Anything, batchID).Return(nil, domain.ErrBatchNotFound)

	_, err := f.svc.Reject(context.Background(), batchID, uuid.New(), "gone")

	assert.ErrorIs(t, err, domain.ErrBatchNotFound)
}

func TestApprove_PendingBatch(t *testing.T) {
	f := newBatchFixture()
	batch := pendingBatch()
	supervisorID := uuid.New()

	f.batchRepo.On("GetByID", mock.Anything, batch.ID).Return(batch, nil)
	f.batchRepo.On("Approve", mock.Anything, batch.ID, supervisorID).Return(nil)

	require.NoError(t, f.svc.Approve(context.Background(), batch.ID, supervisorID))
	f.batchRepo.AssertExpectations(t)
}

func TestApprove_OnlyPendingBatches(t *testing.T) {
	f := newBatchFixture()
	batch := pendingBatch()
	batch.Status = domain.BatchStatusApproved

	f.batchRepo.On("GetByID", mock.Anything, batch.ID).Return(batch, nil)

	err := f.svc.Approve(context.Background(), batch.ID, uuid.New())

	assert.True(t, domain.IsInvalidTransition(err))
	f.batchRepo.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything, mock.Anything)
}

func TestCollectNeed_DelegatesForPendingBatch(t *testing.T) {
	f := newBatchFixture()
	batch := pendingBatch()
	needID := uuid.New()

	f.batchRepo.On("GetByID", mock.Anything, batch.ID).Return(batch, nil)
	f.needSvc.On("Collect", mock.Anything, needID, batch.ID).Return(nil)

	require.NoError(t, f.svc.CollectNeed(context.Background(), batch.ID, needID))
	f.needSvc.AssertExpectations(t)
}

func TestCollectNeed_RefusesDecidedBatch(t *testing.T) {
	f := newBatchFixture()
	batch := pendingBatch()
	batch.Status = domain.BatchStatusRejected

	f.batchRepo.On("GetByID", mock.Anything, batch.ID).Return(batch, nil)

	err := f.svc.CollectNeed(context.Background(), batch.ID, uuid.New())

	assert.True(t, domain.IsInvalidTransition(err))
	f.needSvc.AssertNotCalled(t, "Collect", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBatch_StartsPending(t *testing.T) {
	f := newBatchFixture()
	workerID := uuid.New()

	f.batchRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.DistributionBatch) bool {
		return b.Status == domain.BatchStatusPending && b.CreatedBy == workerID && b.CaseCount == 3
	})).Return(nil)

	batch, err := f.svc.CreateBatch(context.Background(), workerID, domain.CreateBatchInput{
		CaseCount:        3,
		TotalSupplyItems: 7,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BatchStatusPending, batch.Status)
	f.batchRepo.AssertExpectations(t)
}
