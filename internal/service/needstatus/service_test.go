package needstatus_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"peduli-kasih/internal/domain"
	"peduli-kasih/internal/mocks"
	"peduli-kasih/internal/service/needstatus"
)

type needFixture struct {
	needRepo   *mocks.NeedRepository
	supplyRepo *mocks.SupplyRepository
	caseRepo   *mocks.CaseRepository
	matchRepo  *mocks.MatchRepository
	svc        needstatus.Service
}

func newNeedFixture() *needFixture {
	f := &needFixture{
		needRepo:   new(mocks.NeedRepository),
		supplyRepo: new(mocks.SupplyRepository),
		caseRepo:   new(mocks.CaseRepository),
		matchRepo:  new(mocks.MatchRepository),
	}
	f.svc = needstatus.NewService(f.needRepo, f.supplyRepo, f.caseRepo, f.matchRepo)
	return f
}

func needWithStatus(status domain.NeedStatus) *domain.SupplyNeed {
	return &domain.SupplyNeed{
		ID:       uuid.New(),
		CaseID:   uuid.New(),
		SupplyID: uuid.New(),
		Quantity: 2,
		Status:   status,
	}
}

func TestApprove_FromPending(t *testing.T) {
	f := newNeedFixture()
	need := needWithStatus(domain.NeedStatusPending)

	f.needRepo.On("GetByID", mock.Anything, need.ID).Return(need, nil)
	f.needRepo.On("UpdateStatus", mock.Anything, need.ID, domain.NeedStatusApproved).Return(nil)

	err := f.svc.Approve(context.Background(), need.ID)

	require.NoError(t, err)
	f.needRepo.AssertExpectations(t)
}

func TestApprove_NotPending(t *testing.T) {
	for _, status := range []domain.NeedStatus{
		domain.NeedStatusApproved,
		domain.NeedStatusPendingSupervisor,
		domain.NeedStatusCollected,
		domain.NeedStatusRejected,
	} {
		t.Run(string(status), func(t *testing.T) {
			f := newNeedFixture()
			need := needWithStatus(status)

			f.needRepo.On("GetByID", mock.Anything, need.ID).Return(need, nil)

			err := f.svc.Approve(context.Background(), need.ID)

			assert.True(t, domain.IsInvalidTransition(err))
			f.needRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestReject_FromPending(t *testing.T) {
	f := newNeedFixture()
	need := needWithStatus(domain.NeedStatusPending)

	f.needRepo.On("GetByID", mock.Anything, need.ID).Return(need, nil)
	f.needRepo.On("UpdateStatus", mock.Anything, need.ID, domain.NeedStatusRejected).Return(nil)

	require.NoError(t, f.svc.Reject(context.Background(), need.ID))
	f.needRepo.AssertExpectations(t)
}

// A request that was never approved cannot be confirmed, and the failed
// precondition must not touch the row.
func TestConfirm_RequiresApproved(t *testing.T) {
	f := newNeedFixture()
	need := needWithStatus(domain.NeedStatusPending)

	f.needRepo.On("GetByID", mock.Anything, need.ID).Return(need, nil)

	err := f.svc.Confirm(context.Background(), need.ID)

	require.Error(t, err)
	assert.True(t, domain.IsInvalidTransition(err))
	assert.Contains(t, err.Error(), "only approved requests can be confirmed")
	f.needRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirm_FromApproved(t *testing.T) {
	f := newNeedFixture()
	need := needWithStatus(domain.NeedStatusApproved)

	f.needRepo.On("GetByID", mock.Anything, need.ID).Return(need, nil)
	f.needRepo.On("UpdateStatus", mock.Anything, need.ID, domain.NeedStatusPendingSupervisor).Return(nil)

	require.NoError(t, f.svc.Confirm(context.Background(), need.ID))
	f.needRepo.AssertExpectations(t)
}

func TestSupervisorApprove_MarksCollectedWithoutBatch(t *testing.T) {
	f := newNeedFixture()
	need := needWithStatus(domain.NeedStatusPendingSupervisor)

	f.needRepo.On("GetByID", mock.Anything, need.ID).Return(need, nil)
	f.needRepo.On("MarkCollected", mock.Anything, need.ID, (*uuid.UUID)(nil), mock.Anything).Return(nil)

	require.NoError(t, f.svc.SupervisorApprove(context.Background(), need.ID))
	f.needRepo.AssertExpectations(t)
}

func TestSupervisorApprove_WrongState(t *testing.T) {
	f := newNeedFixture()
	need := needWithStatus(domain.NeedStatusApproved)

	f.needRepo.On("GetByID", mock.Anything, need.ID).Return(need, nil)

	err := f.svc.SupervisorApprove(context.Background(), need.ID)

	assert.True(t, domain.IsInvalidTransition(err))
	f.needRepo.AssertNotCalled(t, "MarkCollected", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSupervisorReject_FromPendingSupervisor(t *testing.T) {
	f := newNeedFixture()
	need := needWithStatus(domain.NeedStatusPendingSupervisor)

	f.needRepo.On("GetByID", mock.Anything, need.ID).Return(need, nil)
	f.needRepo.On("UpdateStatus", mock.Anything, need.ID, domain.NeedStatusRejected).Return(nil)

	require.NoError(t, f.svc.SupervisorReject(context.Background(), need.ID))
	f.needRepo.AssertExpectations(t)
}

func TestCollect_AttachesBatch(t *testing.T) {
	for _, status := range []domain.NeedStatus{
		domain.NeedStatusApproved,
		domain.NeedStatusPendingSupervisor,
	} {
		t.Run(string(status), func(t *testing.T) {
			f := newNeedFixture()
			need := needWithStatus(status)
			batchID := uuid.New()

			f.needRepo.On("GetByID", mock.Anything, need.ID).Return(need, nil)
			f.needRepo.On("MarkCollected", mock.Anything, need.ID, &batchID, mock.Anything).Return(nil)

			require.NoError(t, f.svc.Collect(context.Background(), need.ID, batchID))
			f.needRepo.AssertExpectations(t)
		})
	}
}

func TestCollect_RefusesUnapprovedAndTerminal(t *testing.T) {
	for _, status := range []domain.NeedStatus{
		domain.NeedStatusPending,
		domain.NeedStatusCollected,
		domain.NeedStatusRejected,
	} {
		t.Run(string(status), func(t *testing.T) {
			f := newNeedFixture()
			need := needWithStatus(status)

			f.needRepo.On("GetByID", mock.Anything, need.ID).Return(need, nil)

			err := f.svc.Collect(context.Background(), need.ID, uuid.New())

			assert.True(t, domain.IsInvalidTransition(err))
			f.needRepo.AssertNotCalled(t, "MarkCollected", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestApprove_NeedNotFound(t *testing.T) {
	f := newNeedFixture()
	needID := uuid.New()

	f.needRepo.On("GetByID", mock.Anything, needID).Return(nil, domain.ErrNeedNotFound)

	err := f.svc.Approve(context.Background(), needID)

	assert.ErrorIs(t, err, domain.ErrNeedNotFound)
}

func TestApprove_NotifiesWorker(t *testing.T) {
	f := newNeedFixture()
	notifSvc := new(mocks.NotificationService)
	f.svc.SetNotificationService(notifSvc)

	need := needWithStatus(domain.NeedStatusPending)

	f.needRepo.On("GetByID", mock.Anything, need.ID).Return(need, nil)
	f.needRepo.On("UpdateStatus", mock.Anything, need.ID, domain.NeedStatusApproved).Return(nil)
	notifSvc.On("NotifyNeedStatus", mock.Anything, need, domain.NeedStatusApproved).Return(nil)

	require.NoError(t, f.svc.Approve(context.Background(), need.ID))
	notifSvc.AssertExpectations(t)
}

func TestCreate_ValidatesCaseAndSupply(t *testing.T) {
	f := newNeedFixture()
	workerID := uuid.New()
	input := domain.CreateNeedInput{
		CaseID:   uuid.New(),
		SupplyID: uuid.New(),
		Quantity: 3,
	}

	f.caseRepo.On("GetByID", mock.Anything, input.CaseID).Return(&domain.Case{ID: input.CaseID}, nil)
	f.supplyRepo.On("GetByID", mock.Anything, input.SupplyID).Return(&domain.Supply{ID: input.SupplyID}, nil)
	f.needRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.SupplyNeed) bool {
		return n.Status == domain.NeedStatusPending && n.RequestedBy == workerID && n.Quantity == 3
	})).Return(nil)

	need, err := f.svc.Create(context.Background(), workerID, input)

	require.NoError(t, err)
	assert.Equal(t, domain.NeedStatusPending, need.Status)
	f.needRepo.AssertExpectations(t)
}

func TestCreate_UnknownCase(t *testing.T) {
	f := newNeedFixture()
	input := domain.CreateNeedInput{CaseID: uuid.New(), SupplyID: uuid.New(), Quantity: 1}

	f.caseRepo.On("GetByID", mock.Anything, input.CaseID).Return(nil, domain.ErrCaseNotFound)

	_, err := f.svc.Create(context.Background(), uuid.New(), input)

	assert.ErrorIs(t, err, domain.ErrCaseNotFound)
	f.needRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
