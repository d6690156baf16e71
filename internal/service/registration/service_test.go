package registration_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"peduli-kasih/internal/domain"
	"peduli-kasih/internal/mocks"
	"peduli-kasih/internal/service/registration"
)

type regFixture struct {
	regRepo      *mocks.RegistrationRepository
	activityRepo *mocks.ActivityRepository
	caseRepo     *mocks.CaseRepository
	svc          registration.Service
}

func newRegFixture() *regFixture {
	f := &regFixture{
		regRepo:      new(mocks.RegistrationRepository),
		activityRepo: new(mocks.ActivityRepository),
		caseRepo:     new(mocks.CaseRepository),
	}
	f.svc = registration.NewService(f.regRepo, f.activityRepo, f.caseRepo)
	return f
}

func publicRegistration(activityID uuid.UUID, status domain.RegistrationStatus, companions int) *domain.ActivityRegistration {
	return &domain.ActivityRegistration{
		ID:                 uuid.New(),
		ActivityID:         activityID,
		RegistrantType:     domain.RegistrantPublic,
		NumberOfCompanions: companions,
		Status:             status,
	}
}

func TestSetStatus_ApproveAddsPartySize(t *testing.T) {
	f := newRegFixture()
	activity := &domain.Activity{ID: uuid.New(), CurrentParticipants: 5}
	reg := publicRegistration(activity.ID, domain.RegistrationPending, 1)

	f.regRepo.On("GetByID", mock.Anything, reg.ID).Return(reg, nil)
	f.activityRepo.On("GetByID", mock.Anything, activity.ID).Return(activity, nil)
	f.regRepo.On("UpdateStatus", mock.Anything, reg.ID, domain.RegistrationApproved).Return(nil)
	f.activityRepo.On("AdjustParticipants", mock.Anything, activity.ID, 2).Return(nil)

	delta, err := f.svc.SetStatus(context.Background(), reg.ID, domain.RegistrationApproved)

	require.NoError(t, err)
	assert.Equal(t, 2, delta)
	f.activityRepo.AssertExpectations(t)
}

func TestSetStatus_CancelApprovedSubtractsPartySize(t *testing.T) {
	f := newRegFixture()
	activity := &domain.Activity{ID: uuid.New(), CurrentParticipants: 7}
	reg := publicRegistration(activity.ID, domain.RegistrationApproved, 1)

	f.regRepo.On("GetByID", mock.Anything, reg.ID).Return(reg, nil)
	f.activityRepo.On("GetByID", mock.Anything, activity.ID).Return(activity, nil)
	f.regRepo.On("UpdateStatus", mock.Anything, reg.ID, domain.RegistrationCancelled).Return(nil)
	f.activityRepo.On("AdjustParticipants", mock.Anything, activity.ID, -2).Return(nil)

	delta, err := f.svc.SetStatus(context.Background(), reg.ID, domain.RegistrationCancelled)

	require.NoError(t, err)
	assert.Equal(t, -2, delta)
	f.activityRepo.AssertExpectations(t)
}

// Only crossings of the Approved boundary move the participant counter.
func TestSetStatus_DeltaTable(t *testing.T) {
	tests := []struct {
		name       string
		regType    domain.RegistrantType
		companions int
		from       domain.RegistrationStatus
		to         domain.RegistrationStatus
		wantDelta  int
	}{
		{"pending to approved case", domain.RegistrantCase, 0, domain.RegistrationPending, domain.RegistrationApproved, 1},
		{"pending to approved public with companions", domain.RegistrantPublic, 3, domain.RegistrationPending, domain.RegistrationApproved, 4},
		{"approved to cancelled", domain.RegistrantPublic, 3, domain.RegistrationApproved, domain.RegistrationCancelled, -4},
		{"pending to cancelled", domain.RegistrantPublic, 2, domain.RegistrationPending, domain.RegistrationCancelled, 0},
		{"approved to attended", domain.RegistrantCase, 0, domain.RegistrationApproved, domain.RegistrationAttended, 0},
		{"approved to approved", domain.RegistrantPublic, 1, domain.RegistrationApproved, domain.RegistrationApproved, 0},
		{"cancelled to approved", domain.RegistrantCase, 0, domain.RegistrationCancelled, domain.RegistrationApproved, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRegFixture()
			activity := &domain.Activity{ID: uuid.New(), CurrentParticipants: 10}
			reg := &domain.ActivityRegistration{
				ID:                 uuid.New(),
				ActivityID:         activity.ID,
				RegistrantType:     tt.regType,
				NumberOfCompanions: tt.companions,
				Status:             tt.from,
			}

			f.regRepo.On("GetByID", mock.Anything, reg.ID).Return(reg, nil)
			f.activityRepo.On("GetByID", mock.Anything, activity.ID).Return(activity, nil)
			f.regRepo.On("UpdateStatus", mock.Anything, reg.ID, tt.to).Return(nil)
			if tt.wantDelta != 0 {
				f.activityRepo.On("AdjustParticipants", mock.Anything, activity.ID, tt.wantDelta).Return(nil)
			}

			delta, err := f.svc.SetStatus(context.Background(), reg.ID, tt.to)

			require.NoError(t, err)
			assert.Equal(t, tt.wantDelta, delta)
			if tt.wantDelta == 0 {
				f.activityRepo.AssertNotCalled(t, "AdjustParticipants", mock.Anything, mock.Anything, mock.Anything)
			} else {
				f.activityRepo.AssertExpectations(t)
			}
		})
	}
}

func TestSetStatus_RegistrationNotFound(t *testing.T) {
	f := newRegFixture()
	regID := uuid.New()

	f.regRepo.On("GetByID", mock.Anything, regID).Return(nil, domain.ErrRegistrationNotFound)

	_, err := f.svc.SetStatus(context.Background(), regID, domain.RegistrationApproved)

	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
	f.regRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegister_CaseRequiresExistingCase(t *testing.T) {
	f := newRegFixture()
	activityID := uuid.New()
	caseID := uuid.New()

	f.activityRepo.On("GetByID", mock.Anything, activityID).Return(&domain.Activity{ID: activityID}, nil)
	f.caseRepo.On("GetByID", mock.Anything, caseID).Return(nil, domain.ErrCaseNotFound)

	_, err := f.svc.Register(context.Background(), domain.CreateRegistrationInput{
		ActivityID:     activityID,
		RegistrantType: domain.RegistrantCase,
		CaseID:         &caseID,
	})

	assert.ErrorIs(t, err, domain.ErrCaseNotFound)
	f.regRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_StartsPending(t *testing.T) {
	f := newRegFixture()
	activityID := uuid.New()

	f.activityRepo.On("GetByID", mock.Anything, activityID).Return(&domain.Activity{ID: activityID}, nil)
	f.regRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.ActivityRegistration) bool {
		return r.Status == domain.RegistrationPending && r.NumberOfCompanions == 2
	})).Return(nil)

	reg, err := f.svc.Register(context.Background(), domain.CreateRegistrationInput{
		ActivityID:         activityID,
		RegistrantType:     domain.RegistrantPublic,
		NumberOfCompanions: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationPending, reg.Status)
}

// In-memory stores standing in for the database, so many status changes can
// race through SetStatus at once. The counter clamps at zero the way the
// storage layer does.
type fakeRegStore struct {
	mocks.RegistrationRepository

	mu   sync.Mutex
	regs map[uuid.UUID]*domain.ActivityRegistration
}

func (s *fakeRegStore) GetByID(_ context.Context, id uuid.UUID) (*domain.ActivityRegistration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reg, ok := s.regs[id]
	if !ok {
		return nil, domain.ErrRegistrationNotFound
	}
	copied := *reg
	return &copied, nil
}

func (s *fakeRegStore) UpdateStatus(_ context.Context, id uuid.UUID, status domain.RegistrationStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	reg, ok := s.regs[id]
	if !ok {
		return domain.ErrRegistrationNotFound
	}
	reg.Status = status
	return nil
}

type fakeActivityStore struct {
	mocks.ActivityRepository

	mu       sync.Mutex
	activity *domain.Activity
}

func (s *fakeActivityStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activity.ID != id {
		return nil, domain.ErrActivityNotFound
	}
	copied := *s.activity
	return &copied, nil
}

func (s *fakeActivityStore) AdjustParticipants(_ context.Context, id uuid.UUID, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activity.ID != id {
		return domain.ErrActivityNotFound
	}
	next := s.activity.CurrentParticipants + delta
	if next < 0 {
		next = 0
	}
	s.activity.CurrentParticipants = next
	return nil
}

func TestSetStatus_ConcurrentApprovalsSumCleanly(t *testing.T) {
	activity := &domain.Activity{ID: uuid.New()}
	activityStore := &fakeActivityStore{activity: activity}
	regStore := &fakeRegStore{regs: make(map[uuid.UUID]*domain.ActivityRegistration)}

	const regCount = 40
	var ids []uuid.UUID
	for i := 0; i < regCount; i++ {
		reg := publicRegistration(activity.ID, domain.RegistrationPending, 1)
		regStore.regs[reg.ID] = reg
		ids = append(ids, reg.ID)
	}

	svc := registration.NewService(regStore, activityStore, new(mocks.CaseRepository))

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			_, err := svc.SetStatus(context.Background(), id, domain.RegistrationApproved)
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	// Each registration is a party of two.
	assert.Equal(t, regCount*2, activity.CurrentParticipants)

	// Cancel half of them concurrently.
	for _, id := range ids[:regCount/2] {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			_, err := svc.SetStatus(context.Background(), id, domain.RegistrationCancelled)
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	assert.Equal(t, regCount, activity.CurrentParticipants)
}

func TestAdjustClampNeverGoesNegative(t *testing.T) {
	activity := &domain.Activity{ID: uuid.New(), CurrentParticipants: 1}
	store := &fakeActivityStore{activity: activity}

	require.NoError(t, store.AdjustParticipants(context.Background(), activity.ID, -5))
	assert.Equal(t, 0, activity.CurrentParticipants)
}
