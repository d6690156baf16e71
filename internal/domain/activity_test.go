package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"peduli-kasih/internal/domain"
)

func TestRegistrationPartySize(t *testing.T) {
	public := &domain.ActivityRegistration{
		RegistrantType:     domain.RegistrantPublic,
		NumberOfCompanions: 3,
	}
	assert.Equal(t, 4, public.PartySize())

	alone := &domain.ActivityRegistration{RegistrantType: domain.RegistrantPublic}
	assert.Equal(t, 1, alone.PartySize())

	// Companions never count for case registrations.
	caseReg := &domain.ActivityRegistration{
		RegistrantType:     domain.RegistrantCase,
		NumberOfCompanions: 5,
	}
	assert.Equal(t, 1, caseReg.PartySize())
}

func TestWorkerHasRole(t *testing.T) {
	admin := &domain.Worker{Role: domain.RoleAdmin}
	supervisor := &domain.Worker{Role: domain.RoleSupervisor}
	worker := &domain.Worker{Role: domain.RoleWorker}

	assert.True(t, admin.HasRole(domain.RoleWorker))
	assert.True(t, admin.HasRole(domain.RoleAdmin))
	assert.True(t, supervisor.HasRole(domain.RoleWorker))
	assert.False(t, supervisor.HasRole(domain.RoleAdmin))
	assert.True(t, worker.HasRole(domain.RoleWorker))
	assert.False(t, worker.HasRole(domain.RoleSupervisor))
	assert.False(t, worker.HasRole("unknown"))
}
