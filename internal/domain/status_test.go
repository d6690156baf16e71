package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"peduli-kasih/internal/domain"
)

func TestNormalizeNeedStatus(t *testing.T) {
	cases := map[string]domain.NeedStatus{
		"pending":              domain.NeedStatusPending,
		"PENDING":              domain.NeedStatusPending,
		"Menunggu":             domain.NeedStatusPending,
		"Menunggu Persetujuan": domain.NeedStatusPending,
		"Diajukan":             domain.NeedStatusPending,
		"approved":             domain.NeedStatusApproved,
		"Disetujui":            domain.NeedStatusApproved,
		"pending_super":        domain.NeedStatusPendingSupervisor,
		"PENDING_SUPERVISOR":   domain.NeedStatusPendingSupervisor,
		"Menunggu Supervisor":  domain.NeedStatusPendingSupervisor,
		"Menunggu Atasan":      domain.NeedStatusPendingSupervisor,
		"collected":            domain.NeedStatusCollected,
		"Sudah Diambil":        domain.NeedStatusCollected,
		"Diambil":              domain.NeedStatusCollected,
		"rejected":             domain.NeedStatusRejected,
		"Ditolak":              domain.NeedStatusRejected,
		"  Ditolak  ":          domain.NeedStatusRejected,
	}

	for raw, want := range cases {
		assert.Equal(t, want, domain.NormalizeNeedStatus(raw), "input %q", raw)
	}
}

func TestNormalizeNeedStatus_UnknownDefaultsToPending(t *testing.T) {
	assert.Equal(t, domain.NeedStatusPending, domain.NormalizeNeedStatus(""))
	assert.Equal(t, domain.NeedStatusPending, domain.NormalizeNeedStatus("garbage"))
	assert.Equal(t, domain.NeedStatusPending, domain.NormalizeNeedStatus("???"))
}

func TestNormalizeNeedStatus_Idempotent(t *testing.T) {
	inputs := []string{
		"pending", "Menunggu", "Disetujui", "pending_super", "Menunggu Atasan",
		"Sudah Diambil", "Ditolak", "approved", "collected", "rejected", "junk",
	}

	for _, raw := range inputs {
		once := domain.NormalizeNeedStatus(raw)
		twice := domain.NormalizeNeedStatus(string(once))
		assert.Equal(t, once, twice, "input %q", raw)
	}
}

func TestNormalizeRegistrationStatus(t *testing.T) {
	cases := map[string]domain.RegistrationStatus{
		"Disetujui":  domain.RegistrationApproved,
		"approved":   domain.RegistrationApproved,
		"Dibatalkan": domain.RegistrationCancelled,
		"canceled":   domain.RegistrationCancelled,
		"cancelled":  domain.RegistrationCancelled,
		"Hadir":      domain.RegistrationAttended,
		"Menunggu":   domain.RegistrationPending,
		"unknown":    domain.RegistrationPending,
	}

	for raw, want := range cases {
		assert.Equal(t, want, domain.NormalizeRegistrationStatus(raw), "input %q", raw)
	}
}

func TestNeedStatusIsTerminal(t *testing.T) {
	assert.True(t, domain.NeedStatusCollected.IsTerminal())
	assert.True(t, domain.NeedStatusRejected.IsTerminal())
	assert.False(t, domain.NeedStatusPending.IsTerminal())
	assert.False(t, domain.NeedStatusApproved.IsTerminal())
	assert.False(t, domain.NeedStatusPendingSupervisor.IsTerminal())
}
