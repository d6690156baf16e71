package domain

import "strings"

// NeedStatus is the canonical status of a supply need. The database still
// holds years of legacy spellings (Indonesian labels, mixed-case English
// tokens); NormalizeNeedStatus is applied at every read/write boundary so
// nothing past the repository layer ever sees a raw string.
type NeedStatus string

const (
	NeedStatusPending           NeedStatus = "PENDING"
	NeedStatusApproved          NeedStatus = "APPROVED"
	NeedStatusPendingSupervisor NeedStatus = "PENDING_SUPERVISOR"
	NeedStatusCollected         NeedStatus = "COLLECTED"
	NeedStatusRejected          NeedStatus = "REJECTED"
)

var needStatusAliases = map[string]NeedStatus{
	"pending":              NeedStatusPending,
	"menunggu":             NeedStatusPending,
	"menunggu persetujuan": NeedStatusPending,
	"diajukan":             NeedStatusPending,
	"approved":             NeedStatusApproved,
	"disetujui":            NeedStatusApproved,
	"pending_super":        NeedStatusPendingSupervisor,
	"pending_supervisor":   NeedStatusPendingSupervisor,
	"menunggu supervisor":  NeedStatusPendingSupervisor,
	"menunggu atasan":      NeedStatusPendingSupervisor,
	"collected":            NeedStatusCollected,
	"diambil":              NeedStatusCollected,
	"sudah diambil":        NeedStatusCollected,
	"rejected":             NeedStatusRejected,
	"ditolak":              NeedStatusRejected,
}

// NormalizeNeedStatus maps any historical spelling to its canonical value.
// Unknown input defaults to PENDING rather than failing; rows predating the
// status column carry free text we cannot interpret.
func NormalizeNeedStatus(raw string) NeedStatus {
	if s, ok := needStatusAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return NeedStatusPending
}

func (s NeedStatus) IsValid() bool {
	switch s {
	case NeedStatusPending, NeedStatusApproved, NeedStatusPendingSupervisor, NeedStatusCollected, NeedStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leads out of s.
func (s NeedStatus) IsTerminal() bool {
	return s == NeedStatusCollected || s == NeedStatusRejected
}

// RegistrationStatus is the canonical status of an activity registration.
type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "PENDING"
	RegistrationApproved  RegistrationStatus = "APPROVED"
	RegistrationCancelled RegistrationStatus = "CANCELLED"
	RegistrationAttended  RegistrationStatus = "ATTENDED"
)

var registrationStatusAliases = map[string]RegistrationStatus{
	"pending":    RegistrationPending,
	"menunggu":   RegistrationPending,
	"diajukan":   RegistrationPending,
	"approved":   RegistrationApproved,
	"disetujui":  RegistrationApproved,
	"cancelled":  RegistrationCancelled,
	"canceled":   RegistrationCancelled,
	"dibatalkan": RegistrationCancelled,
	"batal":      RegistrationCancelled,
	"attended":   RegistrationAttended,
	"hadir":      RegistrationAttended,
}

func NormalizeRegistrationStatus(raw string) RegistrationStatus {
	if s, ok := registrationStatusAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return RegistrationPending
}

func (s RegistrationStatus) IsValid() bool {
	switch s {
	case RegistrationPending, RegistrationApproved, RegistrationCancelled, RegistrationAttended:
		return true
	}
	return false
}
