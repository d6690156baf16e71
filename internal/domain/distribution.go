package domain

import (
	"time"

	"github.com/google/uuid"
)

type BatchStatus string

const (
	BatchStatusPending  BatchStatus = "PENDING"
	BatchStatusApproved BatchStatus = "APPROVED"
	BatchStatusRejected BatchStatus = "REJECTED"
)

func (s BatchStatus) IsValid() bool {
	switch s {
	case BatchStatusPending, BatchStatusApproved, BatchStatusRejected:
		return true
	}
	return false
}

// DistributionBatch groups collected needs for one distribution run and is
// approved or rejected as a unit. ApprovedBy is reused for the rejecting
// worker on rejection.
type DistributionBatch struct {
	ID               uuid.UUID   `json:"id" db:"id"`
	DistributionDate time.Time   `json:"distribution_date" db:"distribution_date"`
	CaseCount        int         `json:"case_count" db:"case_count"`
	TotalSupplyItems int         `json:"total_supply_items" db:"total_supply_items"`
	Status           BatchStatus `json:"status" db:"status"`
	CreatedBy        uuid.UUID   `json:"created_by" db:"created_by"`
	ApprovedBy       *uuid.UUID  `json:"approved_by,omitempty" db:"approved_by"`
	ApprovedAt       *time.Time  `json:"approved_at,omitempty" db:"approved_at"`
	Notes            *string     `json:"notes,omitempty" db:"notes"`
	CreatedAt        time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at" db:"updated_at"`
}

type CreateBatchInput struct {
	DistributionDate time.Time `json:"distribution_date" validate:"required"`
	CaseCount        int       `json:"case_count" validate:"min=0"`
	TotalSupplyItems int       `json:"total_supply_items" validate:"min=0"`
	Notes            *string   `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type RejectBatchInput struct {
	Reason string `json:"reason" validate:"required,max=1000"`
}

type CollectNeedInput struct {
	NeedID uuid.UUID `json:"need_id" validate:"required"`
}
