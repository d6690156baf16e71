package domain

import (
	"time"

	"github.com/google/uuid"
)

// SupplyNeed is a recurring supply request tied to a case. BatchID is owned
// by the distribution batch that collected the need and is NULL until then;
// a batch rejection clears it again.
type SupplyNeed struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	CaseID      uuid.UUID  `json:"case_id" db:"case_id"`
	SupplyID    uuid.UUID  `json:"supply_id" db:"supply_id"`
	Quantity    int        `json:"quantity" db:"quantity"`
	Status      NeedStatus `json:"status" db:"status"`
	BatchID     *uuid.UUID `json:"batch_id,omitempty" db:"batch_id"`
	ApplyDate   time.Time  `json:"apply_date" db:"apply_date"`
	PickupDate  *time.Time `json:"pickup_date,omitempty" db:"pickup_date"`
	RequestedBy uuid.UUID  `json:"requested_by" db:"requested_by"`
	Note        *string    `json:"note,omitempty" db:"note"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`

	CaseName      string   `json:"case_name,omitempty" db:"-"`
	SupplyName    string   `json:"supply_name,omitempty" db:"-"`
	StatusLabel   string   `json:"status_label,omitempty" db:"-"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty" db:"-"`
}

type CreateNeedInput struct {
	CaseID    uuid.UUID  `json:"case_id" validate:"required"`
	SupplyID  uuid.UUID  `json:"supply_id" validate:"required"`
	Quantity  int        `json:"quantity" validate:"required,min=1"`
	ApplyDate *time.Time `json:"apply_date,omitempty"`
	Note      *string    `json:"note,omitempty" validate:"omitempty,max=500"`
}

// SupplyMatch is an append-only annotation recording which worker matched a
// need with a donor or stock source. It is not part of the status machine.
type SupplyMatch struct {
	ID        uuid.UUID `json:"id" db:"id"`
	NeedID    uuid.UUID `json:"need_id" db:"need_id"`
	MatchedBy uuid.UUID `json:"matched_by" db:"matched_by"`
	MatchDate time.Time `json:"match_date" db:"match_date"`
	Note      *string   `json:"note,omitempty" db:"note"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateMatchInput struct {
	NeedID    uuid.UUID  `json:"need_id" validate:"required"`
	MatchDate *time.Time `json:"match_date,omitempty"`
	Note      *string    `json:"note,omitempty" validate:"omitempty,max=500"`
}
