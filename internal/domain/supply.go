package domain

import (
	"time"

	"github.com/google/uuid"
)

// Supply is a catalog item that can be requested by cases. UnitPrice is used
// only for display-level estimated cost, never for billing.
type Supply struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Category  string    `json:"category" db:"category"`
	Unit      string    `json:"unit" db:"unit"`
	UnitPrice float64   `json:"unit_price" db:"unit_price"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type CreateSupplyInput struct {
	Name      string  `json:"name" validate:"required,min=1,max=200"`
	Category  string  `json:"category" validate:"required,max=100"`
	Unit      string  `json:"unit" validate:"required,max=50"`
	UnitPrice float64 `json:"unit_price" validate:"min=0"`
}

type UpdateSupplyInput struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Category  *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	Unit      *string  `json:"unit,omitempty" validate:"omitempty,max=50"`
	UnitPrice *float64 `json:"unit_price,omitempty" validate:"omitempty,min=0"`
}
