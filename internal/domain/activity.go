package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a community activity with a capacity counter.
// CurrentParticipants is a shared aggregate: a database trigger elsewhere in
// the system also writes it, so application code must only ever adjust it by
// delta at the storage layer, never overwrite it with a recomputed value.
type Activity struct {
	ID                  uuid.UUID  `json:"id" db:"id"`
	Name                string     `json:"name" db:"name"`
	Description         *string    `json:"description,omitempty" db:"description"`
	Location            *string    `json:"location,omitempty" db:"location"`
	StartDate           time.Time  `json:"start_date" db:"start_date"`
	EndDate             *time.Time `json:"end_date,omitempty" db:"end_date"`
	MaxParticipants     int        `json:"max_participants" db:"max_participants"`
	CurrentParticipants int        `json:"current_participants" db:"current_participants"`
	PhotoURL            *string    `json:"photo_url,omitempty" db:"photo_url"`
	CreatedBy           uuid.UUID  `json:"created_by" db:"created_by"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`
}

type CreateActivityInput struct {
	Name            string     `json:"name" validate:"required,min=1,max=200"`
	Description     *string    `json:"description,omitempty" validate:"omitempty,max=2000"`
	Location        *string    `json:"location,omitempty" validate:"omitempty,max=500"`
	StartDate       time.Time  `json:"start_date" validate:"required"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	MaxParticipants int        `json:"max_participants" validate:"min=0"`
}

type RegistrantType string

const (
	RegistrantCase   RegistrantType = "CASE"
	RegistrantPublic RegistrantType = "PUBLIC"
)

// ActivityRegistration is a signup for an activity, either by an assisted
// case or by a member of the public (who may bring companions).
type ActivityRegistration struct {
	ID                 uuid.UUID          `json:"id" db:"id"`
	ActivityID         uuid.UUID          `json:"activity_id" db:"activity_id"`
	RegistrantType     RegistrantType     `json:"registrant_type" db:"registrant_type"`
	CaseID             *uuid.UUID         `json:"case_id,omitempty" db:"case_id"`
	RegistrantName     *string            `json:"registrant_name,omitempty" db:"registrant_name"`
	ContactPhone       *string            `json:"contact_phone,omitempty" db:"contact_phone"`
	NumberOfCompanions int                `json:"number_of_companions" db:"number_of_companions"`
	Status             RegistrationStatus `json:"status" db:"status"`
	CreatedAt          time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" db:"updated_at"`
}

// PartySize is the number of people counted against the activity's capacity
// for this registration. Companions only apply to public signups.
func (r *ActivityRegistration) PartySize() int {
	if r.RegistrantType == RegistrantPublic {
		return 1 + r.NumberOfCompanions
	}
	return 1
}

type CreateRegistrationInput struct {
	ActivityID         uuid.UUID      `json:"activity_id" validate:"required"`
	RegistrantType     RegistrantType `json:"registrant_type" validate:"required"`
	CaseID             *uuid.UUID     `json:"case_id,omitempty"`
	RegistrantName     *string        `json:"registrant_name,omitempty" validate:"omitempty,max=200"`
	ContactPhone       *string        `json:"contact_phone,omitempty" validate:"omitempty,max=20"`
	NumberOfCompanions int            `json:"number_of_companions" validate:"min=0"`
}

type SetRegistrationStatusInput struct {
	Status string `json:"status" validate:"required"`
}
