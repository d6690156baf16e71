package domain

import (
	"time"

	"github.com/google/uuid"
)

type CaseStatus string

const (
	CaseStatusActive   CaseStatus = "ACTIVE"
	CaseStatusInactive CaseStatus = "INACTIVE"
	CaseStatusClosed   CaseStatus = "CLOSED"
)

// Case is an assisted household or individual in the NGO's care.
type Case struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	CaseNumber       string     `json:"case_number" db:"case_number"`
	FullName         string     `json:"full_name" db:"full_name"`
	Address          *string    `json:"address,omitempty" db:"address"`
	Phone            *string    `json:"phone,omitempty" db:"phone"`
	BirthDate        *time.Time `json:"birth_date,omitempty" db:"birth_date"`
	FamilySize       int        `json:"family_size" db:"family_size"`
	Status           CaseStatus `json:"status" db:"status"`
	AssignedWorkerID *uuid.UUID `json:"assigned_worker_id,omitempty" db:"assigned_worker_id"`
	PhotoURL         *string    `json:"photo_url,omitempty" db:"photo_url"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

type CreateCaseInput struct {
	CaseNumber       string     `json:"case_number" validate:"required,max=50"`
	FullName         string     `json:"full_name" validate:"required,min=1,max=200"`
	Address          *string    `json:"address,omitempty" validate:"omitempty,max=500"`
	Phone            *string    `json:"phone,omitempty" validate:"omitempty,max=20"`
	BirthDate        *time.Time `json:"birth_date,omitempty"`
	FamilySize       int        `json:"family_size" validate:"min=1"`
	AssignedWorkerID *uuid.UUID `json:"assigned_worker_id,omitempty"`
}

type UpdateCaseInput struct {
	FullName         *string     `json:"full_name,omitempty" validate:"omitempty,min=1,max=200"`
	Address          *string     `json:"address,omitempty" validate:"omitempty,max=500"`
	Phone            *string     `json:"phone,omitempty" validate:"omitempty,max=20"`
	FamilySize       *int        `json:"family_size,omitempty" validate:"omitempty,min=1"`
	Status           *CaseStatus `json:"status,omitempty"`
	AssignedWorkerID *uuid.UUID  `json:"assigned_worker_id,omitempty"`
}
