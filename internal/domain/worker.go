package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleWorker     = "worker"
	RoleSupervisor = "supervisor"
	RoleAdmin      = "admin"
)

type Worker struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"full_name" db:"full_name"`
	Role         string    `json:"role" db:"role"`
	Phone        *string   `json:"phone,omitempty" db:"phone"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// HasRole reports whether the worker's role grants at least the given role.
// Roles are strictly ordered: worker < supervisor < admin.
func (w *Worker) HasRole(role string) bool {
	rank := map[string]int{
		RoleWorker:     1,
		RoleSupervisor: 2,
		RoleAdmin:      3,
	}
	return rank[w.Role] >= rank[role] && rank[role] > 0
}

type CreateWorkerInput struct {
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=8"`
	FullName string  `json:"full_name" validate:"required,min=1,max=200"`
	Role     string  `json:"role" validate:"required,oneof=worker supervisor admin"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
