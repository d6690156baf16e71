package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotifNeedApproved  NotificationType = "NEED_APPROVED"
	NotifNeedRejected  NotificationType = "NEED_REJECTED"
	NotifNeedCollected NotificationType = "NEED_COLLECTED"
	NotifBatchApproved NotificationType = "BATCH_APPROVED"
	NotifBatchRejected NotificationType = "BATCH_REJECTED"
)

type Notification struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	WorkerID  uuid.UUID        `json:"worker_id" db:"worker_id"`
	Type      NotificationType `json:"type" db:"type"`
	Title     string           `json:"title" db:"title"`
	Message   string           `json:"message" db:"message"`
	Data      json.RawMessage  `json:"data,omitempty" db:"data"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}
