package domain

import (
	"time"

	"github.com/google/uuid"
)

type MediaOwnerType string

const (
	MediaOwnerActivity MediaOwnerType = "ACTIVITY"
	MediaOwnerCase     MediaOwnerType = "CASE"
)

type Media struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	OwnerType   MediaOwnerType `json:"owner_type" db:"owner_type"`
	OwnerID     uuid.UUID      `json:"owner_id" db:"owner_id"`
	ObjectKey   string         `json:"-" db:"object_key"`
	URL         string         `json:"url" db:"url"`
	ContentType string         `json:"content_type" db:"content_type"`
	SizeBytes   int64          `json:"size_bytes" db:"size_bytes"`
	UploadedBy  uuid.UUID      `json:"uploaded_by" db:"uploaded_by"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
}
