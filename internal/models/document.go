package models

import (
	"time"

	"github.com/google/uuid"
)

// Document is the metadata row for a file stored in the vault bucket
type Document struct {
	ID          uuid.UUID `json:"id"`
	UserID      int64     `json:"user_id"`
	FileName    string    `json:"file_name"`
	ObjectKey   string    `json:"-"` // S3 key, not exposed
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
