package model

import (
	"time"

	"github.com/fhuszti/videos-ms-go/internal/db"
)

type ProcessingStatus string

const (
	ProcessingStatusPending    ProcessingStatus = "pending"
	ProcessingStatusProcessing ProcessingStatus = "processing"
	ProcessingStatusCompleted  ProcessingStatus = "completed"
	ProcessingStatusFailed     ProcessingStatus = "failed"
)

// IsValid reports whether s is one of the known processing statuses.
func (s ProcessingStatus) IsValid() bool {
	switch s {
	case ProcessingStatusPending, ProcessingStatusProcessing, ProcessingStatusCompleted, ProcessingStatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is permitted from s.
func (s ProcessingStatus) IsTerminal() bool {
	return s == ProcessingStatusCompleted
}

// SensitivityStatus is an independent classification axis, orthogonal to the
// processing lifecycle.
type SensitivityStatus string

const (
	SensitivityStatusPending SensitivityStatus = "pending"
	SensitivityStatusSafe    SensitivityStatus = "safe"
	SensitivityStatusFlagged SensitivityStatus = "flagged"
)

func (s SensitivityStatus) IsValid() bool {
	switch s {
	case SensitivityStatusPending, SensitivityStatusSafe, SensitivityStatusFlagged:
		return true
	}
	return false
}

type Video struct {
	ID                db.UUID           `json:"id"`
	Title             string            `json:"title"`
	Description       *string           `json:"description,omitempty"`
	ObjectKey         string            `json:"object_key"`
	ThumbnailKey      *string           `json:"thumbnail_key,omitempty"`
	UploadedBy        db.UUID           `json:"uploaded_by"`
	OrganizationID    *db.UUID          `json:"organization_id,omitempty"`
	IsPublic          bool              `json:"is_public"`
	ProcessingStatus  ProcessingStatus  `json:"processing_status"`
	ProcessingError   *string           `json:"processing_error,omitempty"`
	SensitivityStatus SensitivityStatus `json:"sensitivity_status"`
	SensitivityScore  float64           `json:"sensitivity_score"`
	SizeBytes         *int64            `json:"size_bytes,omitempty"`
	MimeType          *string           `json:"mime_type,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}
