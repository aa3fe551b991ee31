package model

import (
	"time"

	"github.com/fhuszti/videos-ms-go/internal/db"
)

type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleEditor, RoleAdmin:
		return true
	}
	return false
}

// CanUpload reports whether the role may create videos.
// Enforced at the policy layer, never stored redundantly.
func (r Role) CanUpload() bool {
	return r == RoleEditor || r == RoleAdmin
}

type User struct {
	ID             db.UUID   `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	FullName       string    `json:"full_name"`
	Role           Role      `json:"role"`
	OrganizationID *db.UUID  `json:"organization_id,omitempty"`
	AvatarURL      *string   `json:"avatar_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
