package model

import (
	"time"

	"github.com/fhuszti/videos-ms-go/internal/db"
)

type Permission string

const (
	PermissionView Permission = "view"
	PermissionEdit Permission = "edit"
)

func (p Permission) IsValid() bool {
	return p == PermissionView || p == PermissionEdit
}

// AccessGrant gives a user a capability on a single video. It never transfers
// ownership. At most one grant may exist per (user, video, permission).
type AccessGrant struct {
	ID         db.UUID    `json:"id"`
	UserID     db.UUID    `json:"user_id"`
	VideoID    db.UUID    `json:"video_id"`
	Permission Permission `json:"permission"`
	CreatedAt  time.Time  `json:"created_at"`
}
