package port

import (
	"context"
	"errors"

	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/model"
)

// Sentinel errors repositories must map driver failures to, so the usecases
// never see driver-specific error codes.
var (
	ErrNotFound  = errors.New("repository: record not found")
	ErrDuplicate = errors.New("repository: duplicate record")
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id db.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateRole(ctx context.Context, id db.UUID, role model.Role) error
}

// VideoFilter narrows owner library listings. Nil fields mean "any".
type VideoFilter struct {
	ProcessingStatus *model.ProcessingStatus
	IsPublic         *bool
}

// VideoRepository defines persistence operations for videos.
type VideoRepository interface {
	Create(ctx context.Context, video *model.Video) error
	Update(ctx context.Context, video *model.Video) error
	GetByID(ctx context.Context, id db.UUID) (*model.Video, error)
	Delete(ctx context.Context, id db.UUID) error
	ListPublic(ctx context.Context) ([]model.Video, error)
	ListByOwner(ctx context.Context, ownerID db.UUID, filter VideoFilter) ([]model.Video, error)
}

// GrantRepository defines persistence operations for access grants.
type GrantRepository interface {
	Create(ctx context.Context, grant *model.AccessGrant) error
	Get(ctx context.Context, userID, videoID db.UUID, permission model.Permission) (*model.AccessGrant, error)
	Delete(ctx context.Context, userID, videoID db.UUID, permission model.Permission) error
	DeleteByVideo(ctx context.Context, videoID db.UUID) error
	ListByVideo(ctx context.Context, videoID db.UUID) ([]model.AccessGrant, error)
}

// OrganizationRepository defines persistence operations for organizations.
type OrganizationRepository interface {
	Create(ctx context.Context, org *model.Organization) error
	GetByID(ctx context.Context, id db.UUID) (*model.Organization, error)
}
