package port

import (
	"context"
	"time"

	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/model"
)

type UUIDGen func() db.UUID

// Registrar creates a new identity with a hashed credential.
type Registrar interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
}
type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

// Authenticator verifies a credential and issues a signed token.
type Authenticator interface {
	Login(ctx context.Context, in LoginInput) (LoginOutput, error)
}
type LoginInput struct {
	Email    string
	Password string
}
type LoginOutput struct {
	Token string `json:"token"`
}

// ProfileGetter returns the profile behind an authenticated identity.
type ProfileGetter interface {
	GetProfile(ctx context.Context, id db.UUID) (*model.User, error)
}

// RoleUpdater changes a user's role. Admin only.
type RoleUpdater interface {
	UpdateRole(ctx context.Context, requester model.Requester, userID db.UUID, role model.Role) (*model.User, error)
}

// OrganizationCreator records a new organization. Admin only.
type OrganizationCreator interface {
	CreateOrganization(ctx context.Context, requester model.Requester, in CreateOrganizationInput) (*model.Organization, error)
}
type CreateOrganizationInput struct {
	Name        string
	Description *string
}

// AccessChecker answers "may this requester perform this action on this
// video?". Pure decision function, no side effects.
type AccessChecker interface {
	CheckAccess(ctx context.Context, requesterID db.UUID, videoID db.UUID, permission model.Permission) (*model.Video, error)
}

// UploadLinkGenerator creates the pending video record and returns presigned
// links to push the file (and optionally a thumbnail) to the object store.
type UploadLinkGenerator interface {
	GenerateUploadLink(ctx context.Context, requester model.Requester, in GenerateUploadLinkInput) (GenerateUploadLinkOutput, error)
}
type GenerateUploadLinkInput struct {
	Title         string
	Description   *string
	IsPublic      bool
	WithThumbnail bool
}
type GenerateUploadLinkOutput struct {
	ID                 db.UUID `json:"id"`
	UploadURL          string  `json:"upload_url"`
	ThumbnailUploadURL string  `json:"thumbnail_upload_url,omitempty"`
}

// UploadFinaliser acknowledges a finished upload and hands the video to the
// processing pipeline.
type UploadFinaliser interface {
	FinaliseUpload(ctx context.Context, requester model.Requester, id db.UUID) error
}

// VideoGetter returns video details plus a presigned download URL once
// processing has completed.
type VideoGetter interface {
	GetVideo(ctx context.Context, requesterID db.UUID, id db.UUID) (*GetVideoOutput, error)
}
type GetVideoOutput struct {
	Video        model.Video `json:"video"`
	DownloadURL  string      `json:"download_url,omitempty"`
	ThumbnailURL string      `json:"thumbnail_url,omitempty"`
	ValidUntil   time.Time   `json:"valid_until"`
}

// VideoLister serves the public library and the owner's own library.
type VideoLister interface {
	ListPublicVideos(ctx context.Context) ([]model.Video, error)
	ListMyVideos(ctx context.Context, requester model.Requester, filter VideoFilter) ([]model.Video, error)
}

// VideoDeleter removes a video, its grants, its stored objects and its cache
// entry. Owner only.
type VideoDeleter interface {
	DeleteVideo(ctx context.Context, requester model.Requester, id db.UUID) error
}

// StatusTransitioner enforces the processing lifecycle.
type StatusTransitioner interface {
	Transition(ctx context.Context, videoID db.UUID, newStatus model.ProcessingStatus, errorDetail *string) (*model.Video, error)
	MarkStarted(ctx context.Context, videoID db.UUID) (*model.Video, error)
	MarkCompleted(ctx context.Context, videoID db.UUID) (*model.Video, error)
	MarkFailed(ctx context.Context, videoID db.UUID, detail string) (*model.Video, error)
}

// SensitivityReviewer records a moderation verdict, independent of the
// processing lifecycle.
type SensitivityReviewer interface {
	ReviewSensitivity(ctx context.Context, videoID db.UUID, status model.SensitivityStatus, score float64) (*model.Video, error)
}

// VideoProcessor drives a single video through the pipeline: started, probe,
// completed or failed. Invoked by the worker.
type VideoProcessor interface {
	ProcessVideo(ctx context.Context, id db.UUID) error
}

// AccessGranter creates an explicit grant. Owner or admin only.
type AccessGranter interface {
	GrantAccess(ctx context.Context, requester model.Requester, in GrantAccessInput) (*model.AccessGrant, error)
}
type GrantAccessInput struct {
	VideoID    db.UUID
	UserID     db.UUID
	Permission model.Permission
}

// AccessRevoker removes an explicit grant. Owner or admin only.
type AccessRevoker interface {
	RevokeAccess(ctx context.Context, requester model.Requester, videoID, userID db.UUID, permission model.Permission) error
}
