package grant

import (
	"context"
	"errors"
	"fmt"

	"github.com/fhuszti/videos-ms-go/internal/apperr"
	"github.com/fhuszti/videos-ms-go/internal/logger"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

type accessGranterSrv struct {
	videos  port.VideoRepository
	users   port.UserRepository
	grants  port.GrantRepository
	genUUID port.UUIDGen
}

var _ port.AccessGranter = (*accessGranterSrv)(nil)

func NewAccessGranter(videos port.VideoRepository, users port.UserRepository, grants port.GrantRepository, genUUID port.UUIDGen) port.AccessGranter {
	return &accessGranterSrv{videos: videos, users: users, grants: grants, genUUID: genUUID}
}

// GrantAccess records an explicit (user, video, permission) grant. Only the
// video's owner or an admin may grant; a duplicate grant is rejected, not
// merged.
func (s *accessGranterSrv) GrantAccess(ctx context.Context, requester model.Requester, in port.GrantAccessInput) (*model.AccessGrant, error) {
	if !in.Permission.IsValid() {
		return nil, apperr.Validation("unknown permission %q", in.Permission)
	}

	vid, err := s.videos.GetByID(ctx, in.VideoID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, apperr.NotFound("video #%s not found", in.VideoID)
		}
		return nil, fmt.Errorf("fetching video #%s: %w", in.VideoID, err)
	}

	if vid.UploadedBy != requester.ID && requester.Role != model.RoleAdmin {
		return nil, apperr.AccessDenied("only the owner or an admin may grant access")
	}

	if _, err := s.users.GetByID(ctx, in.UserID); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, apperr.NotFound("user #%s not found", in.UserID)
		}
		return nil, fmt.Errorf("fetching user #%s: %w", in.UserID, err)
	}

	g := &model.AccessGrant{
		ID:         s.genUUID(),
		UserID:     in.UserID,
		VideoID:    in.VideoID,
		Permission: in.Permission,
	}
	if err := s.grants.Create(ctx, g); err != nil {
		if errors.Is(err, port.ErrDuplicate) {
			return nil, apperr.Conflict("user #%s already holds a %q grant on video #%s", in.UserID, in.Permission, in.VideoID)
		}
		return nil, fmt.Errorf("creating grant: %w", err)
	}

	logger.Infof(ctx, "granted %q on video #%s to user #%s", in.Permission, in.VideoID, in.UserID)
	return g, nil
}
