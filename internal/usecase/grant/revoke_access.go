package grant

import (
	"context"
	"errors"
	"fmt"

	"github.com/fhuszti/videos-ms-go/internal/apperr"
	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/logger"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

type accessRevokerSrv struct {
	videos port.VideoRepository
	grants port.GrantRepository
}

var _ port.AccessRevoker = (*accessRevokerSrv)(nil)

func NewAccessRevoker(videos port.VideoRepository, grants port.GrantRepository) port.AccessRevoker {
	return &accessRevokerSrv{videos: videos, grants: grants}
}

// RevokeAccess deletes an explicit grant. Only the video's owner or an admin
// may revoke.
func (s *accessRevokerSrv) RevokeAccess(ctx context.Context, requester model.Requester, videoID, userID db.UUID, permission model.Permission) error {
	if !permission.IsValid() {
		return apperr.Validation("unknown permission %q", permission)
	}

	vid, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return apperr.NotFound("video #%s not found", videoID)
		}
		return fmt.Errorf("fetching video #%s: %w", videoID, err)
	}

	if vid.UploadedBy != requester.ID && requester.Role != model.RoleAdmin {
		return apperr.AccessDenied("only the owner or an admin may revoke access")
	}

	if err := s.grants.Delete(ctx, userID, videoID, permission); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return apperr.NotFound("no %q grant for user #%s on video #%s", permission, userID, videoID)
		}
		return fmt.Errorf("deleting grant: %w", err)
	}

	logger.Infof(ctx, "revoked %q on video #%s from user #%s", permission, videoID, userID)
	return nil
}
