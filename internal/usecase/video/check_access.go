package video

import (
	"context"
	"errors"
	"fmt"

	"github.com/fhuszti/videos-ms-go/internal/apperr"
	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

type accessCheckerSrv struct {
	videos port.VideoRepository
	grants port.GrantRepository
}

// compile-time check: *accessCheckerSrv must satisfy port.AccessChecker
var _ port.AccessChecker = (*accessCheckerSrv)(nil)

func NewAccessChecker(videos port.VideoRepository, grants port.GrantRepository) port.AccessChecker {
	return &accessCheckerSrv{videos: videos, grants: grants}
}

// CheckAccess resolves the video, then decides in order: public visibility
// grants view to anyone (including anonymous requesters), the owner gets both
// permissions, and everyone else needs an explicit grant for exactly the
// requested permission. Edit is never implied by public visibility.
func (s *accessCheckerSrv) CheckAccess(ctx context.Context, requesterID db.UUID, videoID db.UUID, permission model.Permission) (*model.Video, error) {
	if !permission.IsValid() {
		return nil, apperr.Validation("unknown permission %q", permission)
	}

	vid, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, apperr.NotFound("video #%s not found", videoID)
		}
		return nil, fmt.Errorf("fetching video #%s: %w", videoID, err)
	}

	if vid.IsPublic && permission == model.PermissionView {
		return vid, nil
	}

	if vid.UploadedBy == requesterID {
		return vid, nil
	}

	if !requesterID.IsNil() {
		if _, err := s.grants.Get(ctx, requesterID, videoID, permission); err == nil {
			return vid, nil
		} else if !errors.Is(err, port.ErrNotFound) {
			return nil, fmt.Errorf("looking up grant for user #%s on video #%s: %w", requesterID, videoID, err)
		}
	}

	return nil, apperr.AccessDenied("access denied")
}
