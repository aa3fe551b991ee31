package processing

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

type sensitivityReviewerSrv struct {
	videos port.VideoRepository
	ca     port.Cache
}

var _ port.SensitivityReviewer = (*sensitivityReviewerSrv)(nil)

func NewSensitivityReviewer(videos port.VideoRepository, ca port.Cache) port.SensitivityReviewer {
	return &sensitivityReviewerSrv{videos: videos, ca: ca}
}

// ReviewSensitivity records a moderation verdict. The sensitivity axis is
// orthogonal to the processing lifecycle: a pending video may already be
// flagged, a completed one may still await review.
func (s *sensitivityReviewerSrv) ReviewSensitivity(ctx context.Context, videoID db.UUID, status model.SensitivityStatus, score float64) (*model.Video, error) {
	if !status.IsValid() {
		return nil, apperr.Validation("unknown sensitivity status %q", status)
	}
	if score < 0 || score > 1 {
		return nil, apperr.Validation("sensitivity score must be within [0, 1], got %g", score)
	}

	vid, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, apperr.NotFound("video #%s not found", videoID)
		}
		return nil, fmt.Errorf("fetching video #%s: %w", videoID, err)
	}

	vid.SensitivityStatus = status
	vid.SensitivityScore = score

	if err := s.videos.Update(ctx, vid); err != nil {
		return nil, fmt.Errorf("persisting sensitivity %q for video #%s: %w", status, videoID, err)
	}

	if err := s.ca.DeleteVideoDetails(ctx, videoID); err != nil {
		logger.Warnf(ctx, "could not evict cache entry for video #%s: %v", videoID, err)
	}

	logger.Infof(ctx, "video #%s marked %q (score %.2f)", videoID, status, score)
	return vid, nil
}
