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

// legalTransitions is the full lifecycle: pending → processing →
// {completed | failed}, with failed → processing as the retry path.
// completed is terminal. There is no locking around a transition; exactly one
// worker is assumed to drive a given video at a time, last write wins.
var legalTransitions = map[model.ProcessingStatus][]model.ProcessingStatus{
	model.ProcessingStatusPending:    {model.ProcessingStatusProcessing},
	model.ProcessingStatusProcessing: {model.ProcessingStatusCompleted, model.ProcessingStatusFailed},
	model.ProcessingStatusFailed:     {model.ProcessingStatusProcessing},
	model.ProcessingStatusCompleted:  {},
}

func isLegal(from, to model.ProcessingStatus) bool {
	for _, s := range legalTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type statusTransitionerSrv struct {
	videos port.VideoRepository
	ca     port.Cache
}

var _ port.StatusTransitioner = (*statusTransitionerSrv)(nil)

func NewStatusTransitioner(videos port.VideoRepository, ca port.Cache) port.StatusTransitioner {
	return &statusTransitionerSrv{videos: videos, ca: ca}
}

// Transition moves a video to newStatus. Failures leave the record untouched:
// the guards all run before the single repository update.
func (s *statusTransitionerSrv) Transition(ctx context.Context, videoID db.UUID, newStatus model.ProcessingStatus, errorDetail *string) (*model.Video, error) {
	if !newStatus.IsValid() {
		return nil, apperr.Validation("unknown processing status %q", newStatus)
	}
	if newStatus == model.ProcessingStatusFailed && (errorDetail == nil || *errorDetail == "") {
		return nil, apperr.Validation("a failed transition requires an error detail")
	}

	vid, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, apperr.NotFound("video #%s not found", videoID)
		}
		return nil, fmt.Errorf("fetching video #%s: %w", videoID, err)
	}

	if vid.ProcessingStatus.IsTerminal() {
		return nil, apperr.InvalidTransition("video #%s already completed processing", videoID)
	}
	if !isLegal(vid.ProcessingStatus, newStatus) {
		return nil, apperr.InvalidTransition("video #%s cannot go from %q to %q", videoID, vid.ProcessingStatus, newStatus)
	}

	vid.ProcessingStatus = newStatus
	if newStatus == model.ProcessingStatusFailed {
		vid.ProcessingError = errorDetail
	} else {
		// leaving the failure path clears the stale detail
		vid.ProcessingError = nil
	}

	if err := s.videos.Update(ctx, vid); err != nil {
		return nil, fmt.Errorf("persisting status %q for video #%s: %w", newStatus, videoID, err)
	}

	if err := s.ca.DeleteVideoDetails(ctx, videoID); err != nil {
		logger.Warnf(ctx, "could not evict cache entry for video #%s: %v", videoID, err)
	}

	logger.Infof(ctx, "video #%s moved to status %q", videoID, newStatus)
	return vid, nil
}

// MarkStarted, MarkCompleted and MarkFailed are intention-revealing wrappers
// so call sites never pass raw status strings.

func (s *statusTransitionerSrv) MarkStarted(ctx context.Context, videoID db.UUID) (*model.Video, error) {
	return s.Transition(ctx, videoID, model.ProcessingStatusProcessing, nil)
}

func (s *statusTransitionerSrv) MarkCompleted(ctx context.Context, videoID db.UUID) (*model.Video, error) {
	return s.Transition(ctx, videoID, model.ProcessingStatusCompleted, nil)
}

func (s *statusTransitionerSrv) MarkFailed(ctx context.Context, videoID db.UUID, detail string) (*model.Video, error) {
	return s.Transition(ctx, videoID, model.ProcessingStatusFailed, &detail)
}
