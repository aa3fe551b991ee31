package video

import (
	"context"
	"errors"
	"fmt"

	"github.com/fhuszti/videos-ms-go/internal/apperr"
	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/logger"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
	"github.com/fhuszti/videos-ms-go/internal/storage"
)

type uploadFinaliserSrv struct {
	videos       port.VideoRepository
	strg         port.Storage
	dispatcher   port.TaskDispatcher
	videosBucket string
}

var _ port.UploadFinaliser = (*uploadFinaliserSrv)(nil)

func NewUploadFinaliser(videos port.VideoRepository, strg port.Storage, dispatcher port.TaskDispatcher, videosBucket string) port.UploadFinaliser {
	return &uploadFinaliserSrv{videos: videos, strg: strg, dispatcher: dispatcher, videosBucket: videosBucket}
}

// FinaliseUpload checks that the caller owns the video, that the upload
// actually landed in the bucket, and hands the video to the pipeline. The
// status stays "pending" until the worker picks the task up.
func (s *uploadFinaliserSrv) FinaliseUpload(ctx context.Context, requester model.Requester, id db.UUID) error {
	vid, err := s.videos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return apperr.NotFound("video #%s not found", id)
		}
		return fmt.Errorf("fetching video #%s: %w", id, err)
	}

	if vid.UploadedBy != requester.ID {
		return apperr.AccessDenied("only the owner may finalise an upload")
	}
	if vid.ProcessingStatus != model.ProcessingStatusPending {
		return apperr.InvalidTransition("video #%s is %q, only pending uploads can be finalised", id, vid.ProcessingStatus)
	}

	if _, err := s.strg.StatFile(ctx, s.videosBucket, vid.ObjectKey); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return apperr.Validation("no uploaded file found for video #%s", id)
		}
		return fmt.Errorf("stats for file %q: %w", vid.ObjectKey, err)
	}

	if err := s.dispatcher.EnqueueProcessVideo(ctx, id); err != nil {
		return fmt.Errorf("enqueueing processing for video #%s: %w", id, err)
	}

	logger.Infof(ctx, "video #%s queued for processing", id)
	return nil
}
