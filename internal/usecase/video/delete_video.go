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

type videoDeleterSrv struct {
	videos           port.VideoRepository
	grants           port.GrantRepository
	ca               port.Cache
	strg             port.Storage
	videosBucket     string
	thumbnailsBucket string
}

var _ port.VideoDeleter = (*videoDeleterSrv)(nil)

func NewVideoDeleter(videos port.VideoRepository, grants port.GrantRepository, ca port.Cache, strg port.Storage, videosBucket, thumbnailsBucket string) port.VideoDeleter {
	return &videoDeleterSrv{
		videos:           videos,
		grants:           grants,
		ca:               ca,
		strg:             strg,
		videosBucket:     videosBucket,
		thumbnailsBucket: thumbnailsBucket,
	}
}

// DeleteVideo removes the record, cascades grant deletion, evicts the cache
// entry and removes the stored objects. Only the owner may delete; admins get
// no shortcut here, ownership is exclusive.
func (s *videoDeleterSrv) DeleteVideo(ctx context.Context, requester model.Requester, id db.UUID) error {
	vid, err := s.videos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return apperr.NotFound("video #%s not found", id)
		}
		return fmt.Errorf("fetching video #%s: %w", id, err)
	}

	if vid.UploadedBy != requester.ID {
		return apperr.AccessDenied("only the owner may delete a video")
	}

	// Grants first so no grant can outlive its video.
	if err := s.grants.DeleteByVideo(ctx, id); err != nil {
		return fmt.Errorf("deleting grants of video #%s: %w", id, err)
	}

	if err := s.videos.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting video #%s: %w", id, err)
	}

	if err := s.ca.DeleteVideoDetails(ctx, id); err != nil {
		logger.Warnf(ctx, "could not evict cache entry for video #%s: %v", id, err)
	}

	// Object removal is best effort; the record is already gone.
	if err := s.strg.RemoveFile(ctx, s.videosBucket, vid.ObjectKey); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
		logger.Warnf(ctx, "could not remove file %q of video #%s: %v", vid.ObjectKey, id, err)
	}
	if vid.ThumbnailKey != nil {
		if err := s.strg.RemoveFile(ctx, s.thumbnailsBucket, *vid.ThumbnailKey); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
			logger.Warnf(ctx, "could not remove thumbnail %q of video #%s: %v", *vid.ThumbnailKey, id, err)
		}
	}

	logger.Infof(ctx, "deleted video #%s", id)
	return nil
}
