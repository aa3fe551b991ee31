package processing

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	// register webp so thumbnail probing handles all accepted formats
	_ "golang.org/x/image/webp"

	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/logger"
	"github.com/fhuszti/videos-ms-go/internal/port"
	"github.com/fhuszti/videos-ms-go/internal/storage"
)

type videoProcessorSrv struct {
	videos           port.VideoRepository
	transitioner     port.StatusTransitioner
	strg             port.Storage
	videosBucket     string
	thumbnailsBucket string
}

var _ port.VideoProcessor = (*videoProcessorSrv)(nil)

func NewVideoProcessor(videos port.VideoRepository, transitioner port.StatusTransitioner, strg port.Storage, videosBucket, thumbnailsBucket string) port.VideoProcessor {
	return &videoProcessorSrv{
		videos:           videos,
		transitioner:     transitioner,
		strg:             strg,
		videosBucket:     videosBucket,
		thumbnailsBucket: thumbnailsBucket,
	}
}

// ProcessVideo drives one video through the lifecycle: mark it started, probe
// the uploaded object, record what was found, then mark it completed — or
// failed with a detail when the probe comes up empty. No transcoding happens
// here; transitions are recorded, not computed.
func (s *videoProcessorSrv) ProcessVideo(ctx context.Context, id db.UUID) error {
	vid, err := s.transitioner.MarkStarted(ctx, id)
	if err != nil {
		return fmt.Errorf("marking video #%s started: %w", id, err)
	}

	info, err := s.strg.StatFile(ctx, s.videosBucket, vid.ObjectKey)
	if err != nil {
		var detail string
		if errors.Is(err, storage.ErrObjectNotFound) {
			detail = fmt.Sprintf("source object %q not found", vid.ObjectKey)
		} else {
			detail = fmt.Sprintf("stats for object %q failed: %v", vid.ObjectKey, err)
		}
		if _, markErr := s.transitioner.MarkFailed(ctx, id, detail); markErr != nil {
			return fmt.Errorf("marking video #%s failed: %w", id, markErr)
		}
		return nil
	}

	vid.SizeBytes = &info.SizeBytes
	vid.MimeType = &info.ContentType
	if err := s.videos.Update(ctx, vid); err != nil {
		return fmt.Errorf("recording probe results for video #%s: %w", id, err)
	}

	s.probeThumbnail(ctx, vid.ID, vid.ThumbnailKey)

	if _, err := s.transitioner.MarkCompleted(ctx, id); err != nil {
		return fmt.Errorf("marking video #%s completed: %w", id, err)
	}
	return nil
}

// probeThumbnail sanity-checks an uploaded thumbnail. A broken or missing
// thumbnail never fails the video itself.
func (s *videoProcessorSrv) probeThumbnail(ctx context.Context, id db.UUID, thumbnailKey *string) {
	if thumbnailKey == nil {
		return
	}

	file, err := s.strg.GetFile(ctx, s.thumbnailsBucket, *thumbnailKey)
	if err != nil {
		logger.Warnf(ctx, "could not fetch thumbnail %q of video #%s: %v", *thumbnailKey, id, err)
		return
	}
	defer func(file io.ReadCloser) {
		if err := file.Close(); err != nil {
			logger.Warnf(ctx, "failed to close thumbnail reader: %v", err)
		}
	}(file)

	cfg, format, err := image.DecodeConfig(file)
	if err != nil {
		logger.Warnf(ctx, "thumbnail %q of video #%s is not a decodable image: %v", *thumbnailKey, id, err)
		return
	}
	logger.Debugf(ctx, "thumbnail of video #%s: %s %dx%d", id, format, cfg.Width, cfg.Height)
}
