package video

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/logger"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

const downloadLinkExpiry = 1 * time.Hour

type videoGetterSrv struct {
	checker          port.AccessChecker
	ca               port.Cache
	strg             port.Storage
	videosBucket     string
	thumbnailsBucket string
}

var _ port.VideoGetter = (*videoGetterSrv)(nil)

func NewVideoGetter(checker port.AccessChecker, ca port.Cache, strg port.Storage, videosBucket, thumbnailsBucket string) port.VideoGetter {
	return &videoGetterSrv{checker: checker, ca: ca, strg: strg, videosBucket: videosBucket, thumbnailsBucket: thumbnailsBucket}
}

// GetVideo guards the fetch with the view policy, then attaches presigned
// download links. Links are only generated once processing has completed;
// before that clients poll and only see the record itself. The cache is
// consulted strictly after the policy check so a cached entry can never leak
// a private video.
func (s *videoGetterSrv) GetVideo(ctx context.Context, requesterID db.UUID, id db.UUID) (*port.GetVideoOutput, error) {
	vid, err := s.checker.CheckAccess(ctx, requesterID, id, model.PermissionView)
	if err != nil {
		return nil, err
	}

	if cached, err := s.ca.GetVideoDetails(ctx, id); err == nil && cached != nil {
		var out port.GetVideoOutput
		if err := json.Unmarshal(cached, &out); err == nil {
			logger.Debugf(ctx, "cache hit for video #%s", id)
			return &out, nil
		}
		logger.Warnf(ctx, "discarding corrupt cache entry for video #%s", id)
	} else if err != nil {
		logger.Warnf(ctx, "cache lookup failed for video #%s: %v", id, err)
	}

	out := &port.GetVideoOutput{
		Video:      *vid,
		ValidUntil: time.Now().UTC().Add(downloadLinkExpiry),
	}

	if vid.ProcessingStatus == model.ProcessingStatusCompleted {
		url, err := s.strg.GeneratePresignedDownloadURL(ctx, s.videosBucket, vid.ObjectKey, downloadLinkExpiry)
		if err != nil {
			return nil, fmt.Errorf("generating download URL for video #%s: %w", id, err)
		}
		out.DownloadURL = url

		if vid.ThumbnailKey != nil {
			thumbURL, err := s.strg.GeneratePresignedDownloadURL(ctx, s.thumbnailsBucket, *vid.ThumbnailKey, downloadLinkExpiry)
			if err != nil {
				return nil, fmt.Errorf("generating thumbnail URL for video #%s: %w", id, err)
			}
			out.ThumbnailURL = thumbURL
		}
	}

	if data, err := json.Marshal(out); err == nil {
		s.ca.SetVideoDetails(ctx, id, data, out.ValidUntil)
	}

	return out, nil
}
