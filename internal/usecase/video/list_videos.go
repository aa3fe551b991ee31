package video

import (
	"context"
	"fmt"

	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

type videoListerSrv struct {
	videos port.VideoRepository
}

var _ port.VideoLister = (*videoListerSrv)(nil)

func NewVideoLister(videos port.VideoRepository) port.VideoLister {
	return &videoListerSrv{videos: videos}
}

// ListPublicVideos returns every public video, newest first, regardless of
// processing state. Visibility is independent of the processing lifecycle.
func (s *videoListerSrv) ListPublicVideos(ctx context.Context) ([]model.Video, error) {
	vids, err := s.videos.ListPublic(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing public videos: %w", err)
	}
	return vids, nil
}

// ListMyVideos returns the requester's own library, optionally narrowed by
// processing status and visibility.
func (s *videoListerSrv) ListMyVideos(ctx context.Context, requester model.Requester, filter port.VideoFilter) ([]model.Video, error) {
	vids, err := s.videos.ListByOwner(ctx, requester.ID, filter)
	if err != nil {
		return nil, fmt.Errorf("listing videos of user #%s: %w", requester.ID, err)
	}
	return vids, nil
}
