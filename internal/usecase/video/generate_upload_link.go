package video

import (
	"context"
	"fmt"
	"time"

	"github.com/fhuszti/videos-ms-go/internal/apperr"
	"github.com/fhuszti/videos-ms-go/internal/logger"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

const uploadLinkExpiry = 15 * time.Minute

type uploadLinkGeneratorSrv struct {
	videos           port.VideoRepository
	strg             port.Storage
	genUUID          port.UUIDGen
	videosBucket     string
	thumbnailsBucket string
}

var _ port.UploadLinkGenerator = (*uploadLinkGeneratorSrv)(nil)

func NewUploadLinkGenerator(videos port.VideoRepository, strg port.Storage, genUUID port.UUIDGen, videosBucket, thumbnailsBucket string) port.UploadLinkGenerator {
	return &uploadLinkGeneratorSrv{
		videos:           videos,
		strg:             strg,
		genUUID:          genUUID,
		videosBucket:     videosBucket,
		thumbnailsBucket: thumbnailsBucket,
	}
}

// GenerateUploadLink creates the video record at status "pending" and returns
// presigned links. Only editors and admins may create content.
func (s *uploadLinkGeneratorSrv) GenerateUploadLink(ctx context.Context, requester model.Requester, in port.GenerateUploadLinkInput) (port.GenerateUploadLinkOutput, error) {
	if !requester.Role.CanUpload() {
		return port.GenerateUploadLinkOutput{}, apperr.AccessDenied("role %q may not upload videos", requester.Role)
	}
	if in.Title == "" {
		return port.GenerateUploadLinkOutput{}, apperr.Validation("title is required")
	}

	id := s.genUUID()
	objectKey := fmt.Sprintf("%s_%d", id, time.Now().UTC().UnixNano())

	vid := &model.Video{
		ID:                id,
		Title:             in.Title,
		Description:       in.Description,
		ObjectKey:         objectKey,
		UploadedBy:        requester.ID,
		IsPublic:          in.IsPublic,
		ProcessingStatus:  model.ProcessingStatusPending,
		SensitivityStatus: model.SensitivityStatusPending,
	}
	if in.WithThumbnail {
		thumbKey := objectKey + "_thumb"
		vid.ThumbnailKey = &thumbKey
	}

	uploadURL, err := s.strg.GeneratePresignedUploadURL(ctx, s.videosBucket, objectKey, uploadLinkExpiry)
	if err != nil {
		return port.GenerateUploadLinkOutput{}, fmt.Errorf("generating upload URL for video #%s: %w", id, err)
	}

	out := port.GenerateUploadLinkOutput{ID: id, UploadURL: uploadURL}
	if vid.ThumbnailKey != nil {
		thumbURL, err := s.strg.GeneratePresignedUploadURL(ctx, s.thumbnailsBucket, *vid.ThumbnailKey, uploadLinkExpiry)
		if err != nil {
			return port.GenerateUploadLinkOutput{}, fmt.Errorf("generating thumbnail upload URL for video #%s: %w", id, err)
		}
		out.ThumbnailUploadURL = thumbURL
	}

	if err := s.videos.Create(ctx, vid); err != nil {
		return port.GenerateUploadLinkOutput{}, fmt.Errorf("creating video record: %w", err)
	}

	logger.Infof(ctx, "created pending video #%s for user #%s", id, requester.ID)
	return out, nil
}
