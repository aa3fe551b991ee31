package worker

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/logger"
	"github.com/fhuszti/videos-ms-go/internal/port"
	"github.com/fhuszti/videos-ms-go/internal/task"
)

// ProcessVideoHandler returns an Asynq handler that drives a freshly uploaded
// video through the processing pipeline.
func ProcessVideoHandler(svc port.VideoProcessor) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseProcessVideoPayload(t)
		if err != nil {
			return fmt.Errorf("parsing payload: %w", err)
		}

		parsed, err := uuid.Parse(p.VideoID)
		if err != nil {
			return fmt.Errorf("parsing video ID %q: %w", p.VideoID, err)
		}
		id := db.UUID(parsed)

		logger.Infof(ctx, "Processing video #%s", id)
		if err := svc.ProcessVideo(ctx, id); err != nil {
			logger.Errorf(ctx, "❌  Failed to process video #%s: %v", id, err)
			return err
		}

		logger.Infof(ctx, "✅  Successfully processed video #%s", id)
		return nil
	}
}
