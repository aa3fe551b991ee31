package port

import (
	"context"

	"github.com/fhuszti/videos-ms-go/internal/db"
)

// TaskDispatcher hands a video over to the background processing pipeline.
type TaskDispatcher interface {
	EnqueueProcessVideo(ctx context.Context, id db.UUID) error
}
