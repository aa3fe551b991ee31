package port

import (
	"context"
	"time"

	"github.com/fhuszti/videos-ms-go/internal/db"
)

// Cache stores rendered video details between polls. Transitions and deletes
// must evict, so a client never polls a stale terminal state longer than the
// entry TTL.
type Cache interface {
	GetVideoDetails(ctx context.Context, id db.UUID) ([]byte, error)
	SetVideoDetails(ctx context.Context, id db.UUID, data []byte, validUntil time.Time)
	DeleteVideoDetails(ctx context.Context, id db.UUID) error
}
