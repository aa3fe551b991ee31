package api

import (
	"context"

	"github.com/fhuszti/videos-ms-go/internal/api_context"
	"github.com/fhuszti/videos-ms-go/internal/db"
)

func VideoIDFromContext(ctx context.Context) (db.UUID, bool) {
	return api_context.VideoIDFromContext(ctx)
}
