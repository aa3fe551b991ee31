package api_context

import (
	"context"

	"github.com/fhuszti/videos-ms-go/internal/db"
)

type ctxKey string

const (
	VideoIDKey    ctxKey = "videoID"
	AuthUserIDKey ctxKey = "authUserID"
	AuthRoleKey   ctxKey = "authRole"
)

func VideoIDFromContext(ctx context.Context) (db.UUID, bool) {
	id, ok := ctx.Value(VideoIDKey).(db.UUID)
	return id, ok
}

func AuthUserIDFromContext(ctx context.Context) (db.UUID, bool) {
	id, ok := ctx.Value(AuthUserIDKey).(db.UUID)
	return id, ok
}

func AuthRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(AuthRoleKey).(string)
	return role, ok
}
