package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/logger"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

func RevokeAccessHandler(svc port.AccessRevoker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videoID, ok := VideoIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "Missing video ID", nil)
			return
		}

		rawUserID := chi.URLParam(r, "userID")
		parsed, err := uuid.Parse(rawUserID)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid user ID", fmt.Errorf("parsing %q: %w", rawUserID, err))
			return
		}

		permission := model.Permission(r.URL.Query().Get("permission"))
		if !permission.IsValid() {
			WriteError(w, http.StatusBadRequest, "Invalid permission", nil)
			return
		}

		requester := RequesterFromContext(r.Context())

		if err := svc.RevokeAccess(r.Context(), requester, videoID, db.UUID(parsed), permission); err != nil {
			WriteAppError(w, err, "Could not revoke access")
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Infof(r.Context(), "✅  Successfully revoked %q on video #%s from user #%s", permission, videoID, rawUserID)
	}
}
