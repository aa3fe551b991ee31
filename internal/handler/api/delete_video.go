package api

import (
	"net/http"

	"github.com/fhuszti/videos-ms-go/internal/logger"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

func DeleteVideoHandler(svc port.VideoDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videoID, ok := VideoIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "Missing video ID", nil)
			return
		}

		requester := RequesterFromContext(r.Context())

		if err := svc.DeleteVideo(r.Context(), requester, videoID); err != nil {
			WriteAppError(w, err, "Could not delete video")
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Infof(r.Context(), "✅  Successfully deleted video #%s", videoID)
	}
}
