package api

import (
	"net/http"

	"github.com/fhuszti/videos-ms-go/internal/logger"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

func GetVideoHandler(svc port.VideoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videoID, ok := VideoIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "Missing video ID", nil)
			return
		}

		requester := RequesterFromContext(r.Context())

		out, err := svc.GetVideo(r.Context(), requester.ID, videoID)
		if err != nil {
			WriteAppError(w, err, "Could not fetch video")
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully fetched video #%s", videoID)
	}
}
