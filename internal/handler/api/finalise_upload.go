package api

import (
	"net/http"

	"github.com/fhuszti/videos-ms-go/internal/logger"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

func FinaliseUploadHandler(svc port.UploadFinaliser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videoID, ok := VideoIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "Missing video ID", nil)
			return
		}

		requester := RequesterFromContext(r.Context())

		if err := svc.FinaliseUpload(r.Context(), requester, videoID); err != nil {
			WriteAppError(w, err, "Could not finalise upload")
			return
		}

		w.WriteHeader(http.StatusAccepted)
		logger.Infof(r.Context(), "✅  Successfully queued video #%s for processing", videoID)
	}
}
