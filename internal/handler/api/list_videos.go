package api

import (
	"net/http"

	"github.com/fhuszti/videos-ms-go/internal/logger"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

func ListPublicVideosHandler(svc port.VideoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videos, err := svc.ListPublicVideos(r.Context())
		if err != nil {
			WriteAppError(w, err, "Could not list videos")
			return
		}

		RespondJSON(w, http.StatusOK, videos)
		logger.Infof(r.Context(), "✅  Successfully listed %d public videos", len(videos))
	}
}

func ListMyVideosHandler(svc port.VideoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter port.VideoFilter

		if raw := r.URL.Query().Get("status"); raw != "" {
			status := model.ProcessingStatus(raw)
			if !status.IsValid() {
				WriteError(w, http.StatusBadRequest, "Invalid status filter", nil)
				return
			}
			filter.ProcessingStatus = &status
		}
		if raw := r.URL.Query().Get("visibility"); raw != "" {
			switch raw {
			case "public":
				isPublic := true
				filter.IsPublic = &isPublic
			case "private":
				isPublic := false
				filter.IsPublic = &isPublic
			default:
				WriteError(w, http.StatusBadRequest, "Invalid visibility filter", nil)
				return
			}
		}

		requester := RequesterFromContext(r.Context())

		videos, err := svc.ListMyVideos(r.Context(), requester, filter)
		if err != nil {
			WriteAppError(w, err, "Could not list videos")
			return
		}

		RespondJSON(w, http.StatusOK, videos)
		logger.Infof(r.Context(), "✅  Successfully listed %d own videos", len(videos))
	}
}
