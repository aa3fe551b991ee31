package api

import (
	"net/http"

	"github.com/fhuszti/videos-ms-go/internal/logger"
	"github.com/fhuszti/videos-ms-go/internal/port"
)

func GetMeHandler(svc port.ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester := RequesterFromContext(r.Context())

		user, err := svc.GetProfile(r.Context(), requester.ID)
		if err != nil {
			WriteAppError(w, err, "Could not load profile")
			return
		}

		RespondJSON(w, http.StatusOK, user)
		logger.Info(r.Context(), "✅  Successfully fetched own profile")
	}
}
