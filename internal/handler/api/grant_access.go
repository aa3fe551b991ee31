package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/logger"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
	"github.com/fhuszti/videos-ms-go/internal/validation"
)

type GrantAccessRequest struct {
	UserID     string `json:"user_id" validate:"required,uuid4"`
	Permission string `json:"permission" validate:"required,oneof=view edit"`
}

func GrantAccessHandler(svc port.AccessGranter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videoID, ok := VideoIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "Missing video ID", nil)
			return
		}

		var req GrantAccessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			respondValidationErrors(w, r, errs)
			return
		}

		parsed, err := uuid.Parse(req.UserID)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid user ID", fmt.Errorf("parsing %q: %w", req.UserID, err))
			return
		}

		requester := RequesterFromContext(r.Context())

		grant, err := svc.GrantAccess(r.Context(), requester, port.GrantAccessInput{
			VideoID:    videoID,
			UserID:     db.UUID(parsed),
			Permission: model.Permission(req.Permission),
		})
		if err != nil {
			WriteAppError(w, err, "Could not grant access")
			return
		}

		RespondJSON(w, http.StatusCreated, grant)
		logger.Infof(r.Context(), "✅  Successfully granted %q on video #%s to user #%s", grant.Permission, videoID, grant.UserID)
	}
}
