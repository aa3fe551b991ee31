package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/logger"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
	"github.com/fhuszti/videos-ms-go/internal/validation"
)

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=viewer editor admin"`
}

func UpdateRoleHandler(svc port.RoleUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawID := chi.URLParam(r, "id")
		parsed, err := uuid.Parse(rawID)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid user ID", fmt.Errorf("parsing %q: %w", rawID, err))
			return
		}
		userID := db.UUID(parsed)

		var req UpdateRoleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			respondValidationErrors(w, r, errs)
			return
		}

		requester := RequesterFromContext(r.Context())

		user, err := svc.UpdateRole(r.Context(), requester, userID, model.Role(req.Role))
		if err != nil {
			WriteAppError(w, err, "Could not update role")
			return
		}

		RespondJSON(w, http.StatusOK, user)
		logger.Infof(r.Context(), "✅  Successfully set role of user #%s to %q", userID, req.Role)
	}
}
