package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fhuszti/videos-ms-go/internal/logger"
	"github.com/fhuszti/videos-ms-go/internal/port"
	"github.com/fhuszti/videos-ms-go/internal/validation"
)

type CreateOrganizationRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

func CreateOrganizationHandler(svc port.OrganizationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateOrganizationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			respondValidationErrors(w, r, errs)
			return
		}

		requester := RequesterFromContext(r.Context())

		org, err := svc.CreateOrganization(r.Context(), requester, port.CreateOrganizationInput{
			Name:        req.Name,
			Description: req.Description,
		})
		if err != nil {
			WriteAppError(w, err, "Could not create organization")
			return
		}

		RespondJSON(w, http.StatusCreated, org)
		logger.Infof(r.Context(), "✅  Successfully created organization #%s", org.ID)
	}
}
