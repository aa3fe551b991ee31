package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fhuszti/videos-ms-go/internal/logger"
	"github.com/fhuszti/videos-ms-go/internal/port"
	"github.com/fhuszti/videos-ms-go/internal/validation"
)

type GenerateUploadLinkRequest struct {
	Title         string  `json:"title" validate:"required,max=255"`
	Description   *string `json:"description" validate:"omitempty,max=5000"`
	IsPublic      bool    `json:"is_public"`
	WithThumbnail bool    `json:"with_thumbnail"`
}

func GenerateUploadLinkHandler(svc port.UploadLinkGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateUploadLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			respondValidationErrors(w, r, errs)
			return
		}

		requester := RequesterFromContext(r.Context())

		out, err := svc.GenerateUploadLink(r.Context(), requester, port.GenerateUploadLinkInput{
			Title:         req.Title,
			Description:   req.Description,
			IsPublic:      req.IsPublic,
			WithThumbnail: req.WithThumbnail,
		})
		if err != nil {
			WriteAppError(w, err, "Could not generate upload link")
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		logger.Infof(r.Context(), "✅  Successfully generated upload link for video #%s", out.ID)
	}
}
