package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fhuszti/videos-ms-go/internal/logger"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
	"github.com/fhuszti/videos-ms-go/internal/validation"
)

type ReviewSensitivityRequest struct {
	Status string  `json:"status" validate:"required,oneof=pending safe flagged"`
	Score  float64 `json:"score" validate:"gte=0,lte=1"`
}

func ReviewSensitivityHandler(svc port.SensitivityReviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videoID, ok := VideoIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "Missing video ID", nil)
			return
		}

		var req ReviewSensitivityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			respondValidationErrors(w, r, errs)
			return
		}

		video, err := svc.ReviewSensitivity(r.Context(), videoID, model.SensitivityStatus(req.Status), req.Score)
		if err != nil {
			WriteAppError(w, err, "Could not record sensitivity review")
			return
		}

		RespondJSON(w, http.StatusOK, video)
		logger.Infof(r.Context(), "✅  Successfully marked video #%s as %q", videoID, req.Status)
	}
}
