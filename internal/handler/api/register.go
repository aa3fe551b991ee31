package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fhuszti/videos-ms-go/internal/logger"
	"github.com/fhuszti/videos-ms-go/internal/port"
	"github.com/fhuszti/videos-ms-go/internal/validation"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,max=120"`
}

func RegisterHandler(svc port.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			respondValidationErrors(w, r, errs)
			return
		}

		user, err := svc.Register(r.Context(), port.RegisterInput{
			Email:    req.Email,
			Password: req.Password,
			FullName: req.FullName,
		})
		if err != nil {
			WriteAppError(w, err, "Could not register user")
			return
		}

		RespondJSON(w, http.StatusCreated, user)
		logger.Infof(r.Context(), "✅  Successfully registered user #%s", user.ID)
	}
}

func respondValidationErrors(w http.ResponseWriter, r *http.Request, errs error) {
	errsJSON, err := validation.ErrorsToJson(errs)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", fmt.Errorf("encoding validation errors: %w", err))
		return
	}

	// return the validation errors payload directly
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if _, err := w.Write([]byte(errsJSON)); err != nil {
		logger.Errorf(r.Context(), "❌  Failed to write validation errors: %v", err)
		return
	}
	logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
}
