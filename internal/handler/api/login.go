package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fhuszti/videos-ms-go/internal/apperr"
	"github.com/fhuszti/videos-ms-go/internal/logger"
	"github.com/fhuszti/videos-ms-go/internal/port"
	"github.com/fhuszti/videos-ms-go/internal/validation"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func LoginHandler(svc port.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			respondValidationErrors(w, r, errs)
			return
		}

		out, err := svc.Login(r.Context(), port.LoginInput{Email: req.Email, Password: req.Password})
		if err != nil {
			// a failed credential check is a 401, not the policy layer's 403
			if apperr.IsKind(err, apperr.KindAccessDenied) {
				WriteError(w, http.StatusUnauthorized, err.Error(), nil)
				return
			}
			WriteAppError(w, err, "Could not log in")
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Info(r.Context(), "✅  Successful login")
	}
}
