package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fhuszti/videos-ms-go/internal/api_context"
	"github.com/fhuszti/videos-ms-go/internal/apperr"
	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/logger"
	"github.com/fhuszti/videos-ms-go/internal/model"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, status int, msg string, err error) {
	ctx := context.Background()
	if err != nil {
		logger.Errorf(ctx, "❌  %s: %v", msg, err)
	} else {
		logger.Error(ctx, "❌  "+msg)
	}
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

// WriteAppError maps a kinded core error to its transport status. Errors
// without a kind are internal failures whose details stay out of the response.
func WriteAppError(w http.ResponseWriter, err error, fallbackMsg string) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		WriteError(w, http.StatusBadRequest, err.Error(), nil)
	case apperr.KindAccessDenied:
		WriteError(w, http.StatusForbidden, err.Error(), nil)
	case apperr.KindNotFound:
		WriteError(w, http.StatusNotFound, err.Error(), nil)
	case apperr.KindConflict, apperr.KindInvalidTransition:
		WriteError(w, http.StatusConflict, err.Error(), nil)
	default:
		WriteError(w, http.StatusInternalServerError, fallbackMsg, err)
	}
}

func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to encode JSON response: %v", err)
	}
}

// RequesterFromContext rebuilds the strongly-typed requester the auth
// middleware stored. A request that skipped authentication yields an
// anonymous requester.
func RequesterFromContext(ctx context.Context) model.Requester {
	req := model.Requester{ID: db.Nil, Role: model.RoleViewer}
	if id, ok := api_context.AuthUserIDFromContext(ctx); ok {
		req.ID = id
	}
	if role, ok := api_context.AuthRoleFromContext(ctx); ok {
		req.Role = model.Role(role)
	}
	return req
}
