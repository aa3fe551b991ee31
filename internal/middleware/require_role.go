package middleware

import (
	"net/http"

	"github.com/fhuszti/videos-ms-go/internal/api_context"
	"github.com/fhuszti/videos-ms-go/internal/handler/api"
	"github.com/fhuszti/videos-ms-go/internal/model"
)

// RequireRole rejects authenticated requests whose role is not in the allowed
// set. It assumes WithAuth already ran.
func RequireRole(allowed ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := api_context.AuthRoleFromContext(r.Context())
			if !ok {
				api.WriteError(w, http.StatusUnauthorized, "missing authentication", nil)
				return
			}
			for _, a := range allowed {
				if model.Role(role) == a {
					next.ServeHTTP(w, r)
					return
				}
			}
			api.WriteError(w, http.StatusForbidden, "insufficient role", nil)
		})
	}
}
