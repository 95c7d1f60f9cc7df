package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/mobinh8585/attendance-system/internal/domain/auth"
	"github.com/mobinh8585/attendance-system/internal/handler/http/response"
)

// AdminOnly restricts a route group to tokens carrying the is_admin claim.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		admin, ok := claims["is_admin"].(bool)
		if !admin || !ok {
			response.HandleError(w, auth.ErrAdminOnly)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// WorkerID pulls the worker identity out of a self-service token. Empty when
// the token is administrative.
func WorkerID(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	id, _ := claims["worker_id"].(string)
	return id
}
