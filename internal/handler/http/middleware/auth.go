// Package middleware holds the route guards: token verification and the
// administrator gate.
package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/mobinh8585/attendance-system/internal/domain/auth"
	"github.com/mobinh8585/attendance-system/internal/handler/http/response"
)

// AuthRequired rejects requests whose verified token is missing, expired, or
// not an access token. Runs behind jwtauth.Verifier, which parses the
// Authorization header into the request context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if tokenType, ok := claims["type"].(string); !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
