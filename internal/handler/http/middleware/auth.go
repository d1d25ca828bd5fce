package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/retail-hr/internal/domain/session"
	"github.com/cmlabs-hris/retail-hr/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// SessionRequired rejects requests without a verified session token. It
// runs after jwtauth.Verifier.
func SessionRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			response.HandleError(w, session.ErrInvalidToken)
			return
		}

		tokenType, ok := claims["type"].(string)
		if !ok || tokenType != "session" {
			response.HandleError(w, session.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}
