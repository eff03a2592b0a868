package mw

import (
	"encoding/json"
	"net/http"

	"github.com/winterhq/navhome/internal/auth"
	"github.com/winterhq/navhome/internal/logger"
)

// RequireAuth rejects requests whose Authorization header does not carry a
// valid admin bearer token. The stored secret is never echoed; the reason
// string is safe to return to the caller.
func RequireAuth(v *auth.Validator, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			result := v.Validate(r.Context(), r.Header.Get("Authorization"))
			if !result.Valid {
				log.Debug("rejected unauthorized request",
					logger.String("path", r.URL.Path),
					logger.String("reason", result.Reason),
					logger.String("token_source", result.Source))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]interface{}{
					"success": false,
					"error":   result.Reason,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
