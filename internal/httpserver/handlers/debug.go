package handlers

import (
	"net/http"

	"github.com/winterhq/navhome/internal/httpserver/deps"
)

// TokenInfo reports which admin token sources are populated (env vs store)
// and which one is active. Lengths only; no token material leaves here.
func TokenInfo(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info := d.Auth.Info(r.Context())
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":    true,
			"token_info": info,
		})
	}
}
