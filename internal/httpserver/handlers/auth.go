package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/winterhq/navhome/internal/httpserver/deps"
	"github.com/winterhq/navhome/internal/kv"
	"github.com/winterhq/navhome/internal/logger"
)

// MinTokenLength is the minimum accepted admin token length.
const MinTokenLength = 8

// VerifyToken acknowledges a valid bearer token. The RequireAuth middleware
// has already done the actual check by the time this runs.
func VerifyToken(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, "token valid")
	}
}

type initTokenRequest struct {
	Token string `json:"token"`
}

// InitToken performs the one-time admin token setup. It refuses to run when
// a token already exists, regardless of the payload; resetting means editing
// the store directly.
func InitToken(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req initTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON payload")
			return
		}

		if len(req.Token) < MinTokenLength {
			writeError(w, http.StatusBadRequest, "invalid token: must be at least 8 characters")
			return
		}

		stored, err := d.KV.PutIfAbsent(r.Context(), kv.KeyAdminToken, req.Token)
		if err != nil {
			d.Logger.Error("failed to store admin token", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to store admin token")
			return
		}
		if !stored {
			writeError(w, http.StatusConflict, "admin token already initialized; edit the store directly to reset it")
			return
		}

		d.Logger.Info("admin token initialized")
		writeSuccess(w, "admin token initialized")
	}
}
