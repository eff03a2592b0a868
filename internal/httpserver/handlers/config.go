package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/winterhq/navhome/internal/httpserver/deps"
	"github.com/winterhq/navhome/internal/kv"
	"github.com/winterhq/navhome/internal/logger"
)

// GetConfig returns the opaque settings blob. Reads require auth: the blob
// is admin-facing state, and the dashboard historically used this endpoint
// as its token probe.
func GetConfig(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stored, err := d.KV.Get(r.Context(), kv.KeyConfig)
		if err != nil {
			if errors.Is(err, kv.ErrNotFound) {
				stored = "{}"
			} else {
				d.Logger.Error("failed to load config", logger.Error(err))
				writeError(w, http.StatusInternalServerError, "failed to load config")
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"config":  json.RawMessage(stored),
		})
	}
}

// PostConfig replaces the settings blob. The body must parse as a JSON
// object; beyond that the content is opaque.
func PostConfig(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var blob map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&blob); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON payload: expected an object")
			return
		}

		data, err := json.Marshal(blob)
		if err != nil {
			d.Logger.Error("failed to serialize config", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to save config")
			return
		}

		if err := d.KV.Put(r.Context(), kv.KeyConfig, string(data)); err != nil {
			d.Logger.Error("failed to save config", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to save config")
			return
		}

		writeSuccess(w, "")
	}
}
