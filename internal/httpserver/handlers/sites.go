package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/winterhq/navhome/internal/domain"
	"github.com/winterhq/navhome/internal/httpserver/deps"
	"github.com/winterhq/navhome/internal/kv"
	"github.com/winterhq/navhome/internal/logger"
)

// GetSites returns the persisted category collection verbatim. Public: the
// dashboard renders it without credentials. An unset key yields an empty
// array rather than an error.
func GetSites(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stored, err := d.KV.Get(r.Context(), kv.KeySites)
		if err != nil {
			if errors.Is(err, kv.ErrNotFound) {
				writeRawJSON(w, http.StatusOK, "[]")
				return
			}
			d.Logger.Error("failed to load sites", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to load sites")
			return
		}
		writeRawJSON(w, http.StatusOK, stored)
	}
}

// PostSites replaces the entire stored collection. The body must be a full
// category sequence satisfying the collection invariant; this is a
// full-replace write, never a merge.
func PostSites(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var collection domain.Collection
		if err := json.NewDecoder(r.Body).Decode(&collection); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON payload: expected an array of categories")
			return
		}

		if err := domain.ValidateCollection(collection); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		data, err := json.Marshal(collection)
		if err != nil {
			d.Logger.Error("failed to serialize sites", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to save sites")
			return
		}

		if err := d.KV.Put(r.Context(), kv.KeySites, string(data)); err != nil {
			d.Logger.Error("failed to save sites", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to save sites")
			return
		}

		d.Logger.Info("sites collection replaced",
			logger.Int("categories", len(collection)))
		writeSuccess(w, "")
	}
}
