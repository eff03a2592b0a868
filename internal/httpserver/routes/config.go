package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/winterhq/navhome/internal/httpserver/deps"
	"github.com/winterhq/navhome/internal/httpserver/handlers"
	"github.com/winterhq/navhome/internal/httpserver/mw"
)

func init() { Register(registerConfig) }

func registerConfig(r chi.Router, d deps.Deps) {
	auth := r.With(mw.RequireAuth(d.Auth, d.Logger))
	auth.Get("/config", handlers.GetConfig(d))
	auth.Post("/config", handlers.PostConfig(d))
}
