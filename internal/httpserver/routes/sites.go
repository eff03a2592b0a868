package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/winterhq/navhome/internal/httpserver/deps"
	"github.com/winterhq/navhome/internal/httpserver/handlers"
	"github.com/winterhq/navhome/internal/httpserver/mw"
)

func init() { Register(registerSites) }

func registerSites(r chi.Router, d deps.Deps) {
	r.Get("/sites", handlers.GetSites(d))
	r.With(mw.RequireAuth(d.Auth, d.Logger)).Post("/sites", handlers.PostSites(d))
}
