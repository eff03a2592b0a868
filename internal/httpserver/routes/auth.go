package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/winterhq/navhome/internal/httpserver/deps"
	"github.com/winterhq/navhome/internal/httpserver/handlers"
	"github.com/winterhq/navhome/internal/httpserver/mw"
)

func init() { Register(registerAuth) }

func registerAuth(r chi.Router, d deps.Deps) {
	r.With(mw.RequireAuth(d.Auth, d.Logger)).Get("/auth/verify", handlers.VerifyToken(d))
	// One-time setup; guards itself by refusing when a token exists.
	r.Post("/auth/init", handlers.InitToken(d))
}
