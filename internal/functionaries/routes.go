package functionaries

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ryuzenazari/hmptiunesa/internal/authz"
	"github.com/ryuzenazari/hmptiunesa/internal/middleware"
	"github.com/ryuzenazari/hmptiunesa/internal/token"
	"github.com/ryuzenazari/hmptiunesa/internal/users"
)

func SetupRoutes(tokens *token.Issuer) http.Handler {
	r := chi.NewRouter()
	fetcher := users.UserInfo{}

	// Public routes
	r.Get("/", ListFunctionaries)
	r.Get("/{functionary_id}", GetFunctionary)

	// Staff routes - roster maintenance
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens, fetcher))
		r.Use(middleware.RequireRole(authz.RoleAdmin, authz.RoleStaff))

		r.Post("/", CreateFunctionary)
		r.Put("/{functionary_id}", UpdateFunctionary)
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens, fetcher))
		r.Use(middleware.RequireRole(authz.RoleAdmin))

		r.Delete("/{functionary_id}", DeleteFunctionary)
	})

	return r
}
