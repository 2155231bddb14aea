package org

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

	// Public route
	r.Get("/", GetProfile)

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens, fetcher))
		r.Use(middleware.RequireRole(authz.RoleAdmin))

		r.Put("/", UpdateProfile)
		r.Post("/departments", AddDepartment)
		r.Put("/departments/{dept_id}", UpdateDepartment)
		r.Delete("/departments/{dept_id}", DeleteDepartment)
	})

	return r
}
