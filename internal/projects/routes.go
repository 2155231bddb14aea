package projects

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
	r.Get("/", ListProjects)
	r.Get("/{project_id}", GetProject)

	// Staff routes - portfolio maintenance
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens, fetcher))
		r.Use(middleware.RequireRole(authz.RoleAdmin, authz.RoleStaff))

		r.Post("/", CreateProject)
		r.Put("/{project_id}", UpdateProject)
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens, fetcher))
		r.Use(middleware.RequireRole(authz.RoleAdmin))

		r.Delete("/{project_id}", DeleteProject)
	})

	return r
}
