package members

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
	r.Get("/", ListMembers)
	r.Get("/{member_id}", GetMember)

	// Staff routes - directory maintenance
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens, fetcher))
		r.Use(middleware.RequireRole(authz.RoleAdmin, authz.RoleStaff))

		r.Post("/", CreateMember)
		r.Put("/{member_id}", UpdateMember)
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens, fetcher))
		r.Use(middleware.RequireRole(authz.RoleAdmin))

		r.Delete("/{member_id}", DeleteMember)
	})

	return r
}
