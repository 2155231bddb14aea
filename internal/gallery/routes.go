package gallery

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
	r.Get("/", ListItems)
	r.Get("/featured", ListFeatured)
	r.Get("/{item_id}", GetItem)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens, fetcher))

		r.Post("/", CreateItem)
		r.Put("/{item_id}", UpdateItem)
		r.Delete("/{item_id}", DeleteItem)

		// Admin routes
		r.With(middleware.RequireRole(authz.RoleAdmin)).
			Put("/{item_id}/featured", ToggleFeatured)
	})

	return r
}
