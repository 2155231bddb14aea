package events

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ryuzenazari/hmptiunesa/internal/middleware"
	"github.com/ryuzenazari/hmptiunesa/internal/token"
	"github.com/ryuzenazari/hmptiunesa/internal/users"
)

func SetupRoutes(tokens *token.Issuer) http.Handler {
	r := chi.NewRouter()
	fetcher := users.UserInfo{}

	// Public routes
	r.Get("/", ListEvents)
	r.Get("/{event_id}", GetEvent)

	// Protected routes - mutations require a valid token; update and delete
	// additionally require ownership or the admin role (checked in handlers)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens, fetcher))

		r.Post("/", CreateEvent)
		r.Put("/{event_id}", UpdateEvent)
		r.Delete("/{event_id}", DeleteEvent)
	})

	return r
}
