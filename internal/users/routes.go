package users

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ryuzenazari/hmptiunesa/internal/authz"
	"github.com/ryuzenazari/hmptiunesa/internal/middleware"
	"github.com/ryuzenazari/hmptiunesa/internal/token"
)

func SetupRoutes(tokens *token.Issuer) http.Handler {
	h := Handler{Tokens: tokens}
	fetcher := UserInfo{}

	// 5 login attempts per 15 minutes, 3 registrations per hour, per IP.
	loginLimiter := middleware.NewRateLimiter(3*time.Minute, 5,
		"too many login attempts from this IP, try again in 15 minutes")
	registerLimiter := middleware.NewRateLimiter(20*time.Minute, 3,
		"too many registration attempts from this IP, try again in an hour")

	r := chi.NewRouter()

	// Public routes
	r.With(registerLimiter.Middleware).Post("/register", h.Register)
	r.With(loginLimiter.Middleware).Post("/login", h.Login)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens, fetcher))

		r.Get("/me", h.Me)
		r.Put("/me", h.UpdateProfile)
		r.Put("/change-password", h.ChangePassword)

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(authz.RoleAdmin))

			r.Get("/", h.ListUsers)
			r.Put("/{id}/role", h.UpdateRole)
		})
	})

	return r
}
