package news

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
	r.Get("/", ListArticles)
	r.Get("/{article_id}", GetArticle)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens, fetcher))

		r.Post("/", CreateArticle)
		r.Put("/{article_id}", UpdateArticle)
		r.Delete("/{article_id}", DeleteArticle)
	})

	return r
}
