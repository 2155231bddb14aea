package middleware

import (
	"net/http"
	"strings"

	"github.com/ryuzenazari/hmptiunesa/internal/authz"
	"github.com/ryuzenazari/hmptiunesa/internal/httpx"
	"github.com/ryuzenazari/hmptiunesa/internal/token"
)

// UserFetcher resolves a verified user id to a live principal. Implemented
// by the users package against the database and by mocks in tests.
type UserFetcher interface {
	FindUserByID(id string) (authz.Principal, error)
}

// Authenticate is the authentication gate: it extracts the bearer token,
// verifies it, resolves the principal with exactly one store lookup and
// attaches it to the request context. Requests without a valid token never
// reach the next handler.
func Authenticate(tokens *token.Issuer, fetcher UserFetcher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				httpx.Error(w, http.StatusUnauthorized, "unauthorized, token missing")
				return
			}

			userID, _, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				httpx.Error(w, http.StatusUnauthorized, "unauthorized, invalid or expired token")
				return
			}

			// The token's role claim is informational; the stored role is
			// authoritative so a role change takes effect on the next request.
			principal, err := fetcher.FindUserByID(userID)
			if err != nil {
				httpx.Error(w, http.StatusUnauthorized, "unauthorized, user no longer exists")
				return
			}

			ctx := authz.WithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole permits only principals whose role is in the allow-list.
// It must run after Authenticate; a missing principal is an authentication
// failure, not an authorization one.
func RequireRole(roles ...authz.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := authz.PrincipalFromContext(r.Context())
			if !ok {
				httpx.Error(w, http.StatusUnauthorized, "unauthorized, token missing")
				return
			}

			if !principal.Role.In(roles...) {
				httpx.Error(w, http.StatusForbidden,
					"forbidden, role "+string(principal.Role)+" does not have access to this route")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

var defaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"https://hmptiunesa.or.id",
	"https://hmpti.unesa.ac.id",
	"https://admin.hmpti.web.id",
}

// CORS returns a middleware that echoes the Origin header back only when it
// is on the allow-list. Extra origins from config are merged with the defaults.
func CORS(extra []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(defaultOrigins)+len(extra))
	for _, o := range defaultOrigins {
		allowed[o] = struct{}{}
	}
	for _, o := range extra {
		allowed[o] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if _, ok := allowed[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin") // important for caches
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods",
					"GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers",
					"Content-Type, Authorization")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
