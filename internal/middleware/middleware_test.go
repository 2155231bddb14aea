package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ryuzenazari/hmptiunesa/internal/authz"
	"github.com/ryuzenazari/hmptiunesa/internal/middleware"
	"github.com/ryuzenazari/hmptiunesa/internal/token"
)

// mockFetcher implements middleware.UserFetcher without any database
// dependency and counts lookups so tests can assert the gate's side-effect
// budget (zero lookups before verification, exactly one after).
type mockFetcher struct {
	principal authz.Principal
	err       error
	calls     int
}

func (m *mockFetcher) FindUserByID(id string) (authz.Principal, error) {
	m.calls++
	return m.principal, m.err
}

func newIssuer(t *testing.T) *token.Issuer {
	t.Helper()
	iss, err := token.New("middleware-test-secret", time.Hour)
	if err != nil {
		t.Fatalf("token.New: %v", err)
	}
	return iss
}

// callWithHeader wraps a 200-OK inner handler in the provided middleware,
// optionally setting the Authorization header, and returns the response.
func callWithHeader(t *testing.T, mw func(http.Handler) http.Handler, header string) *httptest.ResponseRecorder {
	t.Helper()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := mw(inner)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	fetcher := &mockFetcher{}
	mw := middleware.Authenticate(newIssuer(t), fetcher)

	rec := callWithHeader(t, mw, "")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "token missing") {
		t.Errorf("expected body to mention missing token, got: %q", rec.Body.String())
	}
	// The store must never be consulted for an unauthenticated request.
	if fetcher.calls != 0 {
		t.Errorf("expected zero store lookups, got %d", fetcher.calls)
	}
}

func TestAuthenticate_WrongScheme(t *testing.T) {
	fetcher := &mockFetcher{}
	mw := middleware.Authenticate(newIssuer(t), fetcher)

	rec := callWithHeader(t, mw, "Basic dXNlcjpwYXNz")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if fetcher.calls != 0 {
		t.Errorf("expected zero store lookups, got %d", fetcher.calls)
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	fetcher := &mockFetcher{}
	mw := middleware.Authenticate(newIssuer(t), fetcher)

	rec := callWithHeader(t, mw, "Bearer not-a-real-token")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid or expired") {
		t.Errorf("expected body to mention invalid token, got: %q", rec.Body.String())
	}
	if fetcher.calls != 0 {
		t.Errorf("expected zero store lookups, got %d", fetcher.calls)
	}
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	iss := newIssuer(t)
	expired, err := token.New("middleware-test-secret", time.Nanosecond)
	if err != nil {
		t.Fatalf("token.New: %v", err)
	}
	tok, err := expired.Issue("user-1", authz.RoleMember)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	fetcher := &mockFetcher{}
	mw := middleware.Authenticate(iss, fetcher)

	rec := callWithHeader(t, mw, "Bearer "+tok)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if fetcher.calls != 0 {
		t.Errorf("expected zero store lookups, got %d", fetcher.calls)
	}
}

func TestAuthenticate_UserGone(t *testing.T) {
	iss := newIssuer(t)
	tok, err := iss.Issue("user-1", authz.RoleMember)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	fetcher := &mockFetcher{err: errors.New("record not found")}
	mw := middleware.Authenticate(iss, fetcher)

	rec := callWithHeader(t, mw, "Bearer "+tok)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if fetcher.calls != 1 {
		t.Errorf("expected exactly one store lookup, got %d", fetcher.calls)
	}
}

func TestAuthenticate_ValidToken(t *testing.T) {
	want := authz.Principal{ID: "user-1", Name: "Test", Role: authz.RoleMember}
	iss := newIssuer(t)
	tok, err := iss.Issue(want.ID, want.Role)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	fetcher := &mockFetcher{principal: want}

	// inner handler reads and checks the principal from context
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := authz.PrincipalFromContext(r.Context())
		if !ok {
			http.Error(w, "principal not in context", http.StatusInternalServerError)
			return
		}
		if got != want {
			http.Error(w, "wrong principal in context", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.Authenticate(iss, fetcher)(inner)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}
	if fetcher.calls != 1 {
		t.Errorf("expected exactly one store lookup, got %d", fetcher.calls)
	}
}

func TestRequireRole_NoPrincipal(t *testing.T) {
	mw := middleware.RequireRole(authz.RoleAdmin)

	rec := callWithHeader(t, mw, "")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 when no principal present, got %d", rec.Code)
	}
}

func TestRequireRole_Forbidden(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.RequireRole(authz.RoleAdmin)(inner)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	ctx := authz.WithPrincipal(req.Context(), authz.Principal{ID: "u1", Role: authz.RoleMember})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(ctx))

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "member") {
		t.Errorf("expected body to name the caller's role, got: %q", rec.Body.String())
	}
}

func TestRequireRole_Allowed(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.RequireRole(authz.RoleAdmin, authz.RoleStaff)(inner)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	ctx := authz.WithPrincipal(req.Context(), authz.Principal{ID: "u1", Role: authz.RoleStaff})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(ctx))

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

// TestChain_MemberOnAdminRoute verifies the precedence rule: a valid token
// for an insufficient role yields 403, never 401.
func TestChain_MemberOnAdminRoute(t *testing.T) {
	principal := authz.Principal{ID: "user-1", Role: authz.RoleMember}
	iss := newIssuer(t)
	tok, err := iss.Issue(principal.ID, principal.Role)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	fetcher := &mockFetcher{principal: principal}
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.Authenticate(iss, fetcher)(
		middleware.RequireRole(authz.RoleAdmin)(inner))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestRateLimiter_Burst(t *testing.T) {
	rl := middleware.NewRateLimiter(time.Hour, 2, "too many requests")
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := rl.Middleware(inner)

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send("10.0.0.1:1234"); code != http.StatusOK {
		t.Errorf("request 1: expected 200, got %d", code)
	}
	if code := send("10.0.0.1:1234"); code != http.StatusOK {
		t.Errorf("request 2: expected 200, got %d", code)
	}
	if code := send("10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Errorf("request 3: expected 429, got %d", code)
	}

	// A different IP has its own bucket.
	if code := send("10.0.0.2:1234"); code != http.StatusOK {
		t.Errorf("other IP: expected 200, got %d", code)
	}
}
