package users_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/ryuzenazari/hmptiunesa/internal/authz"
	"github.com/ryuzenazari/hmptiunesa/internal/db"
	"github.com/ryuzenazari/hmptiunesa/internal/password"
	"github.com/ryuzenazari/hmptiunesa/internal/token"
	"github.com/ryuzenazari/hmptiunesa/internal/users"
)

const testJWTSecret = "integration-test-secret"

// dbAvailable tracks whether the database connection was established.
var dbAvailable bool

// testServer is the shared httptest server for all integration tests.
var testServer *httptest.Server

// testTokens signs tokens with the same secret the server verifies, so tests
// can mint credentials without going through the rate-limited login route.
var testTokens *token.Issuer

func TestMain(m *testing.M) {
	// Load .env.local relative to the repo root (two directories up).
	_ = godotenv.Load("../../.env.local")

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		// No database available — skip all integration tests gracefully.
		os.Exit(m.Run())
	}

	db.Connect(databaseURL)
	dbAvailable = true

	var err error
	testTokens, err = token.New(testJWTSecret, time.Hour)
	if err != nil {
		fmt.Fprintln(os.Stderr, "token.New:", err)
		os.Exit(1)
	}

	// Set up user tables (idempotent).
	users.Init()

	// Mount user routes on a Chi router, matching production setup in main.go.
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Mount("/api/users", users.SetupRoutes(testTokens))

	testServer = httptest.NewServer(r)
	defer testServer.Close()

	os.Exit(m.Run())
}

// createTestUser inserts a unique user directly into the database and
// registers a cleanup function to remove it.
func createTestUser(t *testing.T, role authz.Role) (user users.User, plaintext string) {
	t.Helper()
	if !dbAvailable {
		t.Skip("skipping integration test (requires DATABASE_URL)")
	}

	suffix := uuid.New().String()[:8]
	plaintext = "TestPass123!"
	digest, err := password.Hash(plaintext)
	if err != nil {
		t.Fatalf("password.Hash: %v", err)
	}

	user = users.User{
		Name:           "Test User " + suffix,
		Email:          fmt.Sprintf("testuser_%s@example.com", suffix),
		StudentID:      "23" + suffix,
		Role:           role,
		PasswordDigest: digest,
		JoinedAt:       time.Now(),
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	t.Cleanup(func() {
		db.DB.Where("id = ?", user.ID).Delete(&users.User{})
	})

	return user, plaintext
}

// tokenFor issues a valid bearer token for the given user.
func tokenFor(t *testing.T, user users.User) string {
	t.Helper()
	tok, err := testTokens.Issue(user.ID.String(), user.Role)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return tok
}

func postJSON(t *testing.T, path string, body interface{}, bearer string) *http.Response {
	t.Helper()
	return doJSON(t, http.MethodPost, path, body, bearer)
}

func doJSON(t *testing.T, method, path string, body interface{}, bearer string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, testServer.URL+path, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestRegister_DuplicateEmail(t *testing.T) {
	if !dbAvailable {
		t.Skip("skipping integration test (requires DATABASE_URL)")
	}

	suffix := uuid.New().String()[:8]
	email := fmt.Sprintf("dup_%s@example.com", suffix)
	t.Cleanup(func() {
		db.DB.Where("email = ?", email).Delete(&users.User{})
	})

	first := postJSON(t, "/api/users/register", map[string]string{
		"name": "Dup One", "email": email, "password": "Pass123!", "nim": "11" + suffix,
	}, "")
	if first.StatusCode != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", first.StatusCode)
	}
	if body := decodeBody(t, first); body["token"] == "" {
		t.Error("expected a token in the register response")
	}

	second := postJSON(t, "/api/users/register", map[string]string{
		"name": "Dup Two", "email": email, "password": "Pass123!", "nim": "12" + suffix,
	}, "")
	if second.StatusCode != http.StatusBadRequest {
		t.Errorf("second register: expected 400, got %d", second.StatusCode)
	}
	body := decodeBody(t, second)
	if msg, _ := body["message"].(string); !strings.Contains(msg, "email already registered") {
		t.Errorf("expected duplicate-email message, got %q", msg)
	}
}

// TestLogin_GenericFailureMessage verifies that unknown email and wrong
// password are indistinguishable by message, and that correct credentials
// return a verifiable token.
func TestLogin_GenericFailureMessage(t *testing.T) {
	user, plaintext := createTestUser(t, authz.RoleMember)

	wrongPass := postJSON(t, "/api/users/login", map[string]string{
		"email": user.Email, "password": "not-the-password",
	}, "")
	if wrongPass.StatusCode != http.StatusUnauthorized {
		t.Errorf("wrong password: expected 401, got %d", wrongPass.StatusCode)
	}
	msg1, _ := decodeBody(t, wrongPass)["message"].(string)

	unknown := postJSON(t, "/api/users/login", map[string]string{
		"email": "nobody@example.com", "password": "whatever",
	}, "")
	if unknown.StatusCode != http.StatusUnauthorized {
		t.Errorf("unknown email: expected 401, got %d", unknown.StatusCode)
	}
	msg2, _ := decodeBody(t, unknown)["message"].(string)

	if msg1 != msg2 {
		t.Errorf("login failure messages must match to prevent enumeration: %q vs %q", msg1, msg2)
	}

	good := postJSON(t, "/api/users/login", map[string]string{
		"email": user.Email, "password": plaintext,
	}, "")
	if good.StatusCode != http.StatusOK {
		t.Fatalf("correct login: expected 200, got %d", good.StatusCode)
	}
	tok, _ := decodeBody(t, good)["token"].(string)
	gotID, gotRole, err := testTokens.Verify(tok)
	if err != nil {
		t.Fatalf("returned token does not verify: %v", err)
	}
	if gotID != user.ID.String() || gotRole != user.Role {
		t.Errorf("token claims mismatch: got (%s, %s)", gotID, gotRole)
	}
}

func TestMe_OmitsPasswordDigest(t *testing.T) {
	user, _ := createTestUser(t, authz.RoleMember)

	resp := doJSON(t, http.MethodGet, "/api/users/me", nil, tokenFor(t, user))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["email"] != user.Email {
		t.Errorf("expected email %q, got %v", user.Email, body["email"])
	}
	for _, key := range []string{"password", "password_digest", "PasswordDigest"} {
		if _, present := body[key]; present {
			t.Errorf("response must not expose %q", key)
		}
	}
}

func TestChangePassword_RequiresCurrent(t *testing.T) {
	user, plaintext := createTestUser(t, authz.RoleMember)
	bearer := tokenFor(t, user)

	wrong := doJSON(t, http.MethodPut, "/api/users/change-password", map[string]string{
		"current_password": "not-it", "new_password": "NewPass456!",
	}, bearer)
	if wrong.StatusCode != http.StatusUnauthorized {
		t.Errorf("wrong current password: expected 401, got %d", wrong.StatusCode)
	}
	wrong.Body.Close()

	right := doJSON(t, http.MethodPut, "/api/users/change-password", map[string]string{
		"current_password": plaintext, "new_password": "NewPass456!",
	}, bearer)
	if right.StatusCode != http.StatusOK {
		t.Fatalf("change password: expected 200, got %d", right.StatusCode)
	}
	right.Body.Close()

	var updated users.User
	if err := db.DB.First(&updated, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if !password.Verify("NewPass456!", updated.PasswordDigest) {
		t.Error("stored digest does not match the new password")
	}
	if password.Verify(plaintext, updated.PasswordDigest) {
		t.Error("stored digest still matches the old password")
	}
}

func TestExpiredToken_Rejected(t *testing.T) {
	user, _ := createTestUser(t, authz.RoleMember)

	shortLived, err := token.New(testJWTSecret, time.Nanosecond)
	if err != nil {
		t.Fatalf("token.New: %v", err)
	}
	tok, err := shortLived.Issue(user.ID.String(), user.Role)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	resp := doJSON(t, http.MethodGet, "/api/users/me", nil, tok)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 for expired token, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestUpdateRole_AdminOnly(t *testing.T) {
	member, _ := createTestUser(t, authz.RoleMember)
	target, _ := createTestUser(t, authz.RoleMember)
	admin, _ := createTestUser(t, authz.RoleAdmin)

	// A member with a perfectly valid token gets 403, not 401.
	forbidden := doJSON(t, http.MethodPut, "/api/users/"+target.ID.String()+"/role",
		map[string]string{"role": "staff"}, tokenFor(t, member))
	if forbidden.StatusCode != http.StatusForbidden {
		t.Errorf("member caller: expected 403, got %d", forbidden.StatusCode)
	}
	forbidden.Body.Close()

	invalid := doJSON(t, http.MethodPut, "/api/users/"+target.ID.String()+"/role",
		map[string]string{"role": "superuser"}, tokenFor(t, admin))
	if invalid.StatusCode != http.StatusBadRequest {
		t.Errorf("invalid role: expected 400, got %d", invalid.StatusCode)
	}
	invalid.Body.Close()

	ok := doJSON(t, http.MethodPut, "/api/users/"+target.ID.String()+"/role",
		map[string]string{"role": "staff"}, tokenFor(t, admin))
	if ok.StatusCode != http.StatusOK {
		t.Fatalf("admin caller: expected 200, got %d", ok.StatusCode)
	}
	ok.Body.Close()

	var updated users.User
	if err := db.DB.First(&updated, "id = ?", target.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if updated.Role != authz.RoleStaff {
		t.Errorf("expected role staff, got %q", updated.Role)
	}
}
