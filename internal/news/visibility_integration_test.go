package news_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/ryuzenazari/hmptiunesa/internal/authz"
	"github.com/ryuzenazari/hmptiunesa/internal/db"
	"github.com/ryuzenazari/hmptiunesa/internal/news"
	"github.com/ryuzenazari/hmptiunesa/internal/password"
	"github.com/ryuzenazari/hmptiunesa/internal/token"
	"github.com/ryuzenazari/hmptiunesa/internal/users"
)

var (
	dbAvailable bool
	testServer  *httptest.Server
	testTokens  *token.Issuer
)

func TestMain(m *testing.M) {
	_ = godotenv.Load("../../.env.local")

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		os.Exit(m.Run())
	}

	db.Connect(databaseURL)
	dbAvailable = true

	var err error
	testTokens, err = token.New("integration-test-secret", time.Hour)
	if err != nil {
		fmt.Fprintln(os.Stderr, "token.New:", err)
		os.Exit(1)
	}

	users.Init()
	news.Init()

	r := chi.NewRouter()
	r.Mount("/api/news", news.SetupRoutes(testTokens))

	testServer = httptest.NewServer(r)
	defer testServer.Close()

	os.Exit(m.Run())
}

func createTestUser(t *testing.T, role authz.Role) users.User {
	t.Helper()
	if !dbAvailable {
		t.Skip("skipping integration test (requires DATABASE_URL)")
	}

	suffix := uuid.New().String()[:8]
	digest, err := password.Hash("TestPass123!")
	if err != nil {
		t.Fatalf("password.Hash: %v", err)
	}

	user := users.User{
		Name:           "News Tester " + suffix,
		Email:          fmt.Sprintf("news_%s@example.com", suffix),
		StudentID:      "24" + suffix,
		Role:           role,
		PasswordDigest: digest,
		JoinedAt:       time.Now(),
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	t.Cleanup(func() {
		db.DB.Where("author_id = ?", user.ID).Delete(&news.Article{})
		db.DB.Where("id = ?", user.ID).Delete(&users.User{})
	})
	return user
}

func tokenFor(t *testing.T, user users.User) string {
	t.Helper()
	tok, err := testTokens.Issue(user.ID.String(), user.Role)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return tok
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

func createArticle(t *testing.T, author users.User, status string) news.Article {
	t.Helper()
	resp := doJSON(t, http.MethodPost, "/api/news", map[string]interface{}{
		"title":   "Article " + uuid.New().String()[:8],
		"content": "Body text long enough to publish.",
		"status":  status,
	}, tokenFor(t, author))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create article: expected 201, got %d", resp.StatusCode)
	}
	defer resp.Body.Close()

	var article news.Article
	if err := json.NewDecoder(resp.Body).Decode(&article); err != nil {
		t.Fatalf("decode article: %v", err)
	}
	return article
}

// TestList_PublishedOnly verifies the public list hides drafts: a draft
// article is reachable by ID but never appears in the listing.
func TestList_PublishedOnly(t *testing.T) {
	author := createTestUser(t, authz.RoleMember)

	published := createArticle(t, author, "published")
	draft := createArticle(t, author, "draft")

	resp := doJSON(t, http.MethodGet, "/api/news", nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("public list: expected 200, got %d", resp.StatusCode)
	}
	defer resp.Body.Close()

	var list []news.Article
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}

	foundPublished, foundDraft := false, false
	for _, a := range list {
		if a.ID == published.ID {
			foundPublished = true
		}
		if a.ID == draft.ID {
			foundDraft = true
		}
	}
	if !foundPublished {
		t.Error("published article missing from public list")
	}
	if foundDraft {
		t.Error("draft article leaked onto the public list")
	}
}
