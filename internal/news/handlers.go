package news

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/ryuzenazari/hmptiunesa/internal/authz"
	"github.com/ryuzenazari/hmptiunesa/internal/db"
	"github.com/ryuzenazari/hmptiunesa/internal/httpx"
)

// ListArticles returns published articles, newest publish date first.
// Drafts and archived articles never appear on the public list.
func ListArticles(w http.ResponseWriter, r *http.Request) {
	var articles []Article

	if err := db.DB.Preload("Author").Where("status = ?", "published").
		Order("published_at DESC").Find(&articles).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to fetch articles: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, articles)
}

// GetArticle returns a single article and bumps its view counter
func GetArticle(w http.ResponseWriter, r *http.Request) {
	articleID := chi.URLParam(r, "article_id")

	var article Article
	if err := db.DB.Preload("Author").First(&article, "id = ?", articleID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "article not found")
		return
	}

	// Best-effort counter; a failed bump should not fail the read.
	db.DB.Model(&article).UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	article.ViewCount++

	httpx.JSON(w, http.StatusOK, article)
}

// CreateArticle creates a new article authored by the authenticated user
func CreateArticle(w http.ResponseWriter, r *http.Request) {
	principal, ok := authz.PrincipalFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "unauthorized, token missing")
		return
	}

	var article Article
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if article.Title == "" || article.Content == "" {
		httpx.Error(w, http.StatusBadRequest, "title and content are required")
		return
	}
	if article.Category == "" {
		article.Category = "announcement"
	}
	if _, ok := validCategories[article.Category]; !ok {
		httpx.Error(w, http.StatusBadRequest, "invalid category: "+article.Category)
		return
	}
	if article.Status == "" {
		article.Status = "draft"
	}
	if _, ok := validStatuses[article.Status]; !ok {
		httpx.Error(w, http.StatusBadRequest, "invalid status: "+article.Status)
		return
	}
	if article.PublishedAt.IsZero() {
		article.PublishedAt = time.Now()
	}

	article.ID = uuid.Nil
	article.ViewCount = 0
	article.AuthorID = uuid.MustParse(principal.ID)

	if err := db.DB.Create(&article).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to create article: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusCreated, article)
}

// UpdateArticle updates an article if the caller is the author or an admin
func UpdateArticle(w http.ResponseWriter, r *http.Request) {
	principal, ok := authz.PrincipalFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "unauthorized, token missing")
		return
	}

	articleID := chi.URLParam(r, "article_id")

	var article Article
	if err := db.DB.First(&article, "id = ?", articleID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "article not found")
		return
	}

	if !authz.CanModify(principal, article.AuthorID.String()) {
		httpx.Error(w, http.StatusForbidden, "forbidden, not the article author")
		return
	}

	var updates struct {
		Title     *string   `json:"title,omitempty"`
		Content   *string   `json:"content,omitempty"`
		Summary   *string   `json:"summary,omitempty"`
		Category  *string   `json:"category,omitempty"`
		Tags      *[]string `json:"tags,omitempty"`
		Thumbnail *string   `json:"thumbnail,omitempty"`
		Status    *string   `json:"status,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updateMap := make(map[string]interface{})
	if updates.Title != nil {
		updateMap["title"] = *updates.Title
	}
	if updates.Content != nil {
		updateMap["content"] = *updates.Content
	}
	if updates.Summary != nil {
		updateMap["summary"] = *updates.Summary
	}
	if updates.Category != nil {
		if _, ok := validCategories[*updates.Category]; !ok {
			httpx.Error(w, http.StatusBadRequest, "invalid category: "+*updates.Category)
			return
		}
		updateMap["category"] = *updates.Category
	}
	if updates.Tags != nil {
		updateMap["tags"] = pq.StringArray(*updates.Tags)
	}
	if updates.Thumbnail != nil {
		updateMap["thumbnail"] = *updates.Thumbnail
	}
	if updates.Status != nil {
		if _, ok := validStatuses[*updates.Status]; !ok {
			httpx.Error(w, http.StatusBadRequest, "invalid status: "+*updates.Status)
			return
		}
		updateMap["status"] = *updates.Status
	}

	if err := db.DB.Model(&article).Updates(updateMap).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to update article: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, article)
}

// DeleteArticle deletes an article if the caller is the author or an admin
func DeleteArticle(w http.ResponseWriter, r *http.Request) {
	principal, ok := authz.PrincipalFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "unauthorized, token missing")
		return
	}

	articleID := chi.URLParam(r, "article_id")

	var article Article
	if err := db.DB.First(&article, "id = ?", articleID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "article not found")
		return
	}

	if !authz.CanModify(principal, article.AuthorID.String()) {
		httpx.Error(w, http.StatusForbidden, "forbidden, not the article author")
		return
	}

	if err := db.DB.Delete(&article).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to delete article: "+err.Error())
		return
	}

	httpx.Message(w, http.StatusOK, "article deleted")
}
