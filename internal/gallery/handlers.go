package gallery

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/ryuzenazari/hmptiunesa/internal/authz"
	"github.com/ryuzenazari/hmptiunesa/internal/db"
	"github.com/ryuzenazari/hmptiunesa/internal/httpx"
)

// ListItems returns all gallery items, newest first
func ListItems(w http.ResponseWriter, r *http.Request) {
	var items []Item

	if err := db.DB.Preload("UploadedBy").Order("created_at DESC").Find(&items).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to fetch gallery items: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, items)
}

// ListFeatured returns only the items marked as featured
func ListFeatured(w http.ResponseWriter, r *http.Request) {
	var items []Item

	if err := db.DB.Preload("UploadedBy").Where("featured = ?", true).
		Order("created_at DESC").Find(&items).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to fetch featured items: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, items)
}

// GetItem returns a single gallery item by ID
func GetItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")

	var item Item
	if err := db.DB.Preload("UploadedBy").First(&item, "id = ?", itemID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "gallery item not found")
		return
	}

	httpx.JSON(w, http.StatusOK, item)
}

// CreateItem creates a gallery item owned by the authenticated user
func CreateItem(w http.ResponseWriter, r *http.Request) {
	principal, ok := authz.PrincipalFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "unauthorized, token missing")
		return
	}

	var item Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if item.Title == "" || item.FileURL == "" {
		httpx.Error(w, http.StatusBadRequest, "title and file_url are required")
		return
	}
	if item.Category == "" {
		item.Category = "general"
	}

	item.ID = uuid.Nil
	item.Featured = false // only admins may feature, via the dedicated route
	item.UploadedByID = uuid.MustParse(principal.ID)

	if err := db.DB.Create(&item).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to create gallery item: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusCreated, item)
}

// UpdateItem updates an item if the caller owns it or is an admin
func UpdateItem(w http.ResponseWriter, r *http.Request) {
	principal, ok := authz.PrincipalFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "unauthorized, token missing")
		return
	}

	itemID := chi.URLParam(r, "item_id")

	var item Item
	if err := db.DB.First(&item, "id = ?", itemID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "gallery item not found")
		return
	}

	if !authz.CanModify(principal, item.UploadedByID.String()) {
		httpx.Error(w, http.StatusForbidden, "forbidden, not the item uploader")
		return
	}

	var updates struct {
		Title       *string   `json:"title,omitempty"`
		Description *string   `json:"description,omitempty"`
		Category    *string   `json:"category,omitempty"`
		Tags        *[]string `json:"tags,omitempty"`
		FileURL     *string   `json:"file_url,omitempty"`
		Thumbnail   *string   `json:"thumbnail,omitempty"`
		Location    *string   `json:"location,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updateMap := make(map[string]interface{})
	if updates.Title != nil {
		updateMap["title"] = *updates.Title
	}
	if updates.Description != nil {
		updateMap["description"] = *updates.Description
	}
	if updates.Category != nil {
		updateMap["category"] = *updates.Category
	}
	if updates.Tags != nil {
		updateMap["tags"] = pq.StringArray(*updates.Tags)
	}
	if updates.FileURL != nil {
		updateMap["file_url"] = *updates.FileURL
	}
	if updates.Thumbnail != nil {
		updateMap["thumbnail"] = *updates.Thumbnail
	}
	if updates.Location != nil {
		updateMap["location"] = *updates.Location
	}

	if err := db.DB.Model(&item).Updates(updateMap).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to update gallery item: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, item)
}

// DeleteItem deletes an item if the caller owns it or is an admin
func DeleteItem(w http.ResponseWriter, r *http.Request) {
	principal, ok := authz.PrincipalFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "unauthorized, token missing")
		return
	}

	itemID := chi.URLParam(r, "item_id")

	var item Item
	if err := db.DB.First(&item, "id = ?", itemID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "gallery item not found")
		return
	}

	if !authz.CanModify(principal, item.UploadedByID.String()) {
		httpx.Error(w, http.StatusForbidden, "forbidden, not the item uploader")
		return
	}

	if err := db.DB.Delete(&item).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to delete gallery item: "+err.Error())
		return
	}

	httpx.Message(w, http.StatusOK, "gallery item deleted")
}

// ToggleFeatured flips the featured flag. Admin only (route-level check).
func ToggleFeatured(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")

	var item Item
	if err := db.DB.First(&item, "id = ?", itemID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "gallery item not found")
		return
	}

	if err := db.DB.Model(&item).Update("featured", !item.Featured).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to update featured flag: "+err.Error())
		return
	}
	item.Featured = !item.Featured

	httpx.JSON(w, http.StatusOK, item)
}
