package events

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ryuzenazari/hmptiunesa/internal/authz"
	"github.com/ryuzenazari/hmptiunesa/internal/db"
	"github.com/ryuzenazari/hmptiunesa/internal/httpx"
)

// ListEvents returns all events, newest start date first
func ListEvents(w http.ResponseWriter, r *http.Request) {
	var events []Event

	if err := db.DB.Preload("CreatedBy").Order("starts_at DESC").Find(&events).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to fetch events: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, events)
}

// GetEvent returns a single event by ID
func GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "event_id")

	var event Event
	if err := db.DB.Preload("CreatedBy").First(&event, "id = ?", eventID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "event not found")
		return
	}

	httpx.JSON(w, http.StatusOK, event)
}

// CreateEvent creates a new event owned by the authenticated user
func CreateEvent(w http.ResponseWriter, r *http.Request) {
	principal, ok := authz.PrincipalFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "unauthorized, token missing")
		return
	}

	var event Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if event.Title == "" || event.Description == "" || event.Location == "" ||
		event.StartsAt.IsZero() || event.EndsAt.IsZero() {
		httpx.Error(w, http.StatusBadRequest, "title, description, location and dates are required")
		return
	}
	if event.Category == "" {
		event.Category = "general"
	}
	if _, ok := validCategories[event.Category]; !ok {
		httpx.Error(w, http.StatusBadRequest, "invalid category: "+event.Category)
		return
	}
	if event.Status == "" {
		event.Status = "upcoming"
	}
	if _, ok := validStatuses[event.Status]; !ok {
		httpx.Error(w, http.StatusBadRequest, "invalid status: "+event.Status)
		return
	}

	// Ownership always comes from the verified principal, never the body.
	event.ID = uuid.Nil
	event.CreatedByID = uuid.MustParse(principal.ID)

	if err := db.DB.Create(&event).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to create event: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusCreated, event)
}

// UpdateEvent updates an event if the caller owns it or is an admin
func UpdateEvent(w http.ResponseWriter, r *http.Request) {
	principal, ok := authz.PrincipalFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "unauthorized, token missing")
		return
	}

	eventID := chi.URLParam(r, "event_id")

	// Existence is checked before ownership so 404 always wins over 403.
	var event Event
	if err := db.DB.First(&event, "id = ?", eventID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "event not found")
		return
	}

	if !authz.CanModify(principal, event.CreatedByID.String()) {
		httpx.Error(w, http.StatusForbidden, "forbidden, not the event owner")
		return
	}

	var updates struct {
		Title       *string `json:"title,omitempty"`
		Description *string `json:"description,omitempty"`
		TimeNote    *string `json:"time_note,omitempty"`
		Location    *string `json:"location,omitempty"`
		Category    *string `json:"category,omitempty"`
		Status      *string `json:"status,omitempty"`
		Thumbnail   *string `json:"thumbnail,omitempty"`
		Capacity    *int    `json:"capacity,omitempty"`
		Speaker     *string `json:"speaker,omitempty"`
		FormURL     *string `json:"form_url,omitempty"`
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
	if updates.TimeNote != nil {
		updateMap["time_note"] = *updates.TimeNote
	}
	if updates.Location != nil {
		updateMap["location"] = *updates.Location
	}
	if updates.Category != nil {
		if _, ok := validCategories[*updates.Category]; !ok {
			httpx.Error(w, http.StatusBadRequest, "invalid category: "+*updates.Category)
			return
		}
		updateMap["category"] = *updates.Category
	}
	if updates.Status != nil {
		if _, ok := validStatuses[*updates.Status]; !ok {
			httpx.Error(w, http.StatusBadRequest, "invalid status: "+*updates.Status)
			return
		}
		updateMap["status"] = *updates.Status
	}
	if updates.Thumbnail != nil {
		updateMap["thumbnail"] = *updates.Thumbnail
	}
	if updates.Capacity != nil {
		updateMap["capacity"] = *updates.Capacity
	}
	if updates.Speaker != nil {
		updateMap["speaker"] = *updates.Speaker
	}
	if updates.FormURL != nil {
		updateMap["form_url"] = *updates.FormURL
	}

	if err := db.DB.Model(&event).Updates(updateMap).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to update event: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, event)
}

// DeleteEvent deletes an event if the caller owns it or is an admin
func DeleteEvent(w http.ResponseWriter, r *http.Request) {
	principal, ok := authz.PrincipalFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "unauthorized, token missing")
		return
	}

	eventID := chi.URLParam(r, "event_id")

	var event Event
	if err := db.DB.First(&event, "id = ?", eventID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "event not found")
		return
	}

	if !authz.CanModify(principal, event.CreatedByID.String()) {
		httpx.Error(w, http.StatusForbidden, "forbidden, not the event owner")
		return
	}

	if err := db.DB.Delete(&event).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to delete event: "+err.Error())
		return
	}

	httpx.Message(w, http.StatusOK, "event deleted")
}
