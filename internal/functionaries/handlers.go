package functionaries

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ryuzenazari/hmptiunesa/internal/db"
	"github.com/ryuzenazari/hmptiunesa/internal/httpx"
)

// ListFunctionaries returns all functionaries sorted by position
func ListFunctionaries(w http.ResponseWriter, r *http.Request) {
	var list []Functionary

	if err := db.DB.Order("position ASC").Find(&list).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to fetch functionaries: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, list)
}

// GetFunctionary returns a single functionary by ID
func GetFunctionary(w http.ResponseWriter, r *http.Request) {
	functionaryID := chi.URLParam(r, "functionary_id")

	var functionary Functionary
	if err := db.DB.First(&functionary, "id = ?", functionaryID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "functionary not found")
		return
	}

	httpx.JSON(w, http.StatusOK, functionary)
}

// CreateFunctionary creates a functionary entry (staff or admin, route-level check)
func CreateFunctionary(w http.ResponseWriter, r *http.Request) {
	var functionary Functionary
	if err := json.NewDecoder(r.Body).Decode(&functionary); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if functionary.Name == "" || functionary.StudentID == "" || functionary.Position == "" ||
		functionary.Department == "" || functionary.Period == "" || functionary.Email == "" {
		httpx.Error(w, http.StatusBadRequest,
			"name, nim, position, department, period and email are required")
		return
	}

	var existing Functionary
	if err := db.DB.First(&existing, "nim = ?", functionary.StudentID).Error; err == nil {
		httpx.Error(w, http.StatusBadRequest, "nim already registered")
		return
	}

	functionary.ID = uuid.Nil
	functionary.Active = true

	if err := db.DB.Create(&functionary).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to create functionary: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusCreated, functionary)
}

// UpdateFunctionary updates a functionary entry (staff or admin, route-level check)
func UpdateFunctionary(w http.ResponseWriter, r *http.Request) {
	functionaryID := chi.URLParam(r, "functionary_id")

	var functionary Functionary
	if err := db.DB.First(&functionary, "id = ?", functionaryID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "functionary not found")
		return
	}

	var updates struct {
		Name        *string `json:"name,omitempty"`
		Position    *string `json:"position,omitempty"`
		Department  *string `json:"department,omitempty"`
		Period      *string `json:"period,omitempty"`
		Photo       *string `json:"photo,omitempty"`
		Email       *string `json:"email,omitempty"`
		PhoneNumber *string `json:"phone_number,omitempty"`
		Instagram   *string `json:"instagram,omitempty"`
		LinkedIn    *string `json:"linkedin,omitempty"`
		GitHub      *string `json:"github,omitempty"`
		Bio         *string `json:"bio,omitempty"`
		Active      *bool   `json:"active,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updateMap := make(map[string]interface{})
	if updates.Name != nil {
		updateMap["name"] = *updates.Name
	}
	if updates.Position != nil {
		updateMap["position"] = *updates.Position
	}
	if updates.Department != nil {
		updateMap["department"] = *updates.Department
	}
	if updates.Period != nil {
		updateMap["period"] = *updates.Period
	}
	if updates.Photo != nil {
		updateMap["photo"] = *updates.Photo
	}
	if updates.Email != nil {
		updateMap["email"] = *updates.Email
	}
	if updates.PhoneNumber != nil {
		updateMap["phone_number"] = *updates.PhoneNumber
	}
	if updates.Instagram != nil {
		updateMap["instagram"] = *updates.Instagram
	}
	if updates.LinkedIn != nil {
		updateMap["linkedin"] = *updates.LinkedIn
	}
	if updates.GitHub != nil {
		updateMap["github"] = *updates.GitHub
	}
	if updates.Bio != nil {
		updateMap["bio"] = *updates.Bio
	}
	if updates.Active != nil {
		updateMap["active"] = *updates.Active
	}

	if err := db.DB.Model(&functionary).Updates(updateMap).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to update functionary: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, functionary)
}

// DeleteFunctionary deletes a functionary entry (admin only, route-level check)
func DeleteFunctionary(w http.ResponseWriter, r *http.Request) {
	functionaryID := chi.URLParam(r, "functionary_id")

	var functionary Functionary
	if err := db.DB.First(&functionary, "id = ?", functionaryID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "functionary not found")
		return
	}

	if err := db.DB.Delete(&functionary).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to delete functionary: "+err.Error())
		return
	}

	httpx.Message(w, http.StatusOK, "functionary deleted")
}
