package lecturers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ryuzenazari/hmptiunesa/internal/db"
	"github.com/ryuzenazari/hmptiunesa/internal/httpx"
)

// ListLecturers returns all lecturers sorted by name
func ListLecturers(w http.ResponseWriter, r *http.Request) {
	var list []Lecturer

	if err := db.DB.Preload("Research").Order("name ASC").Find(&list).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to fetch lecturers: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, list)
}

// GetLecturer returns a single lecturer by ID
func GetLecturer(w http.ResponseWriter, r *http.Request) {
	lecturerID := chi.URLParam(r, "lecturer_id")

	var lecturer Lecturer
	if err := db.DB.Preload("Research").First(&lecturer, "id = ?", lecturerID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "lecturer not found")
		return
	}

	httpx.JSON(w, http.StatusOK, lecturer)
}

// CreateLecturer creates a lecturer entry (staff or admin, route-level check)
func CreateLecturer(w http.ResponseWriter, r *http.Request) {
	var lecturer Lecturer
	if err := json.NewDecoder(r.Body).Decode(&lecturer); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if lecturer.Name == "" || lecturer.NIP == "" || lecturer.Position == "" ||
		lecturer.Specialization == "" || lecturer.Email == "" ||
		lecturer.Education == "" || lecturer.Biography == "" {
		httpx.Error(w, http.StatusBadRequest,
			"name, nip, position, specialization, email, education and biography are required")
		return
	}

	var existing Lecturer
	if err := db.DB.First(&existing, "nip = ?", lecturer.NIP).Error; err == nil {
		httpx.Error(w, http.StatusBadRequest, "nip already registered")
		return
	}

	lecturer.ID = uuid.Nil
	for i := range lecturer.Research {
		lecturer.Research[i].ID = uuid.Nil
	}

	if err := db.DB.Create(&lecturer).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to create lecturer: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusCreated, lecturer)
}

// UpdateLecturer updates a lecturer entry (staff or admin, route-level check)
func UpdateLecturer(w http.ResponseWriter, r *http.Request) {
	lecturerID := chi.URLParam(r, "lecturer_id")

	var lecturer Lecturer
	if err := db.DB.First(&lecturer, "id = ?", lecturerID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "lecturer not found")
		return
	}

	var updates struct {
		Name           *string `json:"name,omitempty"`
		Position       *string `json:"position,omitempty"`
		Specialization *string `json:"specialization,omitempty"`
		Email          *string `json:"email,omitempty"`
		Photo          *string `json:"photo,omitempty"`
		Education      *string `json:"education,omitempty"`
		Biography      *string `json:"biography,omitempty"`
		Website        *string `json:"website,omitempty"`
		LinkedIn       *string `json:"linkedin,omitempty"`
		GoogleScholar  *string `json:"google_scholar,omitempty"`
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
	if updates.Specialization != nil {
		updateMap["specialization"] = *updates.Specialization
	}
	if updates.Email != nil {
		updateMap["email"] = *updates.Email
	}
	if updates.Photo != nil {
		updateMap["photo"] = *updates.Photo
	}
	if updates.Education != nil {
		updateMap["education"] = *updates.Education
	}
	if updates.Biography != nil {
		updateMap["biography"] = *updates.Biography
	}
	if updates.Website != nil {
		updateMap["website"] = *updates.Website
	}
	if updates.LinkedIn != nil {
		updateMap["linkedin"] = *updates.LinkedIn
	}
	if updates.GoogleScholar != nil {
		updateMap["google_scholar"] = *updates.GoogleScholar
	}

	if err := db.DB.Model(&lecturer).Updates(updateMap).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to update lecturer: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, lecturer)
}

// DeleteLecturer deletes a lecturer and their research items (admin only)
func DeleteLecturer(w http.ResponseWriter, r *http.Request) {
	lecturerID := chi.URLParam(r, "lecturer_id")

	var lecturer Lecturer
	if err := db.DB.First(&lecturer, "id = ?", lecturerID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "lecturer not found")
		return
	}

	if err := db.DB.Select("Research").Delete(&lecturer).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to delete lecturer: "+err.Error())
		return
	}

	httpx.Message(w, http.StatusOK, "lecturer deleted")
}
