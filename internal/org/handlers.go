package org

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

// GetProfile returns the organization profile with its departments
func GetProfile(w http.ResponseWriter, r *http.Request) {
	var profile Profile
	if err := db.DB.Preload("Departments").Preload("Departments.Head").
		First(&profile).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "organization profile not found")
		return
	}

	httpx.JSON(w, http.StatusOK, profile)
}

// UpdateProfile updates the organization profile, creating it on first use.
// Admin only (route-level check).
func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	principal, ok := authz.PrincipalFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "unauthorized, token missing")
		return
	}

	var updates struct {
		Name        *string   `json:"name,omitempty"`
		Description *string   `json:"description,omitempty"`
		Vision      *string   `json:"vision,omitempty"`
		Mission     *[]string `json:"mission,omitempty"`
		Logo        *string   `json:"logo,omitempty"`
		Email       *string   `json:"email,omitempty"`
		Phone       *string   `json:"phone,omitempty"`
		Address     *string   `json:"address,omitempty"`
		Instagram   *string   `json:"instagram,omitempty"`
		Website     *string   `json:"website,omitempty"`
		History     *string   `json:"history,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	actorID := uuid.MustParse(principal.ID)

	var profile Profile
	if err := db.DB.First(&profile).Error; err != nil {
		// First write creates the singleton row.
		if updates.Name == nil || updates.Description == nil {
			httpx.Error(w, http.StatusBadRequest, "name and description are required")
			return
		}
		profile = Profile{
			Name:        *updates.Name,
			Description: *updates.Description,
			UpdatedByID: &actorID,
		}
		if updates.Vision != nil {
			profile.Vision = *updates.Vision
		}
		if updates.Mission != nil {
			profile.Mission = pq.StringArray(*updates.Mission)
		}
		if err := db.DB.Create(&profile).Error; err != nil {
			httpx.Error(w, http.StatusInternalServerError, "failed to create profile: "+err.Error())
			return
		}
		httpx.JSON(w, http.StatusCreated, profile)
		return
	}

	updateMap := map[string]interface{}{"updated_by_id": actorID}
	if updates.Name != nil {
		updateMap["name"] = *updates.Name
	}
	if updates.Description != nil {
		updateMap["description"] = *updates.Description
	}
	if updates.Vision != nil {
		updateMap["vision"] = *updates.Vision
	}
	if updates.Mission != nil {
		updateMap["mission"] = pq.StringArray(*updates.Mission)
	}
	if updates.Logo != nil {
		updateMap["logo"] = *updates.Logo
	}
	if updates.Email != nil {
		updateMap["email"] = *updates.Email
	}
	if updates.Phone != nil {
		updateMap["phone"] = *updates.Phone
	}
	if updates.Address != nil {
		updateMap["address"] = *updates.Address
	}
	if updates.Instagram != nil {
		updateMap["instagram"] = *updates.Instagram
	}
	if updates.Website != nil {
		updateMap["website"] = *updates.Website
	}
	if updates.History != nil {
		updateMap["history"] = *updates.History
	}

	if err := db.DB.Model(&profile).Updates(updateMap).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to update profile: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, profile)
}

// AddDepartment creates a department under the profile. Admin only.
func AddDepartment(w http.ResponseWriter, r *http.Request) {
	var profile Profile
	if err := db.DB.First(&profile).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "organization profile not found")
		return
	}

	var dept Department
	if err := json.NewDecoder(r.Body).Decode(&dept); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if dept.Name == "" {
		httpx.Error(w, http.StatusBadRequest, "department name is required")
		return
	}

	dept.ID = uuid.Nil
	dept.ProfileID = profile.ID

	if err := db.DB.Create(&dept).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to create department: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusCreated, dept)
}

// UpdateDepartment updates a department. Admin only.
func UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	deptID := chi.URLParam(r, "dept_id")

	var dept Department
	if err := db.DB.First(&dept, "id = ?", deptID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "department not found")
		return
	}

	var updates struct {
		Name        *string    `json:"name,omitempty"`
		Description *string    `json:"description,omitempty"`
		HeadID      *uuid.UUID `json:"head_id,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updateMap := make(map[string]interface{})
	if updates.Name != nil {
		updateMap["name"] = *updates.Name
	}
	if updates.Description != nil {
		updateMap["description"] = *updates.Description
	}
	if updates.HeadID != nil {
		updateMap["head_id"] = *updates.HeadID
	}

	if err := db.DB.Model(&dept).Updates(updateMap).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to update department: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, dept)
}

// DeleteDepartment removes a department. Admin only.
func DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	deptID := chi.URLParam(r, "dept_id")

	var dept Department
	if err := db.DB.First(&dept, "id = ?", deptID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "department not found")
		return
	}

	if err := db.DB.Delete(&dept).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to delete department: "+err.Error())
		return
	}

	httpx.Message(w, http.StatusOK, "department deleted")
}
