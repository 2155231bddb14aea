package projects

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

// ListProjects returns all projects, newest first
func ListProjects(w http.ResponseWriter, r *http.Request) {
	var list []Project

	if err := db.DB.Preload("CreatedBy").Order("created_at DESC").Find(&list).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to fetch projects: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, list)
}

// GetProject returns a single project by ID
func GetProject(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "project_id")

	var project Project
	if err := db.DB.Preload("CreatedBy").First(&project, "id = ?", projectID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "project not found")
		return
	}

	httpx.JSON(w, http.StatusOK, project)
}

// CreateProject creates a project (staff or admin, route-level check)
func CreateProject(w http.ResponseWriter, r *http.Request) {
	principal, ok := authz.PrincipalFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "unauthorized, token missing")
		return
	}

	var project Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if project.Title == "" || project.Description == "" {
		httpx.Error(w, http.StatusBadRequest, "title and description are required")
		return
	}
	if project.Status == "" {
		project.Status = "ongoing"
	}

	project.ID = uuid.Nil
	project.CreatedByID = uuid.MustParse(principal.ID)

	if err := db.DB.Create(&project).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to create project: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusCreated, project)
}

// UpdateProject updates a project (staff or admin, route-level check)
func UpdateProject(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "project_id")

	var project Project
	if err := db.DB.First(&project, "id = ?", projectID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "project not found")
		return
	}

	var updates struct {
		Title        *string   `json:"title,omitempty"`
		Description  *string   `json:"description,omitempty"`
		Category     *string   `json:"category,omitempty"`
		Technologies *[]string `json:"technologies,omitempty"`
		Status       *string   `json:"status,omitempty"`
		LiveURL      *string   `json:"live_url,omitempty"`
		RepoURL      *string   `json:"repo_url,omitempty"`
		Thumbnail    *string   `json:"thumbnail,omitempty"`
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
	if updates.Technologies != nil {
		updateMap["technologies"] = pq.StringArray(*updates.Technologies)
	}
	if updates.Status != nil {
		updateMap["status"] = *updates.Status
	}
	if updates.LiveURL != nil {
		updateMap["live_url"] = *updates.LiveURL
	}
	if updates.RepoURL != nil {
		updateMap["repo_url"] = *updates.RepoURL
	}
	if updates.Thumbnail != nil {
		updateMap["thumbnail"] = *updates.Thumbnail
	}

	if err := db.DB.Model(&project).Updates(updateMap).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to update project: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, project)
}

// DeleteProject deletes a project (admin only, route-level check)
func DeleteProject(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "project_id")

	var project Project
	if err := db.DB.First(&project, "id = ?", projectID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "project not found")
		return
	}

	if err := db.DB.Delete(&project).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to delete project: "+err.Error())
		return
	}

	httpx.Message(w, http.StatusOK, "project deleted")
}
