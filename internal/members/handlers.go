package members

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/ryuzenazari/hmptiunesa/internal/db"
	"github.com/ryuzenazari/hmptiunesa/internal/httpx"
)

// ListMembers returns all members sorted by name
func ListMembers(w http.ResponseWriter, r *http.Request) {
	var list []Member

	if err := db.DB.Order("name ASC").Find(&list).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to fetch members: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, list)
}

// GetMember returns a single member by ID
func GetMember(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "member_id")

	var member Member
	if err := db.DB.First(&member, "id = ?", memberID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "member not found")
		return
	}

	httpx.JSON(w, http.StatusOK, member)
}

// CreateMember creates a member entry (staff or admin, route-level check)
func CreateMember(w http.ResponseWriter, r *http.Request) {
	var member Member
	if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if member.Name == "" || member.StudentID == "" || member.Email == "" ||
		member.YearJoined == 0 || member.Batch == "" || member.Department == "" {
		httpx.Error(w, http.StatusBadRequest,
			"name, nim, email, year_joined, batch and department are required")
		return
	}
	if member.MembershipType == "" {
		member.MembershipType = "regular"
	}
	if _, ok := validMembershipTypes[member.MembershipType]; !ok {
		httpx.Error(w, http.StatusBadRequest, "invalid membership type: "+member.MembershipType)
		return
	}

	var existing Member
	if err := db.DB.First(&existing, "nim = ?", member.StudentID).Error; err == nil {
		httpx.Error(w, http.StatusBadRequest, "nim already registered")
		return
	}
	if err := db.DB.First(&existing, "email = ?", member.Email).Error; err == nil {
		httpx.Error(w, http.StatusBadRequest, "email already registered")
		return
	}

	member.ID = uuid.Nil
	member.Active = true
	if member.JoinedAt.IsZero() {
		member.JoinedAt = time.Now()
	}

	if err := db.DB.Create(&member).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to create member: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusCreated, member)
}

// UpdateMember updates a member entry (staff or admin, route-level check)
func UpdateMember(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "member_id")

	var member Member
	if err := db.DB.First(&member, "id = ?", memberID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "member not found")
		return
	}

	var updates struct {
		Name           *string   `json:"name,omitempty"`
		Email          *string   `json:"email,omitempty"`
		YearJoined     *int      `json:"year_joined,omitempty"`
		Batch          *string   `json:"batch,omitempty"`
		Department     *string   `json:"department,omitempty"`
		Photo          *string   `json:"photo,omitempty"`
		PhoneNumber    *string   `json:"phone_number,omitempty"`
		Address        *string   `json:"address,omitempty"`
		Instagram      *string   `json:"instagram,omitempty"`
		LinkedIn       *string   `json:"linkedin,omitempty"`
		GitHub         *string   `json:"github,omitempty"`
		Interests      *[]string `json:"interests,omitempty"`
		Skills         *[]string `json:"skills,omitempty"`
		Active         *bool     `json:"active,omitempty"`
		MembershipType *string   `json:"membership_type,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updateMap := make(map[string]interface{})
	if updates.Name != nil {
		updateMap["name"] = *updates.Name
	}
	if updates.Email != nil {
		var other Member
		if err := db.DB.First(&other, "email = ? AND id <> ?", *updates.Email, member.ID).Error; err == nil {
			httpx.Error(w, http.StatusBadRequest, "email already registered")
			return
		}
		updateMap["email"] = *updates.Email
	}
	if updates.YearJoined != nil {
		updateMap["year_joined"] = *updates.YearJoined
	}
	if updates.Batch != nil {
		updateMap["batch"] = *updates.Batch
	}
	if updates.Department != nil {
		updateMap["department"] = *updates.Department
	}
	if updates.Photo != nil {
		updateMap["photo"] = *updates.Photo
	}
	if updates.PhoneNumber != nil {
		updateMap["phone_number"] = *updates.PhoneNumber
	}
	if updates.Address != nil {
		updateMap["address"] = *updates.Address
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
	if updates.Interests != nil {
		updateMap["interests"] = pq.StringArray(*updates.Interests)
	}
	if updates.Skills != nil {
		updateMap["skills"] = pq.StringArray(*updates.Skills)
	}
	if updates.Active != nil {
		updateMap["active"] = *updates.Active
	}
	if updates.MembershipType != nil {
		if _, ok := validMembershipTypes[*updates.MembershipType]; !ok {
			httpx.Error(w, http.StatusBadRequest, "invalid membership type: "+*updates.MembershipType)
			return
		}
		updateMap["membership_type"] = *updates.MembershipType
	}

	if err := db.DB.Model(&member).Updates(updateMap).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to update member: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, member)
}

// DeleteMember deletes a member entry (admin only, route-level check)
func DeleteMember(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "member_id")

	var member Member
	if err := db.DB.First(&member, "id = ?", memberID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "member not found")
		return
	}

	if err := db.DB.Delete(&member).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to delete member: "+err.Error())
		return
	}

	httpx.Message(w, http.StatusOK, "member deleted")
}
