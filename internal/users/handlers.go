package users

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ryuzenazari/hmptiunesa/internal/authz"
	"github.com/ryuzenazari/hmptiunesa/internal/db"
	"github.com/ryuzenazari/hmptiunesa/internal/httpx"
	"github.com/ryuzenazari/hmptiunesa/internal/password"
	"github.com/ryuzenazari/hmptiunesa/internal/token"
)

// Handler carries the token issuer so credentials can be minted without any
// package-level signing state.
type Handler struct {
	Tokens *token.Issuer
}

// Register creates a new member account and returns a fresh token.
func (h Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		NIM      string `json:"nim"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.NIM == "" {
		httpx.Error(w, http.StatusBadRequest, "name, email, password and nim are required")
		return
	}

	var existing User
	if err := db.DB.First(&existing, "email = ?", req.Email).Error; err == nil {
		httpx.Error(w, http.StatusBadRequest, "email already registered")
		return
	}
	if err := db.DB.First(&existing, "nim = ?", req.NIM).Error; err == nil {
		httpx.Error(w, http.StatusBadRequest, "nim already registered")
		return
	}

	digest, err := password.Hash(req.Password)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to hash password: "+err.Error())
		return
	}

	user := User{
		Name:           req.Name,
		Email:          req.Email,
		StudentID:      req.NIM,
		Role:           authz.RoleMember,
		PasswordDigest: digest,
		JoinedAt:       time.Now(),
	}
	if err := db.DB.Create(&user).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to register user: "+err.Error())
		return
	}

	tok, err := h.Tokens.Issue(user.ID.String(), user.Role)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to issue token: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusCreated, map[string]string{"token": tok})
}

// Login checks credentials and returns a token. Unknown email and wrong
// password produce the same message so accounts cannot be enumerated.
func (h Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var user User
	err := db.DB.First(&user, "email = ?", req.Email).Error
	if err != nil || !password.Verify(req.Password, user.PasswordDigest) {
		httpx.Error(w, http.StatusUnauthorized, "email or password incorrect")
		return
	}

	tok, err := h.Tokens.Issue(user.ID.String(), user.Role)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to issue token: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]string{"token": tok})
}

// Me returns the authenticated user's record, digest omitted.
func (h Handler) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := authz.PrincipalFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "unauthorized, token missing")
		return
	}

	var user User
	if err := db.DB.First(&user, "id = ?", principal.ID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "user not found")
		return
	}

	httpx.JSON(w, http.StatusOK, user)
}

// UpdateProfile lets the authenticated user change their name and email.
func (h Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	principal, ok := authz.PrincipalFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "unauthorized, token missing")
		return
	}

	var updates struct {
		Name  *string `json:"name,omitempty"`
		Email *string `json:"email,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var user User
	if err := db.DB.First(&user, "id = ?", principal.ID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "user not found")
		return
	}

	updateMap := make(map[string]interface{})
	if updates.Name != nil {
		updateMap["name"] = *updates.Name
	}
	if updates.Email != nil {
		var existing User
		if err := db.DB.Where("email = ? AND id <> ?", *updates.Email, user.ID).
			First(&existing).Error; err == nil {
			httpx.Error(w, http.StatusBadRequest, "email already registered")
			return
		}
		updateMap["email"] = *updates.Email
	}

	if err := db.DB.Model(&user).Updates(updateMap).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to update profile: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, user)
}

// ChangePassword re-verifies the current password before storing a new digest.
func (h Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	principal, ok := authz.PrincipalFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "unauthorized, token missing")
		return
	}

	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "current and new password are required")
		return
	}

	var user User
	if err := db.DB.First(&user, "id = ?", principal.ID).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "user not found")
		return
	}

	if !password.Verify(req.CurrentPassword, user.PasswordDigest) {
		httpx.Error(w, http.StatusUnauthorized, "current password incorrect")
		return
	}

	digest, err := password.Hash(req.NewPassword)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "new password must not be empty")
		return
	}

	if err := db.DB.Model(&user).Update("password_digest", digest).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to update password: "+err.Error())
		return
	}

	httpx.Message(w, http.StatusOK, "password updated")
}

// ListUsers returns all principals. Admin only.
func (h Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	var list []User
	if err := db.DB.Order("created_at ASC").Find(&list).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to fetch users: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, list)
}

// UpdateRole changes a user's role to one of the enumerated values. Admin only.
func (h Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	role := authz.Role(req.Role)
	if !role.Valid() {
		httpx.Error(w, http.StatusBadRequest, "invalid role: "+req.Role)
		return
	}

	var user User
	if err := db.DB.First(&user, "id = ?", chi.URLParam(r, "id")).Error; err != nil {
		httpx.Error(w, http.StatusNotFound, "user not found")
		return
	}

	if err := db.DB.Model(&user).Update("role", role).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to update role: "+err.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, user)
}
