package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/ryuzenazari/hmptiunesa/internal/authz"
)

// User is one principal record. The password digest is stored but never
// serialized; everything that leaves this package goes out as an
// authz.Principal or through the json tags below.
type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name           string     `gorm:"not null" json:"name"`
	Email          string     `gorm:"uniqueIndex;not null" json:"email"`
	StudentID      string     `gorm:"column:nim;uniqueIndex;not null" json:"nim"`
	Role           authz.Role `gorm:"type:text;not null;default:'member'" json:"role"`
	PasswordDigest string     `gorm:"not null" json:"-"`
	JoinedAt       time.Time  `json:"joined_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (User) TableName() string { return "app_auth.users" }

// Principal strips the user down to the fields the rest of the request
// pipeline is allowed to see.
func (u User) Principal() authz.Principal {
	return authz.Principal{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		StudentID: u.StudentID,
		Role:      u.Role,
	}
}
