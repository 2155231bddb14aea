package functionaries

import (
	"time"

	"github.com/google/uuid"
)

// Functionary is an officer of the organization for a given period, e.g.
// "chair 2025/2026". A student appears at most once in the roster.
type Functionary struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	StudentID   string    `gorm:"column:nim;uniqueIndex;not null" json:"nim"`
	Position    string    `gorm:"not null" json:"position"`
	Department  string    `gorm:"not null" json:"department"`
	Period      string    `gorm:"not null" json:"period"`
	Photo       string    `json:"photo,omitempty"`
	Email       string    `gorm:"not null" json:"email"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Instagram   string    `json:"instagram,omitempty"`
	LinkedIn    string    `json:"linkedin,omitempty"`
	GitHub      string    `json:"github,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Functionary) TableName() string {
	return "functionaries.functionaries"
}
