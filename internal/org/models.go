package org

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/ryuzenazari/hmptiunesa/internal/users"
)

// Profile is the organization's single public profile row. All writes are
// admin-only and record who made them.
type Profile struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `gorm:"not null" json:"description"`
	Vision      string         `json:"vision,omitempty"`
	Mission     pq.StringArray `gorm:"type:text[]" json:"mission,omitempty"`
	Logo        string         `json:"logo,omitempty"`
	Email       string         `json:"email,omitempty"`
	Phone       string         `json:"phone,omitempty"`
	Address     string         `json:"address,omitempty"`
	Instagram   string         `json:"instagram,omitempty"`
	Website     string         `json:"website,omitempty"`
	History     string         `json:"history,omitempty"`
	UpdatedByID *uuid.UUID     `gorm:"type:uuid" json:"updated_by_id,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`

	Departments []Department `gorm:"foreignKey:ProfileID" json:"departments,omitempty"`
}

func (Profile) TableName() string {
	return "org.profiles"
}

// Department is one division of the organization, optionally headed by a user.
type Department struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	ProfileID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"profile_id"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `json:"description,omitempty"`
	HeadID      *uuid.UUID `gorm:"type:uuid" json:"head_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Head *users.User `gorm:"foreignKey:HeadID" json:"head,omitempty"`
}

func (Department) TableName() string {
	return "org.departments"
}
