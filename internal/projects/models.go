package projects

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/ryuzenazari/hmptiunesa/internal/users"
)

// Project is a showcase entry for organization work. Mutations are gated by
// role rather than ownership: staff and admins maintain the portfolio.
type Project struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"not null" json:"description"`
	Category     string         `gorm:"not null;default:'general'" json:"category"`
	Technologies pq.StringArray `gorm:"type:text[]" json:"technologies,omitempty"`
	Status       string         `gorm:"not null;default:'ongoing'" json:"status"`
	LiveURL      string         `json:"live_url,omitempty"`
	RepoURL      string         `json:"repo_url,omitempty"`
	Thumbnail    string         `json:"thumbnail,omitempty"`
	CreatedByID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"created_by_id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	CreatedBy users.User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

func (Project) TableName() string {
	return "projects.projects"
}
