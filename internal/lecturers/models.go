package lecturers

import (
	"time"

	"github.com/google/uuid"
)

// Lecturer is a faculty directory entry. Mutations are gated by role like
// projects: staff and admins maintain the directory.
type Lecturer struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	NIP            string    `gorm:"column:nip;uniqueIndex;not null" json:"nip"`
	Position       string    `gorm:"not null" json:"position"`
	Specialization string    `gorm:"not null" json:"specialization"`
	Email          string    `gorm:"not null" json:"email"`
	Photo          string    `json:"photo,omitempty"`
	Education      string    `gorm:"not null" json:"education"`
	Biography      string    `gorm:"not null" json:"biography"`
	Website        string    `json:"website,omitempty"`
	LinkedIn       string    `json:"linkedin,omitempty"`
	GoogleScholar  string    `json:"google_scholar,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Research []ResearchItem `gorm:"foreignKey:LecturerID;constraint:OnDelete:CASCADE" json:"research,omitempty"`
}

func (Lecturer) TableName() string {
	return "lecturers.lecturers"
}

// ResearchItem is one publication or project under a lecturer's profile.
type ResearchItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	LecturerID  uuid.UUID `gorm:"type:uuid;not null;index" json:"lecturer_id"`
	Title       string    `gorm:"not null" json:"title"`
	Year        int       `json:"year,omitempty"`
	Description string    `json:"description,omitempty"`
}

func (ResearchItem) TableName() string {
	return "lecturers.research_items"
}
