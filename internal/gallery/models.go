package gallery

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/ryuzenazari/hmptiunesa/internal/users"
)

// Item is a gallery entry (photo, video or showcase piece). UploadedByID
// backs the ownership-or-admin check; the featured flag is admin-only.
type Item struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `json:"description,omitempty"`
	Category     string         `gorm:"not null;default:'general'" json:"category"`
	Tags         pq.StringArray `gorm:"type:text[]" json:"tags,omitempty"`
	FileURL      string         `gorm:"not null" json:"file_url"`
	Thumbnail    string         `json:"thumbnail,omitempty"`
	Featured     bool           `gorm:"not null;default:false" json:"featured"`
	TakenAt      *time.Time     `json:"taken_at,omitempty"`
	Location     string         `json:"location,omitempty"`
	UploadedByID uuid.UUID      `gorm:"type:uuid;not null;index" json:"uploaded_by_id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	UploadedBy users.User `gorm:"foreignKey:UploadedByID" json:"uploaded_by,omitempty"`
}

func (Item) TableName() string {
	return "gallery.items"
}
