package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ryuzenazari/hmptiunesa/internal/users"
)

// Event is an organization activity. CreatedByID backs the
// ownership-or-admin check on mutations.
type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	StartsAt    time.Time `gorm:"not null" json:"starts_at"`
	EndsAt      time.Time `gorm:"not null" json:"ends_at"`
	TimeNote    string    `json:"time_note,omitempty"` // e.g. "13:00 - 15:00 WIB"
	Location    string    `gorm:"not null" json:"location"`
	Category    string    `gorm:"not null;default:'general'" json:"category"`
	Status      string    `gorm:"not null;default:'upcoming'" json:"status"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	Capacity    int       `json:"capacity,omitempty"`
	Speaker     string    `json:"speaker,omitempty"`
	FormURL     string    `json:"form_url,omitempty"`
	CreatedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	CreatedBy users.User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

func (Event) TableName() string {
	return "events.events"
}

var validCategories = map[string]struct{}{
	"seminar": {}, "webinar": {}, "workshop": {}, "competition": {},
	"general": {}, "internal": {}, "external": {}, "training": {}, "other": {},
}

var validStatuses = map[string]struct{}{
	"upcoming": {}, "ongoing": {}, "completed": {}, "cancelled": {},
}
