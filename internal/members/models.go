package members

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Member is a membership directory entry, distinct from a login account:
// not every member has credentials, and not every account holder is listed.
type Member struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name           string         `gorm:"not null" json:"name"`
	StudentID      string         `gorm:"column:nim;uniqueIndex;not null" json:"nim"`
	Email          string         `gorm:"uniqueIndex;not null" json:"email"`
	YearJoined     int            `gorm:"not null" json:"year_joined"`
	Batch          string         `gorm:"not null" json:"batch"`
	Department     string         `gorm:"not null" json:"department"`
	Photo          string         `json:"photo,omitempty"`
	PhoneNumber    string         `json:"phone_number,omitempty"`
	Address        string         `json:"address,omitempty"`
	Instagram      string         `json:"instagram,omitempty"`
	LinkedIn       string         `json:"linkedin,omitempty"`
	GitHub         string         `json:"github,omitempty"`
	Interests      pq.StringArray `gorm:"type:text[]" json:"interests,omitempty"`
	Skills         pq.StringArray `gorm:"type:text[]" json:"skills,omitempty"`
	Active         bool           `gorm:"not null;default:true" json:"active"`
	MembershipType string         `gorm:"not null;default:'regular'" json:"membership_type"`
	JoinedAt       time.Time      `gorm:"not null" json:"joined_at"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (Member) TableName() string {
	return "members.members"
}

var validMembershipTypes = map[string]struct{}{
	"regular":  {},
	"honorary": {},
	"alumni":   {},
}
