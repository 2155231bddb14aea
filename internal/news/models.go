package news

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/ryuzenazari/hmptiunesa/internal/users"
)

// Article is a news item or announcement. AuthorID backs the
// ownership-or-admin check on mutations.
type Article struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Content     string         `gorm:"not null" json:"content"`
	Summary     string         `json:"summary,omitempty"`
	Category    string         `gorm:"not null;default:'announcement'" json:"category"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags,omitempty"`
	Thumbnail   string         `json:"thumbnail,omitempty"`
	Status      string         `gorm:"not null;default:'draft'" json:"status"`
	PublishedAt time.Time      `json:"published_at"`
	ViewCount   int            `gorm:"not null;default:0" json:"view_count"`
	AuthorID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"author_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`

	Author users.User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (Article) TableName() string {
	return "news.articles"
}

var validCategories = map[string]struct{}{
	"announcement": {}, "article": {}, "event": {},
	"achievement": {}, "academic": {}, "other": {},
}

var validStatuses = map[string]struct{}{
	"draft": {}, "published": {}, "archived": {},
}
