package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resource is a catalog entry (course, article, video) that steps can link to.
type Resource struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"not null" json:"title"`
	URL       string `json:"url"`
	Kind      string `json:"kind"` // course | article | video | book
	Skills    string `gorm:"type:text" json:"skills"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (r *Resource) BeforeCreate(tx *gorm.DB) (err error) {
	r.ID = uuid.New().String()
	r.CreatedAt = time.Now().Format(time.RFC3339)
	r.UpdatedAt = r.CreatedAt
	return
}
