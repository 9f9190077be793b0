package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CareerPath is a user's learning plan towards a target role. Roadmap holds
// the generated plan as a JSON blob; steps live in their own table.
type CareerPath struct {
	ID         string         `gorm:"primaryKey" json:"id"`
	UserID     string         `gorm:"index;not null" json:"user_id"`
	Title      string         `json:"title"`
	TargetRole string         `json:"target_role"`
	Roadmap    string         `gorm:"type:text" json:"roadmap"`
	IsActive   bool           `gorm:"default:true" json:"is_active"`
	CreatedAt  string         `json:"created_at"`
	UpdatedAt  string         `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (p *CareerPath) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New().String()
	p.CreatedAt = time.Now().Format(time.RFC3339)
	p.UpdatedAt = p.CreatedAt
	return
}
