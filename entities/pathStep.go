package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PathStep is one ordered milestone inside a career path.
type PathStep struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	CareerPathID string         `gorm:"index;not null" json:"career_path_id"`
	StepOrder    int            `json:"step_order"`
	Title        string         `json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	ResourceURL  string         `json:"resource_url"`
	Completed    bool           `gorm:"default:false" json:"completed"`
	CompletedAt  string         `json:"completed_at,omitempty"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (s *PathStep) BeforeCreate(tx *gorm.DB) (err error) {
	s.ID = uuid.New().String()
	s.CreatedAt = time.Now().Format(time.RFC3339)
	s.UpdatedAt = s.CreatedAt
	return
}
