package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Achievement is earned as a side effect of progress, e.g. completing a step.
type Achievement struct {
	ID          string `gorm:"primaryKey" json:"id"`
	UserID      string `gorm:"index;not null" json:"user_id"`
	Type        string `json:"type"` // step_completed | path_completed
	Title       string `json:"title"`
	Description string `gorm:"type:text" json:"description"`
	EarnedAt    string `json:"earned_at"`
	CreatedAt   string `json:"created_at"`
}

func (a *Achievement) BeforeCreate(tx *gorm.DB) (err error) {
	a.ID = uuid.New().String()
	a.CreatedAt = time.Now().Format(time.RFC3339)
	if a.EarnedAt == "" {
		a.EarnedAt = a.CreatedAt
	}
	return
}
