package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Conversation holds a mentor chat. Messages is an ordered JSON array of
// {role, content, timestamp}; Context is a free-form blob the client sends
// along (current path, goals) to steer the mentor.
type Conversation struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	UserID    string         `gorm:"index;not null" json:"user_id"`
	Title     string         `json:"title"`
	Messages  string         `gorm:"type:text" json:"messages"`
	Context   string         `gorm:"type:text" json:"context"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// ChatMessage is one entry inside Conversation.Messages.
type ChatMessage struct {
	Role      string `json:"role"` // user | mentor
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

func (c *Conversation) BeforeCreate(tx *gorm.DB) (err error) {
	c.ID = uuid.New().String()
	c.CreatedAt = time.Now().Format(time.RFC3339)
	c.UpdatedAt = c.CreatedAt
	return
}
