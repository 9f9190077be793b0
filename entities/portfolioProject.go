package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Verification statuses for portfolio projects.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// PortfolioProject is a user-submitted work sample. Evaluation holds the
// AI review blob when the project has been evaluated.
type PortfolioProject struct {
	ID                 string         `gorm:"primaryKey" json:"id"`
	UserID             string         `gorm:"index;not null" json:"user_id"`
	Title              string         `gorm:"not null" json:"title"`
	Description        string         `gorm:"type:text" json:"description"`
	RepoURL            string         `json:"repo_url"`
	Technologies       string         `gorm:"type:text" json:"technologies"`
	ClaimedSkills      string         `gorm:"type:text" json:"claimed_skills"`
	Evaluation         string         `gorm:"type:text" json:"evaluation,omitempty"`
	VerificationStatus string         `gorm:"default:pending" json:"verification_status"`
	CreatedAt          string         `json:"created_at"`
	UpdatedAt          string         `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (p *PortfolioProject) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New().String()
	if p.VerificationStatus == "" {
		p.VerificationStatus = VerificationPending
	}
	p.CreatedAt = time.Now().Format(time.RFC3339)
	p.UpdatedAt = p.CreatedAt
	return
}
