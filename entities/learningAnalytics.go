package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LearningAnalytics is one time-series row (minutes studied, steps done,
// sessions) used by the progress dashboard. Date is a real timestamp so
// day-window queries can compare against a computed cutoff.
type LearningAnalytics struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	Metric    string    `gorm:"index" json:"metric"` // study_minutes | steps_completed | sessions
	Value     float64   `json:"value"`
	Date      time.Time `gorm:"index" json:"date"`
	CreatedAt string    `json:"created_at"`
}

func (l *LearningAnalytics) BeforeCreate(tx *gorm.DB) (err error) {
	l.ID = uuid.New().String()
	if l.Date.IsZero() {
		l.Date = time.Now().UTC()
	}
	l.CreatedAt = time.Now().Format(time.RFC3339)
	return
}
