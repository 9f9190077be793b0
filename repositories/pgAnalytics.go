package repositories

import (
	"time"

	"pathfinder-server/db"
	"pathfinder-server/entities"
)

type analyticsPgRepository struct {
	db db.Database
}

func NewAnalyticsPgRepository(database db.Database) AnalyticsRepository {
	return &analyticsPgRepository{db: database}
}

func (r *analyticsPgRepository) Create(row *entities.LearningAnalytics) error {
	return r.db.GetDB().Create(row).Error
}

func (r *analyticsPgRepository) CreateBatch(rows []entities.LearningAnalytics) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.GetDB().Create(&rows).Error
}

func (r *analyticsPgRepository) GetByUserIDSince(userID string, since time.Time) ([]entities.LearningAnalytics, error) {
	var rows []entities.LearningAnalytics
	err := r.db.GetDB().
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}
